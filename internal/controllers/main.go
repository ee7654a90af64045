package controllers

import (
	"sticky-note/internal/logger"
	"sticky-note/internal/models"
	"sticky-note/internal/views"
)

const component = "NoteController"

// NoteStore is the persistence the controller needs. storage.Store
// satisfies it.
type NoteStore interface {
	Load() models.NoteState
	Save(state models.NoteState) error
}

// NoteController owns the note for the whole process and connects view
// events to the store. Its methods run on the UI goroutine.
type NoteController struct {
	store  NoteStore
	logger logger.Logger

	state models.NoteState
	dirty bool

	mainView *views.NoteView
}

// NewNoteController loads the persisted note and adopts it as the initial
// state.
func NewNoteController(store NoteStore, log logger.Logger) *NoteController {
	return &NoteController{
		store:  store,
		logger: log,
		state:  store.Load(),
	}
}

// SetMainView associates the view, shows the current note in it and wires
// its events
func (nc *NoteController) SetMainView(view *views.NoteView) {
	nc.mainView = view
	view.SetText(nc.state.Content)
	nc.dirty = false
	nc.setupViewEventHandlers()
}

// setupViewEventHandlers connects view callbacks to controller methods
func (nc *NoteController) setupViewEventHandlers() {
	nc.mainView.SetTextChangedHandler(nc.SetText)
	nc.mainView.SetSaveHandler(nc.handleSave)
}

// Text returns the in-memory note text.
func (nc *NoteController) Text() string {
	return nc.state.Content
}

// State returns a copy of the in-memory note.
func (nc *NoteController) State() models.NoteState {
	return nc.state
}

// SetText replaces the in-memory note text. Nothing is written to disk.
func (nc *NoteController) SetText(text string) {
	if text == nc.state.Content {
		return
	}
	nc.state.Content = text
	nc.dirty = true
}

// HasUnsavedChanges reports whether the text changed since the last
// successful load or save.
func (nc *NoteController) HasUnsavedChanges() bool {
	return nc.dirty
}

// Save writes the current note through to disk, blocking until done.
func (nc *NoteController) Save() error {
	if err := nc.store.Save(nc.state); err != nil {
		return err
	}
	nc.dirty = false
	return nil
}

// handleSave is the save shortcut action. Failures were already logged by
// the store and are not shown to the user.
func (nc *NoteController) handleSave() {
	if err := nc.Save(); err != nil {
		nc.logger.Debug(component, "note left unsaved", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Close is called when the window goes away. Edits since the last save are
// dropped; there is no autosave.
func (nc *NoteController) Close() {
	nc.logger.Info(component, "closing without autosave", map[string]interface{}{
		"unsaved_changes": nc.dirty,
	})
}
