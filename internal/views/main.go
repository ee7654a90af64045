package views

import (
	"sticky-note/internal/logger"
	"sticky-note/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver"
)

const component = "NoteView"

// NoteView is the single sticky-note window: one text field filling the
// whole content area.
type NoteView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	entry         *components.NoteEntry
	logger        logger.Logger

	// Event handlers - connected to controller
	textChangedHandler func(string)
	saveHandler        func()
}

// NewNoteView creates the view and installs it as the window content
func NewNoteView(window fyne.Window, log logger.Logger) *NoteView {
	view := &NoteView{
		window: window,
		logger: log,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (nv *NoteView) initializeComponents() {
	nv.entry = components.NewNoteEntry()
}

// buildLayout constructs the main layout
func (nv *NoteView) buildLayout() {
	nv.mainContainer = container.NewStack(nv.entry)
	nv.window.SetContent(nv.mainContainer)
}

// setupEventHandlers connects input events to the registered handlers
func (nv *NoteView) setupEventHandlers() {
	nv.entry.OnChanged = func(text string) {
		if nv.textChangedHandler != nil {
			nv.textChangedHandler(text)
		}
	}

	// Focused entry: fyne routes the chord to the widget.
	nv.entry.ShortcutHandler = func(shortcut fyne.Shortcut) bool {
		if !IsSaveShortcut(shortcut) {
			return false
		}
		nv.requestSave()
		return true
	}

	// Nothing focused: fyne routes the chord to the canvas.
	nv.window.Canvas().AddShortcut(SaveShortcut, func(fyne.Shortcut) {
		nv.requestSave()
	})
}

func (nv *NoteView) requestSave() {
	nv.logger.Debug(component, "save shortcut pressed", nil)
	if nv.saveHandler != nil {
		nv.saveHandler()
	}
}

// SetTextChangedHandler sets the handler called on every edit
func (nv *NoteView) SetTextChangedHandler(handler func(string)) {
	nv.textChangedHandler = handler
}

// SetSaveHandler sets the handler for the save shortcut
func (nv *NoteView) SetSaveHandler(handler func()) {
	nv.saveHandler = handler
}

// SetText replaces the text shown in the note field
func (nv *NoteView) SetText(text string) {
	nv.entry.SetText(text)
}

// Text returns the text currently shown in the note field
func (nv *NoteView) Text() string {
	return nv.entry.Text
}

// Focus moves keyboard focus to the note field
func (nv *NoteView) Focus() {
	nv.window.Canvas().Focus(nv.entry)
}

// KeepOnTop asks the window system to keep the window above others. It
// needs a realized native window, so call it once the app has started.
func (nv *NoteView) KeepOnTop() {
	native, ok := nv.window.(driver.NativeWindow)
	if !ok {
		nv.logger.Debug(component, "window has no native handle, always-on-top skipped", nil)
		return
	}

	native.RunNative(func(context any) {
		if err := setAlwaysOnTop(context); err != nil {
			nv.logger.Warning(component, "could not keep window on top", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		nv.logger.Debug(component, "window kept on top", nil)
	})
}

// Show displays the view
func (nv *NoteView) Show() {
	nv.window.Show()
}

// GetEntry returns the note text field
func (nv *NoteView) GetEntry() *components.NoteEntry {
	return nv.entry
}

// GetWindow returns the main window
func (nv *NoteView) GetWindow() fyne.Window {
	return nv.window
}
