package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

const notePlaceholder = "Start taking notes here..."

// NoteEntry is a word-wrapped multi-line entry that offers every shortcut it
// receives to ShortcutHandler first. Fyne hands shortcuts to the focused
// widget instead of the canvas, so without this hook a window-level save
// chord never fires while the user is typing.
type NoteEntry struct {
	widget.Entry

	// ShortcutHandler returns true when it consumed the shortcut.
	ShortcutHandler func(fyne.Shortcut) bool
}

// NewNoteEntry creates the note text field
func NewNoteEntry() *NoteEntry {
	entry := &NoteEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapWord
	entry.PlaceHolder = notePlaceholder
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedShortcut implements fyne.Shortcutable
func (e *NoteEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if e.ShortcutHandler != nil && e.ShortcutHandler(shortcut) {
		return
	}
	e.Entry.TypedShortcut(shortcut)
}
