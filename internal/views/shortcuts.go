package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// SaveShortcut is the save chord: Cmd+S on macOS, Ctrl+S elsewhere.
var SaveShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyS,
	Modifier: fyne.KeyModifierShortcutDefault,
}

// IsSaveShortcut reports whether shortcut is the save chord with no extra
// modifiers held.
func IsSaveShortcut(shortcut fyne.Shortcut) bool {
	cs, ok := shortcut.(*desktop.CustomShortcut)
	if !ok || cs == nil {
		return false
	}
	return cs.KeyName == SaveShortcut.KeyName && cs.Modifier == SaveShortcut.Modifier
}
