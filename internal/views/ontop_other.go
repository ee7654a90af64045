//go:build !windows && !linux && !freebsd && !openbsd && !netbsd

package views

// setAlwaysOnTop is unsupported here: raising the macOS window level needs
// NSWindow.setLevel: through the Objective-C runtime, which fyne does not
// expose. The window stays at the normal level.
func setAlwaysOnTop(any) error {
	return errOnTopUnsupported
}
