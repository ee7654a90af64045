//go:build windows

package views

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var procSetWindowPos = windows.NewLazySystemDLL("user32.dll").NewProc("SetWindowPos")

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

// HWND_TOPMOST is (HWND)-1.
var hwndTopmost = ^uintptr(0)

func setAlwaysOnTop(native any) error {
	ctx, ok := native.(driver.WindowsWindowContext)
	if !ok || ctx.HWND == 0 {
		return errOnTopUnsupported
	}

	r1, _, err := procSetWindowPos.Call(ctx.HWND, hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	if r1 == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}
