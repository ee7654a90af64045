//go:build linux || freebsd || openbsd || netbsd

package views

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// EWMH _NET_WM_STATE client message arguments.
const (
	netWMStateAdd     = 1
	sourceApplication = 1
)

// setAlwaysOnTop asks the window manager to add _NET_WM_STATE_ABOVE to the
// window. Wayland surfaces have no equivalent and report unsupported.
func setAlwaysOnTop(native any) error {
	ctx, ok := native.(driver.X11WindowContext)
	if !ok || ctx.WindowHandle == 0 {
		return errOnTopUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	wmState, err := internAtom(conn, "_NET_WM_STATE")
	if err != nil {
		return err
	}
	above, err := internAtom(conn, "_NET_WM_STATE_ABOVE")
	if err != nil {
		return err
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(ctx.WindowHandle),
		Type:   wmState,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			netWMStateAdd, uint32(above), 0, sourceApplication, 0,
		}),
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	mask := uint32(xproto.EventMaskSubstructureNotify | xproto.EventMaskSubstructureRedirect)
	if err := xproto.SendEventChecked(conn, false, root, mask, string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("send _NET_WM_STATE: %w", err)
	}
	return nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
