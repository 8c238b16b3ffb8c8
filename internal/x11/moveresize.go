package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// MoveResizeDirection is a _NET_WM_MOVERESIZE direction.
type MoveResizeDirection uint32

const (
	MoveResizeSizeTopLeft MoveResizeDirection = iota
	MoveResizeSizeTop
	MoveResizeSizeTopRight
	MoveResizeSizeRight
	MoveResizeSizeBottomRight
	MoveResizeSizeBottom
	MoveResizeSizeBottomLeft
	MoveResizeSizeLeft
	MoveResizeMove
	MoveResizeSizeKeyboard
	MoveResizeMoveKeyboard
	MoveResizeCancel
)

// BeginMoveResize asks the window manager to start an interactive move or
// resize of win, driven by the pointer at root coordinates (x, y) with
// button held.
//
// The implicit pointer grab from the button press is released first;
// otherwise the window manager cannot take the pointer. The message is
// built by hand like the other EWMH requests in this package.
func (c *Connection) BeginMoveResize(win xproto.Window, dir MoveResizeDirection, x, y int, button uint32) error {
	conn := c.XUtil.Conn()

	atomReply, err := xproto.InternAtom(conn, false,
		uint16(len("_NET_WM_MOVERESIZE")), "_NET_WM_MOVERESIZE").Reply()
	if err != nil {
		return fmt.Errorf("failed to intern _NET_WM_MOVERESIZE: %w", err)
	}

	xproto.UngrabPointer(conn, xproto.TimeCurrentTime)

	const sourceIndication = 1 // normal application
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atomReply.Atom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(int32(x)),
			uint32(int32(y)),
			uint32(dir),
			button,
			sourceIndication,
		}),
	}

	return xproto.SendEventChecked(
		conn,
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
