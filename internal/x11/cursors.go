package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// BlankGlyph selects the invisible cursor in a CursorSet.
const BlankGlyph uint16 = 0xffff

// CursorSet lazily creates and caches X cursors by font glyph.
type CursorSet struct {
	conn    *Connection
	cursors map[uint16]xproto.Cursor
}

// NewCursorSet returns an empty cursor cache.
func NewCursorSet(conn *Connection) *CursorSet {
	return &CursorSet{conn: conn, cursors: make(map[uint16]xproto.Cursor)}
}

// Get returns the cursor for an xcursor glyph, or the blank cursor for
// BlankGlyph.
func (s *CursorSet) Get(glyph uint16) (xproto.Cursor, error) {
	if cur, ok := s.cursors[glyph]; ok {
		return cur, nil
	}

	var cur xproto.Cursor
	var err error
	if glyph == BlankGlyph {
		cur, err = s.createBlank()
	} else {
		cur, err = xcursor.CreateCursor(s.conn.XUtil, glyph)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to create cursor %d: %w", glyph, err)
	}
	s.cursors[glyph] = cur
	return cur, nil
}

// createBlank builds an invisible cursor from an empty 1x1 bitmap.
func (s *CursorSet) createBlank() (xproto.Cursor, error) {
	conn := s.conn.XUtil.Conn()

	pix, err := xproto.NewPixmapId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreatePixmapChecked(conn, 1, pix, xproto.Drawable(s.conn.Root), 1, 1).Check(); err != nil {
		return 0, err
	}
	defer xproto.FreePixmap(conn, pix)

	// Pixmap contents start undefined; clear the mask.
	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateGCChecked(conn, gc, xproto.Drawable(pix), xproto.GcForeground, []uint32{0}).Check(); err != nil {
		return 0, err
	}
	defer xproto.FreeGC(conn, gc)
	xproto.PolyFillRectangle(conn, xproto.Drawable(pix), gc, []xproto.Rectangle{{Width: 1, Height: 1}})

	cur, err := xproto.NewCursorId(conn)
	if err != nil {
		return 0, err
	}
	if err := xproto.CreateCursorChecked(conn, cur, pix, pix, 0, 0, 0, 0, 0, 0, 0, 0).Check(); err != nil {
		return 0, err
	}
	return cur, nil
}

// Free releases every cached cursor.
func (s *CursorSet) Free() {
	for glyph, cur := range s.cursors {
		xproto.FreeCursor(s.conn.XUtil.Conn(), cur)
		delete(s.cursors, glyph)
	}
}
