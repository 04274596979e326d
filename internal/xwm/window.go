package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type Window struct {
	WID    xproto.Window
	Width  uint16
	Height uint16
}

// CreateWindow creates the full screen container that receives pointer and
// key events for everything inside it.
func CreateWindow(conn *xgb.Conn, cursor xproto.Cursor) (Window, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return Window{}, err
	}

	if err := xproto.CreateWindowChecked(conn, screen.RootDepth,
		wid, screen.Root,
		0, 0, screen.WidthInPixels, screen.HeightInPixels, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask|xproto.CwCursor, // 1, 2, 3
		[]uint32{
			screen.BlackPixel, // 1
			xproto.EventMaskStructureNotify |
				xproto.EventMaskKeyPress |
				xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease |
				xproto.EventMaskPointerMotion, // 2
			uint32(cursor), // 3
		}).Check(); err != nil {
		return Window{}, err
	}

	if err := xproto.MapWindowChecked(conn, wid).Check(); err != nil {
		xproto.DestroyWindow(conn, wid)
		return Window{}, err
	}

	return Window{
		WID:    wid,
		Width:  screen.WidthInPixels,
		Height: screen.HeightInPixels,
	}, nil
}

// CreateSubWindow creates a child of root filled with pixel. Children select
// no events so pointer events propagate to root.
func CreateSubWindow(conn *xgb.Conn, root xproto.Window, pixel uint32, x, y int16, w, h uint16) (Window, error) {
	// Generate X window id
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return Window{}, err
	}

	// Create X window in root
	if err := xproto.CreateWindowChecked(conn, xproto.WindowClassCopyFromParent,
		wid, root,
		x, y, w, h, 0,
		xproto.WindowClassInputOutput, xproto.WindowClassCopyFromParent,
		xproto.CwBackPixel, []uint32{pixel}).Check(); err != nil {
		return Window{}, err
	}

	return Window{
		WID:    wid,
		Width:  w,
		Height: h,
	}, nil
}

func DestroyWindow(conn *xgb.Conn, wid xproto.Window) {
	xproto.DestroyWindow(conn, wid)
}
