// Package xwm hosts a managed window inside a full screen X11 window.
package xwm

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/ItsNotGoodName/x-snapwm/xcursor"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const (
	windowPixel      = 0xd0d0d0
	previewPixel     = 0x5a7fb0
	previewBlurPixel = 0x3a4f6a
)

// Host owns the X windows of one managed window. Its surfaces are written by
// the app loop, its size is updated by the event service.
type Host struct {
	conn    *xgb.Conn
	root    Window
	cursors *xcursor.Cache
	window  *Surface
	preview *Surface

	mu   sync.Mutex
	size geom.Size
}

func NewHost(conn *xgb.Conn, opts wm.Options) (*Host, error) {
	cursors := xcursor.NewCache(conn)
	cursor, err := cursors.Get(cursorGlyph(app.CursorDefault))
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	root, err := CreateWindow(conn, cursor)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	h := &Host{
		conn:    conn,
		root:    root,
		cursors: cursors,
		size:    geom.Size{Width: float64(root.Width), Height: float64(root.Height)},
	}

	window, err := CreateSubWindow(conn, root.WID, windowPixel, 0, 0, 1, 1)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("window: %w", err)
	}
	h.window = NewSurface(conn, window.WID, h)

	pixel := uint32(previewPixel)
	if opts.BlurPreviewBg {
		pixel = previewBlurPixel
	}
	preview, err := CreateSubWindow(conn, root.WID, pixel, 0, 0, 1, 1)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("preview: %w", err)
	}
	h.preview = NewSurface(conn, preview.WID, h)

	if err := h.window.SetOpacity(1); err != nil {
		h.Close()
		return nil, fmt.Errorf("window: %w", err)
	}

	// A negative z-index puts the preview above the window.
	if opts.ZIndex < 0 {
		err = h.preview.Raise()
	} else {
		err = h.window.Raise()
	}
	if err != nil {
		h.Close()
		return nil, err
	}

	return h, nil
}

func (h *Host) Window() wm.Surface {
	return h.window
}

func (h *Host) Preview() wm.Surface {
	return h.preview
}

// Size implements wm.Viewport.
func (h *Host) Size() geom.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

func (h *Host) resize(width, height uint16) geom.Size {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.size = geom.Size{Width: float64(width), Height: float64(height)}
	return h.size
}

// SetCursor changes the cursor of the container.
func (h *Host) SetCursor(c app.Cursor) {
	cursor, err := h.cursors.Get(cursorGlyph(c))
	if err != nil {
		slog.Error("Failed to create cursor", "cursor", c.String(), "error", err)
		return
	}

	err = xproto.ChangeWindowAttributesChecked(h.conn, h.root.WID,
		xproto.CwCursor, []uint32{uint32(cursor)}).
		Check()
	if err != nil {
		slog.Error("Failed to set cursor", "cursor", c.String(), "error", err)
	}
}

// Close destroys the windows and cursors.
func (h *Host) Close() {
	h.cursors.Free()
	DestroyWindow(h.conn, h.root.WID)
}

func cursorGlyph(c app.Cursor) uint16 {
	switch c {
	case app.CursorMove:
		return xcursor.Fleur
	case app.CursorNS:
		return xcursor.SBVDoubleArrow
	case app.CursorEW:
		return xcursor.SBHDoubleArrow
	case app.CursorNWSE:
		return xcursor.TopLeftCorner
	case app.CursorNESW:
		return xcursor.TopRightCorner
	default:
		return xcursor.LeftPtr
	}
}
