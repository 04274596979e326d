package xwm

import (
	"math"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Surface places an X window. Opacity maps to map state since core X has no
// translucency.
type Surface struct {
	conn     *xgb.Conn
	wid      xproto.Window
	viewport wm.Viewport

	mapped     bool
	transition bool
}

func NewSurface(conn *xgb.Conn, wid xproto.Window, viewport wm.Viewport) *Surface {
	return &Surface{
		conn:     conn,
		wid:      wid,
		viewport: viewport,
	}
}

func (s *Surface) SetPosition(x, y float64, u geom.Unit) error {
	r := geom.Project(geom.Rect{X: x, Y: y}, u, s.viewport.Size())
	return xproto.ConfigureWindowChecked(s.conn, s.wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(toPosition(r.X)), uint32(toPosition(r.Y))}).
		Check()
}

func (s *Surface) SetSize(width, height float64, u geom.Unit) error {
	r := geom.Project(geom.Rect{Width: width, Height: height}, u, s.viewport.Size())
	return xproto.ConfigureWindowChecked(s.conn, s.wid,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(toLength(r.Width)), uint32(toLength(r.Height))}).
		Check()
}

func (s *Surface) SetOpacity(opacity float64) error {
	visible := opacity > 0
	if visible == s.mapped {
		return nil
	}

	var err error
	if visible {
		err = xproto.MapWindowChecked(s.conn, s.wid).Check()
	} else {
		err = xproto.UnmapWindowChecked(s.conn, s.wid).Check()
	}
	if err != nil {
		return err
	}
	s.mapped = visible
	return nil
}

// SetTransition is recorded only. X moves windows immediately.
func (s *Surface) SetTransition(enabled bool) error {
	s.transition = enabled
	return nil
}

// Raise stacks the window above its siblings.
func (s *Surface) Raise() error {
	return xproto.ConfigureWindowChecked(s.conn, s.wid,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove}).
		Check()
}

func toPosition(v float64) int16 {
	return int16(math.Max(math.MinInt16, math.Min(math.MaxInt16, math.Round(v))))
}

// toLength clamps to the X window size range. X rejects zero sizes.
func toLength(v float64) uint16 {
	return uint16(math.Max(1, math.Min(math.MaxUint16, math.Round(v))))
}
