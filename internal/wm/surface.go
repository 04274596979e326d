package wm

import (
	"math"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
)

// Surface is an on-screen element the controller places.
type Surface interface {
	SetPosition(x, y float64, u geom.Unit) error
	SetSize(width, height float64, u geom.Unit) error
	SetOpacity(opacity float64) error
	SetTransition(enabled bool) error
}

// Viewport reports the size of the display area.
type Viewport interface {
	Size() geom.Size
}

// Display is a Viewport whose size the host updates.
type Display struct {
	size geom.Size
}

func NewDisplay(size geom.Size) *Display {
	return &Display{size: size}
}

func (d *Display) Size() geom.Size {
	return d.size
}

// Resize sets the size and reports whether it changed.
func (d *Display) Resize(size geom.Size) bool {
	if d.size == size {
		return false
	}
	d.size = size
	return true
}

// writeRect writes the valid parts of r. A non-finite position or size is
// skipped rather than written.
func writeRect(s Surface, r geom.Rect, u geom.Unit) error {
	if finite(r.X, r.Y) {
		if err := s.SetPosition(r.X, r.Y, u); err != nil {
			return err
		}
	}
	if finite(r.Width, r.Height) {
		if err := s.SetSize(r.Width, r.Height, u); err != nil {
			return err
		}
	}
	return nil
}

func writePosition(s Surface, p geom.Point, u geom.Unit) error {
	if !finite(p.X, p.Y) {
		return nil
	}
	return s.SetPosition(p.X, p.Y, u)
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func opacity(visible bool) float64 {
	if visible {
		return 1
	}
	return 0
}

// MemorySurface records what was written to it.
type MemorySurface struct {
	Position     geom.Point `json:"position"`
	PositionUnit geom.Unit  `json:"position_unit"`
	Size         geom.Size  `json:"size"`
	SizeUnit     geom.Unit  `json:"size_unit"`
	Opacity      float64    `json:"opacity"`
	Transition   bool       `json:"transition"`

	PositionWrites int `json:"position_writes"`
	SizeWrites     int `json:"size_writes"`
	OpacityWrites  int `json:"opacity_writes"`
}

func (s *MemorySurface) SetPosition(x, y float64, u geom.Unit) error {
	s.Position = geom.Point{X: x, Y: y}
	s.PositionUnit = u
	s.PositionWrites++
	return nil
}

func (s *MemorySurface) SetSize(width, height float64, u geom.Unit) error {
	s.Size = geom.Size{Width: width, Height: height}
	s.SizeUnit = u
	s.SizeWrites++
	return nil
}

func (s *MemorySurface) SetOpacity(opacity float64) error {
	s.Opacity = opacity
	s.OpacityWrites++
	return nil
}

func (s *MemorySurface) SetTransition(enabled bool) error {
	s.Transition = enabled
	return nil
}

// GeometryWrites is the number of position and size writes.
func (s *MemorySurface) GeometryWrites() int {
	return s.PositionWrites + s.SizeWrites
}

// Rect returns the last written rectangle in pixels of vp.
func (s *MemorySurface) Rect(vp geom.Size) geom.Rect {
	pos := geom.Project(geom.Rect{X: s.Position.X, Y: s.Position.Y}, s.PositionUnit, vp)
	size := geom.Project(geom.Rect{Width: s.Size.Width, Height: s.Size.Height}, s.SizeUnit, vp)
	return geom.Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}
