package geom

import (
	"fmt"
	"math"
)

// Unit is the coordinate space a rectangle is expressed in.
type Unit int

const (
	// Pixel is absolute screen space.
	Pixel Unit = iota
	// Percent is relative to the viewport, 0 to 100 on each axis.
	Percent
)

func (u Unit) String() string {
	switch u {
	case Pixel:
		return "px"
	case Percent:
		return "%"
	default:
		return "unknown"
	}
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect is an offset plus a size.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g+%g+%g", r.Width, r.Height, r.X, r.Y)
}

func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right is the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom is the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether p lies inside r. The right and bottom edges are
// outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Grow expands r by d on every side. A negative d shrinks it.
func (r Rect) Grow(d float64) Rect {
	return Rect{
		X:      r.X - d,
		Y:      r.Y - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
}

// Relative returns p relative to the origin of r.
func (r Rect) Relative(p Point) Point {
	return Point{X: p.X - r.X, Y: p.Y - r.Y}
}

// Valid reports whether every field is a finite number.
func (r Rect) Valid() bool {
	return finite(r.X) && finite(r.Y) && finite(r.Width) && finite(r.Height)
}

func (p Point) Valid() bool {
	return finite(p.X) && finite(p.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
