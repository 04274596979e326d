package wm

import "github.com/ItsNotGoodName/x-snapwm/internal/geom"

// Direction is the window edge or corner a resize acts on.
type Direction uint8

const (
	DirNone Direction = 0
	DirN    Direction = 1 << (iota - 1)
	DirS
	DirE
	DirW
)

const (
	DirNE = DirN | DirE
	DirNW = DirN | DirW
	DirSE = DirS | DirE
	DirSW = DirS | DirW
)

// DirectionOf classifies a point relative to a window's origin. A point on or
// beyond an edge selects that edge.
func DirectionOf(rel geom.Point, size geom.Size) Direction {
	var d Direction
	if rel.Y <= 0 {
		d |= DirN
	} else if rel.Y >= size.Height {
		d |= DirS
	}
	if rel.X <= 0 {
		d |= DirW
	} else if rel.X >= size.Width {
		d |= DirE
	}
	return d
}

// Has reports whether d includes every edge of e.
func (d Direction) Has(e Direction) bool {
	return d&e == e && e != DirNone
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirN:
		return "n"
	case DirS:
		return "s"
	case DirE:
		return "e"
	case DirW:
		return "w"
	case DirNE:
		return "ne"
	case DirNW:
		return "nw"
	case DirSE:
		return "se"
	case DirSW:
		return "sw"
	default:
		return "unknown"
	}
}

// Cursor returns the resize cursor class for d.
func (d Direction) Cursor() Cursor {
	switch d {
	case DirNW, DirSE:
		return CursorNWSE
	case DirNE, DirSW:
		return CursorNESW
	case DirE, DirW:
		return CursorEW
	default:
		return CursorNS
	}
}

// Cursor is one of the four resize cursor classes.
type Cursor int

const (
	CursorNS Cursor = iota
	CursorEW
	CursorNWSE
	CursorNESW
)

func (c Cursor) String() string {
	switch c {
	case CursorNS:
		return "ns-resize"
	case CursorEW:
		return "ew-resize"
	case CursorNWSE:
		return "nwse-resize"
	case CursorNESW:
		return "nesw-resize"
	default:
		return "unknown"
	}
}
