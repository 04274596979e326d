package app

import "github.com/ItsNotGoodName/x-snapwm/internal/wm"

// Cursor is the pointer shape a host shows.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorNS
	CursorEW
	CursorNWSE
	CursorNESW
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorMove:
		return "move"
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

func ResizeCursor(c wm.Cursor) Cursor {
	switch c {
	case wm.CursorEW:
		return CursorEW
	case wm.CursorNWSE:
		return CursorNWSE
	case wm.CursorNESW:
		return CursorNESW
	default:
		return CursorNS
	}
}

// CursorAt is the cursor for a pointer at target outside of a session.
func CursorAt(target wm.Target, resize wm.Cursor) Cursor {
	if target == wm.TargetResize {
		return ResizeCursor(resize)
	}
	return CursorDefault
}
