package wm

import (
	"errors"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
)

var ErrSessionActive = errors.New("session already active")

// Kind is the kind of gesture a session tracks.
type Kind int

const (
	KindNone Kind = iota
	KindMove
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMove:
		return "move"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Target is the part of the window a pointer is over.
type Target int

const (
	TargetNone Target = iota
	TargetContent
	TargetResize
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetContent:
		return "content"
	case TargetResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Session lives from pointer-down to pointer-up.
type Session struct {
	Kind Kind
	// Anchor is the grab point relative to the window origin.
	Anchor geom.Point
	// Start is the pointer position at pointer-down.
	Start geom.Point
	// StartRect is the committed rectangle at pointer-down.
	StartRect geom.Rect
	// Direction is fixed for resize sessions.
	Direction Direction
	// Restored is set when the session started by leaving the maximized state.
	Restored bool
}

// WindowState is the committed state of a managed window.
type WindowState struct {
	// Rect is in pixels. It keeps the pre-maximize rectangle while maximized.
	Rect geom.Rect `json:"rect"`
	// Maximized windows are placed at MaximizedRect, in percent.
	Maximized     bool      `json:"maximized"`
	MaximizedRect geom.Rect `json:"maximized_rect"`
	PreviewActive bool      `json:"preview_active"`
}

// State is a snapshot of a controller.
type State struct {
	ID        string
	Window    WindowState
	Pending   geom.Rect
	Preview   geom.Rect
	Session   Kind
	Direction Direction
	Edges     geom.Edges
	Zone      snap.Zone
}

// SessionStarted is emitted on pointer-down.
type SessionStarted struct {
	WindowID  string
	Kind      Kind
	Direction Direction
	Restored  bool
}

// SessionEnded is emitted on pointer-up after the commit.
type SessionEnded struct {
	WindowID string
	Kind     Kind
	// Rect is in pixels, or in percent when Maximized.
	Rect      geom.Rect
	Maximized bool
	Zone      snap.Zone
}
