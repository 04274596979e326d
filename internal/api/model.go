package api

import (
	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
)

type Window struct {
	ID            string     `json:"id"`
	Rect          geom.Rect  `json:"rect" doc:"Committed rectangle in pixels"`
	Maximized     bool       `json:"maximized"`
	MaximizedRect geom.Rect  `json:"maximized_rect" doc:"Maximized rectangle in percent of the viewport"`
	PreviewActive bool       `json:"preview_active"`
	Pending       geom.Rect  `json:"pending" doc:"Rectangle of the open session in pixels"`
	Preview       geom.Rect  `json:"preview" doc:"Snap preview rectangle in percent of the viewport"`
	Session       string     `json:"session" enum:"none,move,resize"`
	Direction     string     `json:"direction"`
	Edges         geom.Edges `json:"edges"`
	Zone          string     `json:"zone"`
}

func NewWindow(s wm.State) Window {
	return Window{
		ID:            s.ID,
		Rect:          s.Window.Rect,
		Maximized:     s.Window.Maximized,
		MaximizedRect: s.Window.MaximizedRect,
		PreviewActive: s.Window.PreviewActive,
		Pending:       s.Pending,
		Preview:       s.Preview,
		Session:       s.Session.String(),
		Direction:     s.Direction.String(),
		Edges:         s.Edges,
		Zone:          s.Zone.String(),
	}
}

type Pointer struct {
	Target string `json:"target" enum:"none,content,resize"`
	Cursor string `json:"cursor"`
	Window Window `json:"window"`
}

func NewPointer(res app.Result) Pointer {
	return Pointer{
		Target: res.Target.String(),
		Cursor: res.Cursor.String(),
		Window: NewWindow(res.State),
	}
}

type Surface struct {
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	PositionUnit   string  `json:"position_unit" enum:"px,%"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	SizeUnit       string  `json:"size_unit" enum:"px,%"`
	Opacity        float64 `json:"opacity"`
	Transition     bool    `json:"transition"`
	PositionWrites int     `json:"position_writes"`
	SizeWrites     int     `json:"size_writes"`
	OpacityWrites  int     `json:"opacity_writes"`
}

func NewSurface(s *wm.MemorySurface) Surface {
	return Surface{
		X:              s.Position.X,
		Y:              s.Position.Y,
		PositionUnit:   s.PositionUnit.String(),
		Width:          s.Size.Width,
		Height:         s.Size.Height,
		SizeUnit:       s.SizeUnit.String(),
		Opacity:        s.Opacity,
		Transition:     s.Transition,
		PositionWrites: s.PositionWrites,
		SizeWrites:     s.SizeWrites,
		OpacityWrites:  s.OpacityWrites,
	}
}

// Event is a session event as sent on the event stream.
type Event struct {
	Type      string     `json:"type" enum:"started,ended"`
	WindowID  string     `json:"window_id"`
	Kind      string     `json:"kind" enum:"move,resize"`
	Direction string     `json:"direction,omitempty"`
	Restored  bool       `json:"restored,omitempty"`
	Rect      *geom.Rect `json:"rect,omitempty"`
	Maximized bool       `json:"maximized,omitempty"`
	Zone      string     `json:"zone,omitempty"`
}

func NewStartedEvent(e wm.SessionStarted) Event {
	event := Event{
		Type:     "started",
		WindowID: e.WindowID,
		Kind:     e.Kind.String(),
		Restored: e.Restored,
	}
	if e.Kind == wm.KindResize {
		event.Direction = e.Direction.String()
	}
	return event
}

func NewEndedEvent(e wm.SessionEnded) Event {
	event := Event{
		Type:      "ended",
		WindowID:  e.WindowID,
		Kind:      e.Kind.String(),
		Rect:      &e.Rect,
		Maximized: e.Maximized,
	}
	if e.Maximized {
		event.Zone = e.Zone.String()
	}
	return event
}
