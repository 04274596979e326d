package wm

import (
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
)

// Outcome is the result of ending a session.
type Outcome struct {
	Kind Kind
	// Rect is the committed rectangle, in percent when Maximized.
	Rect      geom.Rect
	Maximized bool
	Zone      snap.Zone
}

// Machine tracks move and resize sessions and the pending rectangle they
// produce. The renderer reads its pending state once per frame.
type Machine struct {
	opts     Options
	detector snap.Detector

	window  WindowState
	session *Session
	pending geom.Rect
	edges   geom.Edges

	preview      geom.Rect
	previewDirty bool
	previewFresh bool

	windowDirty bool
	sizeDirty   bool
}

func NewMachine(opts Options, rect geom.Rect) *Machine {
	return &Machine{
		opts:     opts,
		detector: snap.Detector{Dist: opts.SnapDist},
		window:   WindowState{Rect: rect},
		pending:  rect,
	}
}

func (m *Machine) Window() WindowState {
	return m.window
}

func (m *Machine) Session() *Session {
	return m.session
}

func (m *Machine) Pending() geom.Rect {
	return m.pending
}

func (m *Machine) Edges() geom.Edges {
	return m.edges
}

// VisibleRect is where the window is on screen, in pixels of vp.
func (m *Machine) VisibleRect(vp geom.Size) geom.Rect {
	if m.window.Maximized {
		return geom.FromViewportPercent(m.window.MaximizedRect, vp)
	}
	return m.window.Rect
}

// BeginMove opens a move session grabbed at p.
//
// A maximized window is restored to its pre-maximize size with the grab point
// kept at the same relative position it had in the maximized rectangle.
func (m *Machine) BeginMove(p geom.Point, vp geom.Size) *Session {
	s := &Session{
		Kind:      KindMove,
		Anchor:    m.window.Rect.Relative(p),
		Start:     p,
		StartRect: m.window.Rect,
	}

	m.pending = m.window.Rect
	if m.window.Maximized {
		maxRect := geom.FromViewportPercent(m.window.MaximizedRect, vp)
		s.Anchor = geom.Point{
			X: ratio(p.X-maxRect.X, maxRect.Width) * m.window.Rect.Width,
			Y: ratio(p.Y-maxRect.Y, maxRect.Height) * m.window.Rect.Height,
		}
		s.Restored = true

		m.window.Maximized = false
		m.pending.X = p.X - s.Anchor.X
		m.pending.Y = p.Y - s.Anchor.Y
	}

	m.session = s
	m.edges = geom.Edges{}
	m.windowDirty = true
	m.sizeDirty = true
	return s
}

// BeginResize opens a resize session on the edges p is on.
func (m *Machine) BeginResize(p geom.Point) *Session {
	rel := m.window.Rect.Relative(p)
	s := &Session{
		Kind:      KindResize,
		Anchor:    rel,
		Start:     p,
		StartRect: m.window.Rect,
		Direction: DirectionOf(rel, m.window.Rect.Size()),
	}

	m.session = s
	m.pending = m.window.Rect
	m.edges = geom.Edges{}
	m.windowDirty = false
	return s
}

// Move feeds a pointer sample to the open session.
func (m *Machine) Move(p geom.Point, vp geom.Size) {
	s := m.session
	if s == nil {
		return
	}

	switch s.Kind {
	case KindMove:
		m.pending.X = p.X - s.Anchor.X
		m.pending.Y = p.Y - s.Anchor.Y
		m.detect(geom.Point{X: m.pending.X + s.Anchor.X, Y: m.pending.Y + s.Anchor.Y}, vp)
	case KindResize:
		m.resize(p)
	}
	m.windowDirty = true
}

func (m *Machine) detect(anchor geom.Point, vp geom.Size) {
	m.edges = m.detector.Detect(anchor, vp)

	target, ok := snap.Target(m.edges)
	if !ok {
		m.window.PreviewActive = false
		return
	}

	if !m.window.PreviewActive {
		m.previewFresh = true
		m.previewDirty = true
	} else if target != m.preview {
		m.previewDirty = true
	}
	m.window.PreviewActive = true
	m.preview = target
}

func (m *Machine) resize(p geom.Point) {
	s := m.session
	dx, dy := p.X-s.Start.X, p.Y-s.Start.Y

	if s.Direction.Has(DirN) {
		m.pending.Height = s.StartRect.Height - dy
		m.pending.Y = s.StartRect.Y + dy
	}
	if s.Direction.Has(DirE) {
		m.pending.Width = s.StartRect.Width + dx
	}
	if s.Direction.Has(DirS) {
		m.pending.Height = s.StartRect.Height + dy
	}
	if s.Direction.Has(DirW) {
		m.pending.Width = s.StartRect.Width - dx
		m.pending.X = s.StartRect.X + dx
	}
}

// clamp applies the minimum size to r. Shrinking past the minimum from the
// left or top keeps the opposite edge where it was at session start.
func (m *Machine) clamp(r geom.Rect) geom.Rect {
	s := m.session
	resizing := s != nil && s.Kind == KindResize

	if r.Width <= m.opts.MinWidth {
		r.Width = m.opts.MinWidth
		if resizing && s.Direction.Has(DirW) {
			r.X = s.StartRect.Right() - m.opts.MinWidth
		}
	}
	if r.Height <= m.opts.MinHeight {
		r.Height = m.opts.MinHeight
		if resizing && s.Direction.Has(DirN) {
			r.Y = s.StartRect.Bottom() - m.opts.MinHeight
		}
	}
	return r
}

// End closes the session with a final sample at p and commits it.
func (m *Machine) End(p geom.Point, vp geom.Size) Outcome {
	s := m.session
	if s == nil {
		return Outcome{}
	}

	m.Move(p, vp)

	out := Outcome{Kind: s.Kind}
	switch s.Kind {
	case KindMove:
		if target, ok := snap.Target(m.edges); ok {
			m.window.Maximized = true
			m.window.MaximizedRect = target
			m.windowDirty = false

			out.Rect = target
			out.Maximized = true
			out.Zone = snap.Classify(m.edges)
		} else {
			m.window.Rect = m.pending
			out.Rect = m.pending
		}
	case KindResize:
		m.window.Rect = m.clamp(m.pending)
		m.pending = m.window.Rect
		out.Rect = m.window.Rect
	}

	m.window.PreviewActive = false
	m.previewDirty = false
	m.previewFresh = false
	m.edges = geom.Edges{}
	m.session = nil
	return out
}

// Maximize places the window at r, in percent, outside of any session.
func (m *Machine) Maximize(r geom.Rect) {
	m.window.Maximized = true
	m.window.MaximizedRect = r
	m.windowDirty = false
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
