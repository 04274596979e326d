package wm

import (
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/google/uuid"
)

// Config holds the collaborators of a controller.
type Config struct {
	Options Options
	// Rect is the on-screen rectangle of the window when it is taken over.
	Rect      geom.Rect
	Window    Surface
	Preview   Surface
	Viewport  Viewport
	Scheduler Scheduler
	Logger    *slog.Logger
}

// Controller turns pointer events into move and resize sessions for one
// window. It must be called from a single goroutine.
type Controller struct {
	id       string
	opts     Options
	window   Surface
	viewport Viewport
	machine  *Machine
	renderer *Renderer
	log      *slog.Logger

	// Session scoped handlers, set on pointer-down and cleared on pointer-up.
	move    func(p geom.Point)
	release func(p geom.Point)

	onEvent func(event any)
}

// New takes over the window at cfg.Rect and writes its initial placement.
func New(cfg Config) (*Controller, error) {
	id := uuid.NewString()

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("window", id)

	machine := NewMachine(cfg.Options, cfg.Rect)
	c := &Controller{
		id:       id,
		opts:     cfg.Options,
		window:   cfg.Window,
		viewport: cfg.Viewport,
		machine:  machine,
		renderer: NewRenderer(machine, cfg.Window, cfg.Preview, cfg.Scheduler, log),
		log:      log,
	}

	if err := writeRect(cfg.Window, cfg.Rect, geom.Pixel); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if err := cfg.Preview.SetOpacity(0); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	return c, nil
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) Options() Options {
	return c.opts
}

// OnEvent sets the receiver of SessionStarted and SessionEnded events.
func (c *Controller) OnEvent(fn func(event any)) {
	c.onEvent = fn
}

func (c *Controller) emit(event any) {
	if c.onEvent != nil {
		c.onEvent(event)
	}
}

// Active reports whether a session is open.
func (c *Controller) Active() bool {
	return c.move != nil
}

// HitTest returns what a pointer-down at p would grab.
func (c *Controller) HitTest(p geom.Point) Target {
	rect := c.machine.VisibleRect(c.viewport.Size())
	if rect.Contains(p) {
		return TargetContent
	}
	if c.opts.Resizable && !c.machine.window.Maximized && rect.Grow(c.opts.ResizeWidth).Contains(p) {
		return TargetResize
	}
	return TargetNone
}

// PointerDown starts a session on target. Resize targets are ignored when the
// window is not resizable or is maximized.
func (c *Controller) PointerDown(target Target, p geom.Point) error {
	if c.Active() {
		return ErrSessionActive
	}

	switch target {
	case TargetContent:
		c.startMove(p)
	case TargetResize:
		if !c.opts.Resizable || c.machine.window.Maximized {
			return nil
		}
		c.startResize(p)
	}

	return nil
}

// PointerMove feeds p to the open session. Without one it does nothing.
func (c *Controller) PointerMove(p geom.Point) {
	if c.move != nil {
		c.move(p)
	}
}

// PointerUp ends the open session at p.
func (c *Controller) PointerUp(p geom.Point) {
	release := c.release
	c.move, c.release = nil, nil
	if release != nil {
		release(p)
	}
}

// Hover returns the resize cursor for p. It does not change any state.
func (c *Controller) Hover(p geom.Point) Cursor {
	rect := c.machine.VisibleRect(c.viewport.Size())
	return DirectionOf(rect.Relative(p), rect.Size()).Cursor()
}

func (c *Controller) startMove(p geom.Point) {
	s := c.machine.BeginMove(p, c.viewport.Size())
	c.move = func(p geom.Point) {
		c.machine.Move(p, c.viewport.Size())
		c.renderer.RequestFlush()
	}
	c.release = c.endMove

	c.log.Debug("Move started", "anchor", s.Anchor, "restored", s.Restored)
	if s.Restored {
		c.renderer.RequestFlush()
	}
	c.emit(SessionStarted{WindowID: c.id, Kind: KindMove, Restored: s.Restored})
}

func (c *Controller) endMove(p geom.Point) {
	out := c.machine.End(p, c.viewport.Size())
	if out.Maximized {
		// No frame follows the last pointer-up, so the snapped placement is
		// written now.
		if err := writeRect(c.window, out.Rect, geom.Percent); err != nil {
			c.log.Error("Failed to write maximized window", "error", err)
		}
		c.log.Info("Window snapped", "zone", out.Zone.String())
	}
	c.renderer.RequestFlush()

	c.log.Debug("Move ended", "rect", out.Rect, "maximized", out.Maximized)
	c.emit(SessionEnded{WindowID: c.id, Kind: KindMove, Rect: out.Rect, Maximized: out.Maximized, Zone: out.Zone})
}

func (c *Controller) startResize(p geom.Point) {
	s := c.machine.BeginResize(p)
	c.move = func(p geom.Point) {
		c.machine.Move(p, c.viewport.Size())
		c.renderer.RequestFlush()
	}
	c.release = c.endResize

	c.log.Debug("Resize started", "direction", s.Direction.String())
	c.emit(SessionStarted{WindowID: c.id, Kind: KindResize, Direction: s.Direction})
}

func (c *Controller) endResize(p geom.Point) {
	out := c.machine.End(p, c.viewport.Size())
	c.renderer.RequestFlush()

	c.log.Debug("Resize ended", "rect", out.Rect)
	c.emit(SessionEnded{WindowID: c.id, Kind: KindResize, Rect: out.Rect})
}

// Snap maximizes the window into zone outside of a session. ZoneNone restores
// the window to its pixel rectangle.
func (c *Controller) Snap(zone snap.Zone) error {
	if c.Active() {
		return ErrSessionActive
	}

	target, ok := snap.Target(zone.Edges())
	if !ok {
		if !c.machine.window.Maximized {
			return nil
		}
		c.machine.window.Maximized = false
		c.machine.windowDirty = true
		c.renderer.RequestFlush()
		return nil
	}

	c.machine.Maximize(target)
	c.log.Info("Window snapped", "zone", zone.String())
	return writeRect(c.window, target, geom.Percent)
}

// Relayout writes the maximized placement and the snap preview again after
// the viewport changed.
func (c *Controller) Relayout() error {
	if c.machine.window.PreviewActive {
		c.machine.previewDirty = true
		c.renderer.RequestFlush()
	}
	if !c.machine.window.Maximized {
		return nil
	}
	return writeRect(c.window, c.machine.window.MaximizedRect, geom.Percent)
}

// Flush forces a flush to be scheduled.
func (c *Controller) Flush() {
	c.machine.windowDirty = true
	c.renderer.RequestFlush()
}

func (c *Controller) State() State {
	m := c.machine
	state := State{
		ID:      c.id,
		Window:  m.window,
		Pending: m.pending,
		Preview: m.preview,
		Edges:   m.edges,
		Zone:    snap.Classify(m.edges),
	}
	if s := m.session; s != nil {
		state.Session = s.Kind
		state.Direction = s.Direction
	}
	return state
}
