// Package app serializes pointer events, viewport changes and queries for a
// controller onto one goroutine and paces its flushes to a frame rate.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ItsNotGoodName/x-snapwm/internal/bus"
	"github.com/ItsNotGoodName/x-snapwm/internal/core"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
)

var ErrLoopClosed = errors.New("loop closed")

type Config struct {
	Options   wm.Options
	Rect      geom.Rect
	Viewport  geom.Size
	Window    wm.Surface
	Preview   wm.Surface
	FrameRate int
	// OnCursor is called on the loop goroutine when the cursor changes.
	OnCursor func(cursor Cursor)
}

// Result is the outcome of a pointer event.
type Result struct {
	Target wm.Target `json:"target"`
	Cursor Cursor    `json:"cursor"`
	State  wm.State  `json:"state"`
}

type Loop struct {
	controller *wm.Controller
	display    *wm.Display
	queue      *wm.FrameQueue
	interval   time.Duration
	cursor     *Signal[Cursor]
	log        *slog.Logger

	requestC  chan request
	doneC     chan struct{}
	closeOnce sync.Once
}

func New(cfg Config) (*Loop, error) {
	display := wm.NewDisplay(cfg.Viewport)
	queue := wm.NewFrameQueue()

	controller, err := wm.New(wm.Config{
		Options:   cfg.Options,
		Rect:      cfg.Rect,
		Window:    cfg.Window,
		Preview:   cfg.Preview,
		Viewport:  display,
		Scheduler: queue,
		Logger:    slog.Default(),
	})
	if err != nil {
		return nil, err
	}
	controller.OnEvent(func(event any) { bus.Publish(event) })

	cursor := NewSignal(CursorDefault)
	if cfg.OnCursor != nil {
		cursor.AddEffect(func() { cfg.OnCursor(cursor.V) })
	}

	return &Loop{
		controller: controller,
		display:    display,
		queue:      queue,
		interval:   core.FrameInterval(cfg.FrameRate),
		cursor:     cursor,
		log:        slog.With("package", "app", "window", controller.ID()),
		requestC:   make(chan request),
		doneC:      make(chan struct{}),
	}, nil
}

func (l *Loop) String() string {
	return fmt.Sprintf("app.Loop(window=%s)", l.controller.ID())
}

type (
	pressMsg   struct{ p geom.Point }
	motionMsg  struct{ p geom.Point }
	hoverMsg   struct{ p geom.Point }
	releaseMsg struct{ p geom.Point }
	resizeMsg  struct{ size geom.Size }
	snapMsg    struct{ zone snap.Zone }
	callMsg    struct{ fn func(c *wm.Controller) error }
)

type request struct {
	msg    any
	replyC chan reply
}

type reply struct {
	result Result
	err    error
}

// Serve runs the loop until ctx is done. A loop serves once.
func (l *Loop) Serve(ctx context.Context) error {
	select {
	case <-l.doneC:
		return ErrLoopClosed
	default:
	}
	defer l.closeOnce.Do(func() { close(l.doneC) })

	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
	)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-l.requestC:
			result, err := l.handle(req.msg)
			req.replyC <- reply{result: result, err: err}
		case <-l.queue.C():
			// Flushes wait for the next frame.
			if ticker == nil {
				ticker = time.NewTicker(l.interval)
				tickC = ticker.C
			}
		case <-tickC:
			l.queue.Run()
			if !l.queue.Armed() {
				ticker.Stop()
				ticker, tickC = nil, nil
			}
		}
	}
}

func (l *Loop) handle(msg any) (Result, error) {
	c := l.controller

	switch msg := msg.(type) {
	case pressMsg:
		target := c.HitTest(msg.p)
		if err := c.PointerDown(target, msg.p); err != nil {
			return l.result(target), err
		}
		switch {
		case !c.Active():
			l.cursor.SetValue(CursorDefault)
		case target == wm.TargetContent:
			l.cursor.SetValue(CursorMove)
		default:
			l.cursor.SetValue(ResizeCursor(c.Hover(msg.p)))
		}
		return l.result(target), nil
	case motionMsg:
		if c.Active() {
			c.PointerMove(msg.p)
			return l.result(wm.TargetNone), nil
		}
		target := c.HitTest(msg.p)
		l.cursor.SetValue(CursorAt(target, c.Hover(msg.p)))
		return l.result(target), nil
	case hoverMsg:
		if c.Active() {
			return l.result(wm.TargetNone), wm.ErrSessionActive
		}
		target := c.HitTest(msg.p)
		l.cursor.SetValue(CursorAt(target, c.Hover(msg.p)))
		return l.result(target), nil
	case releaseMsg:
		c.PointerUp(msg.p)
		target := c.HitTest(msg.p)
		l.cursor.SetValue(CursorAt(target, c.Hover(msg.p)))
		return l.result(target), nil
	case resizeMsg:
		if !l.display.Resize(msg.size) {
			return l.result(wm.TargetNone), nil
		}
		l.log.Debug("Viewport resized", "width", msg.size.Width, "height", msg.size.Height)
		err := c.Relayout()
		return l.result(wm.TargetNone), err
	case snapMsg:
		err := c.Snap(msg.zone)
		return l.result(wm.TargetNone), err
	case callMsg:
		err := msg.fn(c)
		return l.result(wm.TargetNone), err
	default:
		return Result{}, fmt.Errorf("unknown message %T", msg)
	}
}

func (l *Loop) result(target wm.Target) Result {
	return Result{
		Target: target,
		Cursor: l.cursor.V,
		State:  l.controller.State(),
	}
}

func (l *Loop) send(ctx context.Context, msg any) (Result, error) {
	req := request{msg: msg, replyC: make(chan reply, 1)}

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-l.doneC:
		return Result{}, ErrLoopClosed
	case l.requestC <- req:
	}

	rep := <-req.replyC
	return rep.result, rep.err
}

// Press hit-tests p and starts a session on what it hits.
func (l *Loop) Press(ctx context.Context, p geom.Point) (Result, error) {
	return l.send(ctx, pressMsg{p: p})
}

// Motion moves the open session, or updates the hover cursor without one.
func (l *Loop) Motion(ctx context.Context, p geom.Point) (Result, error) {
	return l.send(ctx, motionMsg{p: p})
}

// Hover updates the hover cursor. It fails with wm.ErrSessionActive instead
// of moving an open session.
func (l *Loop) Hover(ctx context.Context, p geom.Point) (Result, error) {
	return l.send(ctx, hoverMsg{p: p})
}

func (l *Loop) Release(ctx context.Context, p geom.Point) (Result, error) {
	return l.send(ctx, releaseMsg{p: p})
}

// Resize updates the viewport and relays out a maximized window.
func (l *Loop) Resize(ctx context.Context, size geom.Size) error {
	_, err := l.send(ctx, resizeMsg{size: size})
	return err
}

func (l *Loop) Snap(ctx context.Context, zone snap.Zone) (Result, error) {
	return l.send(ctx, snapMsg{zone: zone})
}

// Do calls fn on the loop goroutine.
func (l *Loop) Do(ctx context.Context, fn func(c *wm.Controller) error) error {
	_, err := l.send(ctx, callMsg{fn: fn})
	return err
}

func (l *Loop) State(ctx context.Context) (wm.State, error) {
	res, err := l.send(ctx, callMsg{fn: func(c *wm.Controller) error { return nil }})
	return res.State, err
}
