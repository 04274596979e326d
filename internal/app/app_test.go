package app

import (
	"context"
	"testing"
	"time"

	"github.com/ItsNotGoodName/x-snapwm/internal/bus"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testViewport = geom.Size{Width: 1000, Height: 800}
	testRect     = geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}
)

type fixture struct {
	loop    *Loop
	window  *wm.MemorySurface
	preview *wm.MemorySurface
	cursorC chan Cursor
	errC    chan error
	cancel  context.CancelFunc
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		window:  &wm.MemorySurface{},
		preview: &wm.MemorySurface{},
		cursorC: make(chan Cursor, 16),
		errC:    make(chan error, 1),
	}
	loop, err := New(Config{
		Options:   wm.DefaultOptions(),
		Rect:      testRect,
		Viewport:  testViewport,
		Window:    f.window,
		Preview:   f.preview,
		FrameRate: 1000,
		OnCursor:  func(cursor Cursor) { f.cursorC <- cursor },
	})
	require.NoError(t, err)
	f.loop = loop

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	go func() { f.errC <- loop.Serve(ctx) }()
	t.Cleanup(cancel)

	return f
}

// windowRect reads the window surface on the loop goroutine.
func (f *fixture) windowRect(t *testing.T) geom.Rect {
	var rect geom.Rect
	err := f.loop.Do(context.Background(), func(c *wm.Controller) error {
		rect = f.window.Rect(testViewport)
		return nil
	})
	require.NoError(t, err)
	return rect
}

func TestLoopMove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.loop.Press(ctx, geom.Point{X: 200, Y: 200})
	require.NoError(t, err)
	assert.Equal(t, wm.TargetContent, res.Target)
	assert.Equal(t, CursorMove, res.Cursor)
	assert.Equal(t, wm.KindMove, res.State.Session)

	_, err = f.loop.Motion(ctx, geom.Point{X: 300, Y: 250})
	require.NoError(t, err)

	want := geom.Rect{X: 200, Y: 150, Width: 400, Height: 300}
	assert.Eventually(t, func() bool { return f.windowRect(t) == want }, time.Second, 5*time.Millisecond)

	res, err = f.loop.Release(ctx, geom.Point{X: 300, Y: 250})
	require.NoError(t, err)
	assert.Equal(t, wm.KindNone, res.State.Session)
	assert.Equal(t, want, res.State.Window.Rect)
}

func TestLoopCursor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.loop.Motion(ctx, geom.Point{X: 95, Y: 200})
	require.NoError(t, err)
	assert.Equal(t, wm.TargetResize, res.Target)
	assert.Equal(t, CursorEW, <-f.cursorC)

	_, err = f.loop.Motion(ctx, geom.Point{X: 94, Y: 210})
	require.NoError(t, err)

	_, err = f.loop.Motion(ctx, geom.Point{X: 300, Y: 300})
	require.NoError(t, err)
	assert.Equal(t, CursorDefault, <-f.cursorC)
	assert.Len(t, f.cursorC, 0)
}

func TestLoopSessionActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.loop.Press(ctx, geom.Point{X: 200, Y: 200})
	require.NoError(t, err)

	_, err = f.loop.Press(ctx, geom.Point{X: 210, Y: 210})
	assert.ErrorIs(t, err, wm.ErrSessionActive)
}

func TestLoopSnapAndRelayout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.loop.Snap(ctx, snap.ZoneLeft)
	require.NoError(t, err)
	assert.True(t, res.State.Window.Maximized)
	assert.Equal(t, geom.Rect{Width: 500, Height: 800}, f.windowRect(t))

	require.NoError(t, f.loop.Resize(ctx, geom.Size{Width: 500, Height: 400}))

	var writes int
	require.NoError(t, f.loop.Do(ctx, func(c *wm.Controller) error {
		writes = f.window.GeometryWrites()
		return nil
	}))
	assert.Equal(t, 6, writes)
}

func TestLoopResultFollowsCall(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.loop.Snap(ctx, snap.ZoneRight)
	require.NoError(t, err)
	state, err := f.loop.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, res.State)
	assert.Equal(t, geom.Rect{X: 50, Width: 50, Height: 100}, res.State.Window.MaximizedRect)

	res, err = f.loop.Snap(ctx, snap.ZoneNone)
	require.NoError(t, err)
	assert.False(t, res.State.Window.Maximized)
}

func TestLoopHover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.loop.Hover(ctx, geom.Point{X: 95, Y: 200})
	require.NoError(t, err)
	assert.Equal(t, wm.TargetResize, res.Target)
	assert.Equal(t, CursorEW, res.Cursor)

	_, err = f.loop.Press(ctx, geom.Point{X: 200, Y: 200})
	require.NoError(t, err)

	_, err = f.loop.Hover(ctx, geom.Point{X: 600, Y: 500})
	assert.ErrorIs(t, err, wm.ErrSessionActive)

	state, err := f.loop.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, testRect, state.Pending)
}

func TestLoopPublishesSessionEvents(t *testing.T) {
	eventC := make(chan wm.SessionEnded, 1)
	bus.Subscribe("app_test", func(ctx context.Context, event wm.SessionEnded) error {
		select {
		case eventC <- event:
		default:
		}
		return nil
	})

	f := newFixture(t)
	ctx := context.Background()

	_, err := f.loop.Press(ctx, geom.Point{X: 200, Y: 200})
	require.NoError(t, err)
	_, err = f.loop.Release(ctx, geom.Point{X: 5, Y: 400})
	require.NoError(t, err)

	event := <-eventC
	assert.True(t, event.Maximized)
	assert.Equal(t, snap.ZoneLeft, event.Zone)
	assert.Equal(t, f.loop.controller.ID(), event.WindowID)
}

func TestLoopClosed(t *testing.T) {
	f := newFixture(t)

	f.cancel()
	assert.ErrorIs(t, <-f.errC, context.Canceled)

	_, err := f.loop.Press(context.Background(), geom.Point{X: 200, Y: 200})
	assert.ErrorIs(t, err, ErrLoopClosed)
	assert.ErrorIs(t, f.loop.Serve(context.Background()), ErrLoopClosed)
}

func TestSignal(t *testing.T) {
	s := NewSignal(1)
	calls := 0
	s.AddEffect(func() { calls++ })

	s.SetValue(1)
	assert.Equal(t, 0, calls)
	s.SetValue(2)
	s.SetValue(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, s.V)
}
