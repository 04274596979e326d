package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, headless bool) humatest.TestAPI {
	t.Helper()

	surfaces := &Surfaces{
		Window:  &wm.MemorySurface{},
		Preview: &wm.MemorySurface{},
	}
	loop, err := app.New(app.Config{
		Options:   wm.DefaultOptions(),
		Rect:      geom.Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Viewport:  geom.Size{Width: 1000, Height: 800},
		Window:    surfaces.Window,
		Preview:   surfaces.Preview,
		FrameRate: 1000,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go loop.Serve(ctx)

	if !headless {
		surfaces = nil
	}

	_, api := humatest.New(t)
	NewServer(loop, surfaces, NewHub()).Register(api)
	return api
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return v
}

func TestGetWindow(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Get("/api/window")
	require.Equal(t, http.StatusOK, resp.Code)

	window := decode[Window](t, resp.Body.Bytes())
	assert.NotEmpty(t, window.ID)
	assert.Equal(t, geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}, window.Rect)
	assert.Equal(t, "none", window.Session)
}

func TestPostPointerSnap(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Post("/api/pointer", map[string]any{"action": "down", "x": 200, "y": 200})
	require.Equal(t, http.StatusOK, resp.Code)
	pointer := decode[Pointer](t, resp.Body.Bytes())
	assert.Equal(t, "content", pointer.Target)
	assert.Equal(t, "move", pointer.Cursor)
	assert.Equal(t, "move", pointer.Window.Session)

	resp = api.Post("/api/pointer", map[string]any{"action": "hover", "x": 5, "y": 400})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Post("/api/pointer", map[string]any{"action": "down", "x": 200, "y": 200})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Post("/api/pointer", map[string]any{"action": "move", "x": 5, "y": 400})
	require.Equal(t, http.StatusOK, resp.Code)
	pointer = decode[Pointer](t, resp.Body.Bytes())
	assert.True(t, pointer.Window.PreviewActive)
	assert.Equal(t, "left", pointer.Window.Zone)

	resp = api.Post("/api/pointer", map[string]any{"action": "up", "x": 5, "y": 400})
	require.Equal(t, http.StatusOK, resp.Code)
	pointer = decode[Pointer](t, resp.Body.Bytes())
	assert.True(t, pointer.Window.Maximized)
	assert.Equal(t, geom.Rect{Width: 50, Height: 100}, pointer.Window.MaximizedRect)

	resp = api.Get("/api/surface")
	require.Equal(t, http.StatusOK, resp.Code)
	surfaces := decode[struct {
		Window Surface `json:"window"`
	}](t, resp.Body.Bytes())
	assert.Equal(t, "%", surfaces.Window.SizeUnit)
	assert.Equal(t, 50.0, surfaces.Window.Width)
}

func TestPostPointerHover(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Post("/api/pointer", map[string]any{"action": "hover", "x": 95, "y": 95})
	require.Equal(t, http.StatusOK, resp.Code)
	pointer := decode[Pointer](t, resp.Body.Bytes())
	assert.Equal(t, "resize", pointer.Target)
	assert.Equal(t, "nwse-resize", pointer.Cursor)
}

func TestPostPointerHoverDuringSession(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Post("/api/pointer", map[string]any{"action": "down", "x": 200, "y": 200})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = api.Post("/api/pointer", map[string]any{"action": "hover", "x": 600, "y": 500})
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Get("/api/window")
	require.Equal(t, http.StatusOK, resp.Code)
	window := decode[Window](t, resp.Body.Bytes())
	assert.Equal(t, geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}, window.Pending)
}

func TestPostPointerInvalid(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Post("/api/pointer", map[string]any{"action": "jump", "x": 1, "y": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestPostSnap(t *testing.T) {
	api := newTestAPI(t, true)

	resp := api.Post("/api/snap", map[string]any{"zone": "top-right"})
	require.Equal(t, http.StatusOK, resp.Code)
	window := decode[Window](t, resp.Body.Bytes())
	assert.True(t, window.Maximized)
	assert.Equal(t, geom.Rect{X: 50, Width: 50, Height: 50}, window.MaximizedRect)

	resp = api.Post("/api/snap", map[string]any{"zone": "middle"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetSurfaceNotHeadless(t *testing.T) {
	api := newTestAPI(t, false)

	resp := api.Get("/api/surface")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEvents(t *testing.T) {
	started := NewStartedEvent(wm.SessionStarted{WindowID: "w", Kind: wm.KindResize, Direction: wm.DirSE})
	assert.Equal(t, Event{Type: "started", WindowID: "w", Kind: "resize", Direction: "se"}, started)

	ended := NewEndedEvent(wm.SessionEnded{
		WindowID:  "w",
		Kind:      wm.KindMove,
		Rect:      geom.Rect{Width: 100, Height: 100},
		Maximized: true,
		Zone:      snap.ZoneFull,
	})
	assert.Equal(t, "ended", ended.Type)
	assert.Equal(t, "full", ended.Zone)
	require.NotNil(t, ended.Rect)
	assert.Equal(t, geom.Rect{Width: 100, Height: 100}, *ended.Rect)

	b, err := json.Marshal(started)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"rect"`)
}

func TestHubForwardsSessionEvents(t *testing.T) {
	hub := NewHub()
	eventC, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	loop, err := app.New(app.Config{
		Options:  wm.DefaultOptions(),
		Rect:     geom.Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Viewport: geom.Size{Width: 1000, Height: 800},
		Window:   &wm.MemorySurface{},
		Preview:  &wm.MemorySurface{},
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Serve(ctx)

	_, err = loop.Press(ctx, geom.Point{X: 200, Y: 200})
	require.NoError(t, err)

	event := <-eventC
	assert.Equal(t, "started", event.Type)
	assert.Equal(t, "move", event.Kind)
}
