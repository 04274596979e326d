// Package api exposes a window over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/build"
	"github.com/ItsNotGoodName/x-snapwm/internal/bus"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
)

// Backend is the window the API drives. *app.Loop implements it.
type Backend interface {
	Press(ctx context.Context, p geom.Point) (app.Result, error)
	Motion(ctx context.Context, p geom.Point) (app.Result, error)
	Hover(ctx context.Context, p geom.Point) (app.Result, error)
	Release(ctx context.Context, p geom.Point) (app.Result, error)
	Snap(ctx context.Context, zone snap.Zone) (app.Result, error)
	State(ctx context.Context) (wm.State, error)
	Do(ctx context.Context, fn func(c *wm.Controller) error) error
}

// Surfaces are the headless surfaces of a backend. They are only read on the
// backend's goroutine.
type Surfaces struct {
	Window  *wm.MemorySurface
	Preview *wm.MemorySurface
}

// NewHub returns a hub of every session event published on the bus.
func NewHub() *bus.Hub[Event] {
	hub := bus.NewHub[Event]()
	bus.Forward(hub, NewStartedEvent)
	bus.Forward(hub, NewEndedEvent)
	return hub
}

type Server struct {
	backend  Backend
	surfaces *Surfaces
	hub      *bus.Hub[Event]
}

// NewServer returns a server for backend. Surfaces is nil when the backend
// draws to real windows.
func NewServer(backend Backend, surfaces *Surfaces, hub *bus.Hub[Event]) *Server {
	return &Server{
		backend:  backend,
		surfaces: surfaces,
		hub:      hub,
	}
}

func (s *Server) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-build",
		Method:      http.MethodGet,
		Path:        "/api/build",
		Summary:     "Get build",
	}, s.GetBuild)
	huma.Register(api, huma.Operation{
		OperationID: "get-window",
		Method:      http.MethodGet,
		Path:        "/api/window",
		Summary:     "Get window",
	}, s.GetWindow)
	huma.Register(api, huma.Operation{
		OperationID: "post-pointer",
		Method:      http.MethodPost,
		Path:        "/api/pointer",
		Summary:     "Send pointer event",
	}, s.PostPointer)
	huma.Register(api, huma.Operation{
		OperationID: "post-snap",
		Method:      http.MethodPost,
		Path:        "/api/snap",
		Summary:     "Snap window",
	}, s.PostSnap)
	huma.Register(api, huma.Operation{
		OperationID: "get-surface",
		Method:      http.MethodGet,
		Path:        "/api/surface",
		Summary:     "Get headless surfaces",
	}, s.GetSurface)
	sse.Register(api, huma.Operation{
		OperationID: "get-events",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Stream session events",
	}, map[string]any{
		"session": Event{},
	}, s.GetEvents)
}

type GetBuildOutput struct {
	Body build.Build
}

func (s *Server) GetBuild(ctx context.Context, input *struct{}) (*GetBuildOutput, error) {
	return &GetBuildOutput{Body: build.Current}, nil
}

type GetWindowOutput struct {
	Body Window
}

func (s *Server) GetWindow(ctx context.Context, input *struct{}) (*GetWindowOutput, error) {
	state, err := s.backend.State(ctx)
	if err != nil {
		return nil, backendError(err)
	}
	return &GetWindowOutput{Body: NewWindow(state)}, nil
}

type PostPointerInput struct {
	Body struct {
		Action string  `json:"action" enum:"down,move,up,hover"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
	}
}

type PostPointerOutput struct {
	Body Pointer
}

func (s *Server) PostPointer(ctx context.Context, input *PostPointerInput) (*PostPointerOutput, error) {
	p := geom.Point{X: input.Body.X, Y: input.Body.Y}

	var (
		res app.Result
		err error
	)
	switch input.Body.Action {
	case "down":
		res, err = s.backend.Press(ctx, p)
	case "move":
		res, err = s.backend.Motion(ctx, p)
	case "up":
		res, err = s.backend.Release(ctx, p)
	case "hover":
		res, err = s.backend.Hover(ctx, p)
	default:
		return nil, huma.Error422UnprocessableEntity("invalid action: " + input.Body.Action)
	}
	if err != nil {
		return nil, backendError(err)
	}

	return &PostPointerOutput{Body: NewPointer(res)}, nil
}

type PostSnapInput struct {
	Body struct {
		Zone string `json:"zone" enum:"none,left,right,top-left,top-right,bottom-left,bottom-right,full"`
	}
}

func (s *Server) PostSnap(ctx context.Context, input *PostSnapInput) (*GetWindowOutput, error) {
	zone, err := snap.ParseZone(input.Body.Zone)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	res, err := s.backend.Snap(ctx, zone)
	if err != nil {
		return nil, backendError(err)
	}
	return &GetWindowOutput{Body: NewWindow(res.State)}, nil
}

type GetSurfaceOutput struct {
	Body struct {
		Window  Surface `json:"window"`
		Preview Surface `json:"preview"`
	}
}

func (s *Server) GetSurface(ctx context.Context, input *struct{}) (*GetSurfaceOutput, error) {
	if s.surfaces == nil {
		return nil, huma.Error404NotFound("no headless surfaces")
	}

	var out GetSurfaceOutput
	err := s.backend.Do(ctx, func(c *wm.Controller) error {
		out.Body.Window = NewSurface(s.surfaces.Window)
		out.Body.Preview = NewSurface(s.surfaces.Preview)
		return nil
	})
	if err != nil {
		return nil, backendError(err)
	}
	return &out, nil
}

func (s *Server) GetEvents(ctx context.Context, input *struct{}, send sse.Sender) {
	eventC, unsubscribe := s.hub.Subscribe(ctx)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-eventC:
			if err := send.Data(event); err != nil {
				return
			}
		}
	}
}

func backendError(err error) error {
	switch {
	case errors.Is(err, wm.ErrSessionActive):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, app.ErrLoopClosed):
		return huma.Error503ServiceUnavailable(err.Error())
	default:
		return huma.Error500InternalServerError("backend failed", err)
	}
}
