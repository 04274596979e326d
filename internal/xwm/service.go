package xwm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/thejerf/suture/v4"
)

const keyQ = 24

var errQuit = fmt.Errorf("quit: %w", suture.ErrTerminateSupervisorTree)

// Handler receives pointer events in container coordinates.
type Handler interface {
	Press(ctx context.Context, p geom.Point) (app.Result, error)
	Motion(ctx context.Context, p geom.Point) (app.Result, error)
	Release(ctx context.Context, p geom.Point) (app.Result, error)
	Resize(ctx context.Context, size geom.Size) error
}

// Service forwards X events of a host to a handler.
type Service struct {
	conn    *xgb.Conn
	host    *Host
	handler Handler
}

func NewService(conn *xgb.Conn, host *Host, handler Handler) Service {
	return Service{
		conn:    conn,
		host:    host,
		handler: handler,
	}
}

func (Service) String() string {
	return "xwm.Service"
}

func (s Service) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventC := make(chan xgb.Event)
	go ReceiveEvents(ctx, s.conn, eventC)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventC:
			if !ok {
				return fmt.Errorf("connection closed: %w", suture.ErrTerminateSupervisorTree)
			}

			if err := s.handle(ctx, ev); err != nil {
				return err
			}
		}
	}
}

func (s Service) handle(ctx context.Context, ev xgb.Event) error {
	switch ev := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		if ev.Window != s.host.root.WID {
			return nil
		}
		slog.Debug("ConfigureNotifyEvent", "width", ev.Width, "height", ev.Height)

		return s.handler.Resize(ctx, s.host.resize(ev.Width, ev.Height))
	case xproto.ButtonPressEvent:
		if ev.Detail != xproto.ButtonIndex1 {
			return nil
		}

		_, err := s.handler.Press(ctx, point(ev.EventX, ev.EventY))
		return check(err)
	case xproto.ButtonReleaseEvent:
		if ev.Detail != xproto.ButtonIndex1 {
			return nil
		}

		_, err := s.handler.Release(ctx, point(ev.EventX, ev.EventY))
		return check(err)
	case xproto.MotionNotifyEvent:
		_, err := s.handler.Motion(ctx, point(ev.EventX, ev.EventY))
		return check(err)
	case xproto.KeyPressEvent:
		slog.Debug("KeyPressEvent", "detail", ev.Detail)

		if ev.Detail == keyQ {
			slog.Debug("exit: quit key pressed")
			return errQuit
		}

		return nil
	case xproto.DestroyNotifyEvent:
		// Some window managers close the connection when the window is
		// killed, others only send this event.
		if ev.Window != s.host.root.WID {
			return nil
		}
		slog.Debug("exit: destroy notify event")

		return errQuit
	default:
		return nil
	}
}

// check drops errors a pointer event may cause without ending the service.
func check(err error) error {
	if errors.Is(err, wm.ErrSessionActive) {
		slog.Debug("Ignored pointer event", "error", err)
		return nil
	}
	return err
}

func point(x, y int16) geom.Point {
	return geom.Point{X: float64(x), Y: float64(y)}
}
