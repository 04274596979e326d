package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ItsNotGoodName/x-snapwm/internal/build"
	"github.com/ItsNotGoodName/x-snapwm/pkg/chiext"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chiext.Logger())
	r.Use(middleware.Recoverer)
	return r
}

func NewAPI(r chi.Router) huma.API {
	return humachi.New(r, huma.DefaultConfig("x-snapwm", build.Current.Version))
}

// HTTPService serves handler until its context is done.
type HTTPService struct {
	addr    string
	handler http.Handler
}

func NewHTTPService(host string, port int, handler http.Handler) HTTPService {
	return HTTPService{
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		handler: handler,
	}
}

func (s HTTPService) String() string {
	return "api.HTTPService(addr=" + s.addr + ")"
}

func (s HTTPService) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
	}

	errC := make(chan error, 1)
	go func() { errC <- srv.ListenAndServe() }()
	slog.Info("Listening", "addr", s.addr)

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
