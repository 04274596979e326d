package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/ItsNotGoodName/x-snapwm/internal/api"
	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/build"
	"github.com/ItsNotGoodName/x-snapwm/internal/bus"
	"github.com/ItsNotGoodName/x-snapwm/internal/config"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/replay"
	"github.com/ItsNotGoodName/x-snapwm/internal/tui"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/ItsNotGoodName/x-snapwm/internal/xwm"
	"github.com/ItsNotGoodName/x-snapwm/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

var headlessViewport = geom.Size{Width: 1920, Height: 1080}

type Options struct {
	Debug    bool   `doc:"enable debug"`
	Host     string `doc:"host to listen on"`
	Port     int    `doc:"port to listen on" default:"8080"`
	Config   string `doc:"config file" default:".x-snapwm.yaml"`
	Headless bool   `doc:"manage an in-memory window instead of an X window"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(os.Stderr, slog.LevelDebug)
		} else {
			InitLogger(os.Stderr, slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			return serve(ctx, options)
		})
	})

	cli.Root().Use = "x-snapwm"
	cli.Root().Version = build.Current.String()

	cli.Root().AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Manage a window in the terminal",
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, options *Options) {
			if err := runTUI(options); err != nil {
				log.Fatal(err)
			}
		}),
	})

	cli.Root().AddCommand(&cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a pointer script on an in-memory window",
		Args:  cobra.ExactArgs(1),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, options *Options) {
			if err := runReplay(cmd.OutOrStdout(), options, args[0]); err != nil {
				log.Fatal(err)
			}
		}),
	})

	cli.Run()
}

func InitLogger(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(w, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}

func loadConfig(filePath string) (config.Config, error) {
	configFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return config.Config{}, err
	}

	store, err := config.NewStore(config.NewDriver(configFilePath))
	if err != nil {
		return config.Config{}, err
	}

	return store.GetConfig()
}

func serve(ctx context.Context, options *Options) error {
	bus.SetContext(ctx)

	cfg, err := loadConfig(options.Config)
	if err != nil {
		return err
	}

	super := sutureext.NewSimple("root")

	appCfg := app.Config{
		Options:   cfg.Window.Options(),
		Rect:      cfg.Window.Rect(),
		FrameRate: cfg.FrameRate,
	}

	var (
		loop     *app.Loop
		surfaces *api.Surfaces
	)
	if options.Headless {
		surfaces = &api.Surfaces{
			Window:  &wm.MemorySurface{},
			Preview: &wm.MemorySurface{},
		}
		appCfg.Viewport = headlessViewport
		appCfg.Window = surfaces.Window
		appCfg.Preview = surfaces.Preview

		loop, err = app.New(appCfg)
		if err != nil {
			return err
		}
	} else {
		conn, err := xgb.NewConn()
		if err != nil {
			return err
		}
		defer conn.Close()

		host, err := xwm.NewHost(conn, appCfg.Options)
		if err != nil {
			return err
		}
		defer host.Close()

		appCfg.Viewport = host.Size()
		appCfg.Window = host.Window()
		appCfg.Preview = host.Preview()
		appCfg.OnCursor = host.SetCursor

		loop, err = app.New(appCfg)
		if err != nil {
			return err
		}

		sutureext.Add(super, xwm.NewService(conn, host, loop))
	}
	sutureext.Add(super, loop)

	router := api.NewRouter()
	api.NewServer(loop, surfaces, api.NewHub()).Register(api.NewAPI(router))
	sutureext.Add(super, api.NewHTTPService(options.Host, options.Port, router))

	err = super.Serve(ctx)
	if sutureext.IsShutdown(err) {
		return nil
	}
	return err
}

func runTUI(options *Options) error {
	// The terminal belongs to the program, so logs go to a file or nowhere.
	if options.Debug {
		file, err := os.OpenFile("x-snapwm.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		defer file.Close()
		InitLogger(file, slog.LevelDebug)
	} else {
		InitLogger(io.Discard, slog.LevelInfo)
	}

	cfg, err := loadConfig(options.Config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return tui.Run(ctx, tui.Config{
		Options:   tui.Options(cfg.Window.Options()),
		Rect:      tui.DefaultRect,
		FrameRate: cfg.FrameRate,
	})
}

func runReplay(w io.Writer, options *Options, filePath string) error {
	cfg, err := config.NewDriver(options.Config).Read()
	if err != nil {
		return err
	}

	script, err := replay.Load(filePath)
	if err != nil {
		return err
	}

	res, err := replay.Run(script, cfg.Window.Options())
	if err != nil {
		return err
	}

	return replay.Print(w, res)
}
