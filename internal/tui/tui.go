// Package tui hosts a managed window in a terminal. One cell is one unit of
// the viewport.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ItsNotGoodName/x-snapwm/internal/app"
	"github.com/ItsNotGoodName/x-snapwm/internal/core"
	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run starts the terminal host and blocks until it quits or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover needs motion without a button
	)
	_, err = p.Run()
	return err
}

type Config struct {
	Options   wm.Options
	Rect      geom.Rect
	FrameRate int
}

// Options scales pixel options to terminal cells.
func Options(opts wm.Options) wm.Options {
	opts.MinWidth = 12
	opts.MinHeight = 4
	opts.ResizeWidth = 1
	opts.SnapDist = 1
	return opts
}

var DefaultRect = geom.Rect{X: 10, Y: 4, Width: 40, Height: 12}

type frameMsg struct{}

type Model struct {
	controller *wm.Controller
	display    *wm.Display
	queue      *wm.FrameQueue
	window     *wm.MemorySurface
	preview    *wm.MemorySurface
	opts       wm.Options
	interval   time.Duration
	ticking    bool
	cursor     app.Cursor
	err        error

	width  int
	height int
}

func New(cfg Config) (*Model, error) {
	m := &Model{
		display:  wm.NewDisplay(geom.Size{Width: 80, Height: 23}),
		queue:    wm.NewFrameQueue(),
		window:   &wm.MemorySurface{},
		preview:  &wm.MemorySurface{},
		opts:     cfg.Options,
		interval: core.FrameInterval(cfg.FrameRate),
		width:    80,
		height:   24,
	}

	c, err := wm.New(wm.Config{
		Options:   cfg.Options,
		Rect:      cfg.Rect,
		Window:    m.window,
		Preview:   m.preview,
		Viewport:  m.display,
		Scheduler: m.queue,
		Logger:    slog.Default(),
	})
	if err != nil {
		return nil, err
	}
	m.controller = c

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.display.Resize(canvasSize(msg.Width, msg.Height)) {
			m.check(m.controller.Relayout())
		}
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.tick()
	case frameMsg:
		m.ticking = false
		m.queue.Run()
		return m, m.tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	c := m.controller
	p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		target := c.HitTest(p)
		if err := c.PointerDown(target, p); err != nil {
			m.check(err)
			return
		}
		switch {
		case !c.Active():
			m.cursor = app.CursorDefault
		case target == wm.TargetContent:
			m.cursor = app.CursorMove
		default:
			m.cursor = app.ResizeCursor(c.Hover(p))
		}
	case tea.MouseActionMotion:
		if c.Active() {
			c.PointerMove(p)
			return
		}
		m.cursor = app.CursorAt(c.HitTest(p), c.Hover(p))
	case tea.MouseActionRelease:
		c.PointerUp(p)
		m.cursor = app.CursorAt(c.HitTest(p), c.Hover(p))
	}
}

// tick asks for a frame when a flush is pending and none is asked for yet.
func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.queue.Armed() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) check(err error) {
	m.err = err
	if err != nil {
		slog.Debug("Pointer event failed", "error", err)
	}
}

func canvasSize(width, height int) geom.Size {
	// The last row is the status line.
	return geom.Size{Width: float64(width), Height: float64(max(height-1, 0))}
}

var (
	windowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238"))
	titleStyle       = windowStyle.Bold(true).Foreground(lipgloss.Color("231"))
	previewStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("68"))
	previewBlurStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Faint(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (m *Model) View() string {
	vp := m.display.Size()
	canvas := newCanvas(int(vp.Width), int(vp.Height))

	drawPreview := func() {
		if m.preview.Opacity <= 0 {
			return
		}
		style := previewStyle
		if m.opts.BlurPreviewBg {
			style = previewBlurStyle
		}
		canvas.fill(m.preview.Rect(vp), '░', style)
	}
	drawWindow := func() {
		r := m.window.Rect(vp)
		canvas.box(r, windowStyle)
		canvas.text(r, " x-snapwm ", titleStyle)
	}

	// A negative z-index puts the preview above the window.
	if m.opts.ZIndex < 0 {
		drawWindow()
		drawPreview()
	} else {
		drawPreview()
		drawWindow()
	}

	return canvas.String() + "\n" + m.status()
}

func (m *Model) status() string {
	state := m.controller.State()

	parts := []string{"x-snapwm", state.Session.String(), "cursor " + m.cursor.String()}
	if state.Window.Maximized {
		parts = append(parts, "maximized")
	}
	if state.Window.PreviewActive {
		parts = append(parts, "snap "+state.Zone.String())
	}
	parts = append(parts, "q quit")

	line := statusStyle.Render(strings.Join(parts, "  "))
	if m.err != nil {
		line += "  " + errorStyle.Render(fmt.Sprint(m.err))
	}
	return line
}
