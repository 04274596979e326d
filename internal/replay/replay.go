// Package replay runs scripted pointer input against a headless window.
package replay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/ItsNotGoodName/x-snapwm/internal/snap"
	"github.com/ItsNotGoodName/x-snapwm/internal/wm"
	"github.com/k0kubun/pp"
	"gopkg.in/yaml.v3"
)

var ErrUnknownAction = errors.New("unknown action")

var defaultRect = geom.Rect{X: 100, Y: 100, Width: 400, Height: 300}

type Script struct {
	Viewport geom.Size  `yaml:"viewport"`
	Window   *geom.Rect `yaml:"window"`
	Steps    []Step     `yaml:"steps"`
}

type Step struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	// Zone is read by snap steps.
	Zone string `yaml:"zone"`
}

func (s Step) Point() geom.Point {
	return geom.Point{X: s.X, Y: s.Y}
}

func Parse(r io.Reader) (Script, error) {
	var script Script
	if err := yaml.NewDecoder(r).Decode(&script); err != nil {
		return Script{}, err
	}
	return script, nil
}

func Load(filePath string) (Script, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Script{}, err
	}
	defer file.Close()

	return Parse(file)
}

// StepResult is what a step hit. Target is set by down and hover steps,
// Cursor by hover steps.
type StepResult struct {
	Action string
	Target string
	Cursor string
	Error  string
}

type Result struct {
	State   wm.State
	Window  wm.MemorySurface
	Preview wm.MemorySurface
	Steps   []StepResult
	Frames  int
}

// Run plays script on a new controller with opts. Errors from the controller
// are recorded per step; unknown actions stop the run. Pending flushes run
// after the last step.
func Run(script Script, opts wm.Options) (Result, error) {
	rect := defaultRect
	if script.Window != nil {
		rect = *script.Window
	}

	window, preview := &wm.MemorySurface{}, &wm.MemorySurface{}
	queue := wm.NewFrameQueue()
	c, err := wm.New(wm.Config{
		Options:   opts,
		Rect:      rect,
		Window:    window,
		Preview:   preview,
		Viewport:  wm.NewDisplay(script.Viewport),
		Scheduler: queue,
		Logger:    slog.Default(),
	})
	if err != nil {
		return Result{}, err
	}

	var res Result
	for i, step := range script.Steps {
		sr := StepResult{Action: step.Action}
		p := step.Point()

		switch step.Action {
		case "down":
			target := c.HitTest(p)
			sr.Target = target.String()
			if err := c.PointerDown(target, p); err != nil {
				sr.Error = err.Error()
			}
		case "move":
			c.PointerMove(p)
		case "up":
			c.PointerUp(p)
		case "frame":
			queue.Run()
			res.Frames++
		case "hover":
			sr.Target = c.HitTest(p).String()
			sr.Cursor = c.Hover(p).String()
		case "snap":
			zone, err := snap.ParseZone(step.Zone)
			if err != nil {
				return res, fmt.Errorf("step %d: %w", i, err)
			}
			if err := c.Snap(zone); err != nil {
				sr.Error = err.Error()
			}
		default:
			return res, fmt.Errorf("step %d: %w: %q", i, ErrUnknownAction, step.Action)
		}

		res.Steps = append(res.Steps, sr)
	}

	if queue.Armed() {
		queue.Run()
		res.Frames++
	}

	res.State = c.State()
	res.Window = *window
	res.Preview = *preview
	return res, nil
}

// Print pretty prints res.
func Print(w io.Writer, res Result) error {
	_, err := pp.Fprintln(w, res)
	return err
}
