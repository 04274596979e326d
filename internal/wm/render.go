package wm

import (
	"log/slog"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
)

// Renderer applies a Machine's pending state to the window and preview
// surfaces. Any number of RequestFlush calls between frames result in a
// single flush.
type Renderer struct {
	machine *Machine
	window  Surface
	preview Surface
	sched   Scheduler
	log     *slog.Logger

	scheduled bool
}

func NewRenderer(machine *Machine, window, preview Surface, sched Scheduler, log *slog.Logger) *Renderer {
	return &Renderer{
		machine: machine,
		window:  window,
		preview: preview,
		sched:   sched,
		log:     log,
	}
}

// RequestFlush schedules a flush unless one is already scheduled.
func (r *Renderer) RequestFlush() {
	if r.scheduled {
		return
	}
	r.scheduled = true
	r.sched.Schedule(r.flush)
}

func (r *Renderer) flush() {
	r.scheduled = false
	m := r.machine

	r.check("preview opacity", r.preview.SetOpacity(opacity(m.window.PreviewActive)))

	if m.window.PreviewActive {
		if m.previewDirty {
			if m.previewFresh {
				// Start the transition from where the window is.
				r.check("preview transition", r.preview.SetTransition(false))
				r.check("preview seed", writeRect(r.preview, m.pending, geom.Pixel))
				m.previewFresh = false
			}
			r.check("preview transition", r.preview.SetTransition(true))
			r.check("preview", writeRect(r.preview, m.preview, geom.Percent))
			m.previewDirty = false
		}
	} else {
		m.previewDirty = false
		m.previewFresh = false
	}

	if m.window.Maximized || !m.windowDirty {
		return
	}
	m.windowDirty = false

	s := m.session
	switch {
	case s != nil && s.Kind == KindMove:
		if m.sizeDirty {
			m.sizeDirty = false
			r.check("window", writeRect(r.window, m.pending, geom.Pixel))
		} else {
			r.check("window", writePosition(r.window, m.pending.Origin(), geom.Pixel))
		}
	case s != nil && s.Kind == KindResize:
		r.check("window", writeRect(r.window, m.clamp(m.pending), geom.Pixel))
	default:
		r.check("window", writeRect(r.window, m.window.Rect, geom.Pixel))
	}
}

func (r *Renderer) check(what string, err error) {
	if err != nil {
		r.log.Error("Failed to write surface", "surface", what, "error", err)
	}
}
