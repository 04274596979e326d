package wm

import "github.com/ItsNotGoodName/x-snapwm/internal/core"

// Scheduler runs a callback once before the next frame is shown.
type Scheduler interface {
	Schedule(fn func())
}

// FrameQueue is a Scheduler drained by a host loop. Schedule raises a
// depth-1 wake flag, the loop waits for its next frame and calls Run.
//
// A FrameQueue is not safe for concurrent use.
type FrameQueue struct {
	pending []func()
	wakeC   chan struct{}
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		wakeC: make(chan struct{}, 1),
	}
}

func (q *FrameQueue) Schedule(fn func()) {
	q.pending = append(q.pending, fn)
	core.FlagChannel(q.wakeC)
}

// C is raised when callbacks are pending.
func (q *FrameQueue) C() <-chan struct{} {
	return q.wakeC
}

// Armed reports whether callbacks are pending.
func (q *FrameQueue) Armed() bool {
	return len(q.pending) > 0
}

// Run calls the callbacks scheduled before it was called and returns how many
// ran. Callbacks scheduled by them wait for the next Run.
func (q *FrameQueue) Run() int {
	fns := q.pending
	q.pending = nil

	select {
	case <-q.wakeC:
	default:
	}

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
