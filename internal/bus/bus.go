package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	mu   sync.RWMutex
	_ctx = context.Background()
	subs = make(map[string][]func(ctx context.Context, event any))
)

func SetContext(ctx context.Context) {
	mu.Lock()
	_ctx = ctx
	mu.Unlock()
}

// Subscribe calls fn for every published event of type T.
func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	topic := fmt.Sprintf("%T", *new(T))

	mu.Lock()
	subs[topic] = append(subs[topic], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "error", err)
		}
	})
	mu.Unlock()
}

// Publish calls the subscribers of the dynamic type of event.
func Publish[T any](event T) {
	mu.RLock()
	ctx := _ctx
	fns := subs[fmt.Sprintf("%T", event)]
	mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, event)
	}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		mu:   sync.Mutex{},
		subs: make(map[*chan T]struct{}),
	}
}

// Hub fans events out to subscribers. A subscriber that falls behind misses
// events instead of blocking the publisher.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[*chan T]struct{}
}

func (h *Hub[T]) Broadcast(ctx context.Context, event T) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case *sub <- event:
		default:
			slog.Warn("Dropped event for slow subscriber", "package", "bus", "event", fmt.Sprintf("%T", event))
		}
	}

	return nil
}

// Forward broadcasts every published E on h after converting it with fn.
func Forward[E, T any](h *Hub[T], fn func(event E) T) {
	Subscribe(fmt.Sprintf("bus.Hub[%T]", *new(E)), func(ctx context.Context, event E) error {
		return h.Broadcast(ctx, fn(event))
	})
}

func (h *Hub[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	h.mu.Lock()
	c := make(chan T, 16)

	key := &c
	h.subs[key] = struct{}{}
	h.mu.Unlock()

	return c, func() {
		h.mu.Lock()
		delete(h.subs, key)
		h.mu.Unlock()
	}
}
