package xwm

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
)

// ReceiveEvents forwards X events to eventC until the connection closes or
// ctx is done.
func ReceiveEvents(ctx context.Context, conn *xgb.Conn, eventC chan<- xgb.Event) {
	defer close(eventC)
	slog := slog.With("func", "xwm.ReceiveEvents")

	for {
		// WaitForEvent either returns an event or an error and never both.
		// If both are nil the connection is closed.
		ev, err := conn.WaitForEvent()
		if ev == nil && err == nil {
			slog.Debug("exit: no event or error")
			return
		}

		// Errors here are replies to unchecked requests.
		if err != nil {
			slog.Error("Failed to handle request", "error", err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case eventC <- ev:
		}
	}
}
