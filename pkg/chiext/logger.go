package chiext

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs each request through slog.Default.
func Logger() func(next http.Handler) http.Handler {
	return LoggerWith(nil)
}

// LoggerWith logs each request through log. A nil log uses slog.Default at
// request time.
func LoggerWith(log *slog.Logger) func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&LogFormatter{log: log})
}

// LogFormatter implements middleware.LogFormatter with slog.
type LogFormatter struct {
	log *slog.Logger
}

// NewLogEntry creates a new LogEntry for the request.
func (l *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	log := l.log
	if log == nil {
		log = slog.Default()
	}

	attrs := []any{}
	reqID := middleware.GetReqID(r.Context())
	if reqID != "" {
		attrs = append(attrs, slog.String("request", reqID))
	}
	attrs = append(attrs, slog.String("from", r.RemoteAddr))

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return &logEntry{
		log:   log,
		attrs: attrs,
		msg:   fmt.Sprintf("%s %s://%s%s %s", r.Method, scheme, r.Host, r.RequestURI, r.Proto),
	}
}

type logEntry struct {
	log   *slog.Logger
	attrs []any
	msg   string
}

func (l *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	attrs := append(l.attrs,
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.String("elapsed", elapsed.String()),
	)

	switch {
	case status >= 500:
		l.log.Error(l.msg, attrs...)
	case status >= 400:
		l.log.Warn(l.msg, attrs...)
	default:
		l.log.Debug(l.msg, attrs...)
	}
}

func (l *logEntry) Panic(v interface{}, stack []byte) {
	l.log.Error("Panic while serving request", "panic", fmt.Sprint(v), "stack", string(stack))
}
