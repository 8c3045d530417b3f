package raylib

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for raylib and its sub-packages. By
// default nothing is logged. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: symbol resolution, audio processor slots
//   - [slog.LevelInfo]: library load and unload
//   - [slog.LevelWarn]: optional symbols missing, signatures this platform
//     cannot call, release errors
//
// Native TraceLog output reaches the logger only after RouteTraceLog.
//
// Example:
//
//	raylib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (rlgl, wgsl) call it to
// share the configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// slogLevel maps a native trace level onto slog.
func slogLevel(l TraceLogLevel) slog.Level {
	switch {
	case l <= LogDebug:
		return slog.LevelDebug
	case l == LogInfo:
		return slog.LevelInfo
	case l == LogWarning:
		return slog.LevelWarn
	}
	return slog.LevelError
}
