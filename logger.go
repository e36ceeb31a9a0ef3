package gmath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. With it installed, logNonFinite and the
// Orthographic warning return at the Enabled check.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger read by FromRadians, FromDegrees and
// Orthographic. SetLogger may swap it while those run on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by gmath.
// By default, gmath produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent default.
//
// gmath logs in two places only:
//   - [slog.LevelDebug]: [FromRadians] or [FromDegrees] got NaN or ±Inf and returned [Angle0]
//   - [slog.LevelWarn]: [Orthographic] got a zero-extent axis and substituted one
//
// Example:
//
//	gmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gmath.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
