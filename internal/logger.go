package internal

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards every record. Enabled returns false so callers
// skip formatting entirely while logging is disabled.
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

// Sets the logger shared by atxt and its subpackages. A nil
// logger restores the default silent behavior.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = newNopLogger() }
	loggerPtr.Store(logger)
}

// Returns the current shared logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
