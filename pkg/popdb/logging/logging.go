package logging

import (
	"context"
	"log/slog"
)

// Logger is what popdb logs through. Every call carries the context of the
// operation that produced it; With returns a child that prefixes args to all
// later entries.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts a *slog.Logger. nil means slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogAdapter{l: logger}
}

type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelDebug, msg, args...)
}

func (a slogAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelInfo, msg, args...)
}

func (a slogAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelWarn, msg, args...)
}

func (a slogAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.l.Log(ctx, slog.LevelError, msg, args...)
}

func (a slogAdapter) With(args ...any) Logger {
	return slogAdapter{l: a.l.With(args...)}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
