// Package logging configures the process-wide structured logger.
// Log records are JSON, written both to stdout and to a size-rotated file.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

var (
	once sync.Once
	base *slog.Logger
)

// Init sets up the global logger exactly once. component tags every record
// so multi-process deployments can be told apart in aggregated logs.
// filePath is the rotated log file location.
func Init(component, filePath string) {
	once.Do(func() {
		rot := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
		}

		w := io.MultiWriter(os.Stdout, rot)

		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})

		base = slog.New(handler).With(
			slog.String("component", component),
		)

		slog.SetDefault(base)
	})
}

// Base returns the global logger. Falls back to slog.Default when Init has
// not run, so library code and tests never need to call Init.
func Base() *slog.Logger {
	if base == nil {
		return slog.Default()
	}
	return base
}

// New returns a child logger tagged with a sub-component name.
func New(component string) *slog.Logger {
	return Base().With(slog.String("component", component))
}

// WithCtx stores a logger in the context.
func WithCtx(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromCtx returns the logger stored in the context, or the base logger.
func FromCtx(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return Base()
}
