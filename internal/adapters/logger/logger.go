// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"go.trai.ch/taskgraph/internal/core/ports"
)

// Logger implements ports.Logger using log/slog. The slog logger is held
// behind an atomic pointer rather than a mutex, so Info/Warn/Error read it
// without taking a lock and SetOutput can swap it while other goroutines are
// logging. Writes themselves are still serialized by the slog handler.
type Logger struct {
	logger atomic.Pointer[slog.Logger]
}

// New creates a new Logger instance.
func New() ports.Logger {
	l := &Logger{}
	l.logger.Store(newSlogLogger(os.Stderr))
	return l
}

func newSlogLogger(w io.Writer) *slog.Logger {
	// Text handler for human-readable output, writing to stderr as per
	// 12-factor app guidelines.
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.logger.Store(newSlogLogger(w))
}

// Info logs an informational message, typically a run or task summary.
func (l *Logger) Info(msg string) {
	l.logger.Load().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Load().Warn(msg)
}

// Error logs a task or run failure.
func (l *Logger) Error(err error) {
	l.logger.Load().Error("task graph run failed", "error", err)
}
