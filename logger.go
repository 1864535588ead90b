package fftbench

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the harness's field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithSize adds the transform size to every record.
func (l *Logger) WithSize(n int) *Logger {
	return &Logger{Logger: l.Logger.With("size", n)}
}

// LogTiming logs one timed loop.
func (l *Logger) LogTiming(t Timing, err error) {
	if err != nil {
		l.Error("timed loop failed",
			"transform", t.Name,
			"completed", t.Loops,
			"error", err,
		)

		return
	}

	l.Info("timed loop completed",
		"transform", t.Name,
		"loops", t.Loops,
		"elapsed", t.Elapsed,
		"ns_per_call", t.PerCallNanos(),
		"samples_per_sec", t.Throughput(),
		"cycles_per_call", t.CyclesPerCall(),
	)
}

// LogValidation logs the validation outcome.
func (l *Logger) LogValidation(v *Validation) {
	if v.Passed() {
		l.Info("outputs match",
			"max_error", v.MaxError,
			"tolerance", v.Tolerance,
		)

		return
	}

	l.Warn("outputs differ",
		"mismatches", len(v.Mismatches),
		"max_error", v.MaxError,
		"max_index", v.MaxIndex,
		"tolerance", v.Tolerance,
	)
}
