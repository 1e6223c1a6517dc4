package bitgrid

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitgrid-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWordWidth adds a word_width field to the logger.
func (l *Logger) WithWordWidth(wordWidth int) *Logger {
	return &Logger{
		Logger: l.Logger.With("word_width", wordWidth),
	}
}

// WithHeight adds a height field to the logger.
func (l *Logger) WithHeight(height int) *Logger {
	return &Logger{
		Logger: l.Logger.With("height", height),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogConstruct logs a grid construction.
func (l *Logger) LogConstruct(ctx context.Context, wordWidth, height int, err error) {
	if err != nil {
		l.WarnContext(ctx, "construct rejected",
			"word_width", wordWidth,
			"height", height,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "construct completed",
			"word_width", wordWidth,
			"height", height,
		)
	}
}

// LogSetData logs a whole-buffer replacement.
func (l *Logger) LogSetData(ctx context.Context, words int, err error) {
	if err != nil {
		l.WarnContext(ctx, "set data rejected",
			"words", words,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "set data completed",
			"words", words,
		)
	}
}

// LogResize logs the creation of an expanded copy.
func (l *Logger) LogResize(ctx context.Context, width, height int, err error) {
	if err != nil {
		l.WarnContext(ctx, "expand rejected",
			"width", width,
			"height", height,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "expand completed",
			"width", width,
			"height", height,
		)
	}
}
