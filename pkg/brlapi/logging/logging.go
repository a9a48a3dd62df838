package logging

import (
	"context"
	"io"
	"log/slog"
)

// Attribute keys shared by every record the binding emits.
const (
	KeyLibrary = "library"
	KeyPath    = "path"
	KeySymbol  = "symbol"
	KeyState   = "state"
	KeyError   = "error"
)

// Logger is the context-aware slice of slog the binding writes to.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps logger. A nil logger resolves slog.Default() on every record, so
// a default installed after package initialization still takes effect.
func New(logger *slog.Logger) Logger {
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that writes nothing.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ForLibrary returns l scoped to one native library.
func ForLibrary(l Logger, name string) Logger {
	return l.With(Library(name))
}

// Library tags a record with the logical library name.
func Library(name string) slog.Attr { return slog.String(KeyLibrary, name) }

// Path tags a record with the file handed to the dynamic loader.
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

// Symbol tags a record with a native entry point name.
func Symbol(name string) slog.Attr { return slog.String(KeySymbol, name) }

// State tags a record with a loader state.
func State(s interface{ String() string }) slog.Attr { return slog.String(KeyState, s.String()) }

// Err tags a record with err. A nil err yields an empty attribute, which
// slog drops.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

type slogLogger struct {
	logger *slog.Logger
	args   []any
}

func (l *slogLogger) target() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	if len(l.args) > 0 {
		return slog.Default().With(l.args...)
	}
	return slog.Default()
}

func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	t := l.target()
	if !t.Enabled(ctx, level) {
		return
	}
	t.Log(ctx, level, msg, args...)
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelDebug, msg, args)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelWarn, msg, args)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelError, msg, args)
}

// With binds args eagerly on a concrete logger and lazily on the default one.
func (l *slogLogger) With(args ...any) Logger {
	if l.logger != nil {
		return &slogLogger{logger: l.logger.With(args...)}
	}
	return &slogLogger{args: append(append([]any(nil), l.args...), args...)}
}
