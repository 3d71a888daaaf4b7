package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger makes a JSON slog logger on stdout the slog default and the
// package logger. Records carrying ErrAttr get the error category and
// stacktrace attached by ErrFmtHandler.
func SetupLogger(loglevel string) {
	SetupLoggerTo(os.Stdout, loglevel)
}

// SetupLoggerTo is SetupLogger writing to w.
func SetupLoggerTo(w io.Writer, loglevel string) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	})
	sl := slog.New(WrapByErrFmtHandler(handler))
	slog.SetDefault(sl)
	SetLogger(NewSlogLogger(sl))
}

// ToLogLevel maps a level name to slog.Level. It panics on unknown names.
func ToLogLevel(level string) slog.Level {
	return slog.Level(ParseLevel(level))
}

// ParseLevel maps a level name to Level. It panics on unknown names.
func ParseLevel(level string) Level {
	switch level {
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps l.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

func (s *SlogLogger) Debug(msg string, fields ...any) { s.log(slog.LevelDebug, msg, fields) }
func (s *SlogLogger) Info(msg string, fields ...any)  { s.log(slog.LevelInfo, msg, fields) }
func (s *SlogLogger) Warn(msg string, fields ...any)  { s.log(slog.LevelWarn, msg, fields) }
func (s *SlogLogger) Error(msg string, fields ...any) { s.log(slog.LevelError, msg, fields) }

func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.logger.With(fields...)}
}

func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// log turns a leading error into ErrAttr so ErrFmtHandler can see it.
func (s *SlogLogger) log(level slog.Level, msg string, fields []any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	s.logger.Log(context.Background(), level, msg, fields...)
}
