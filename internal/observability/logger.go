package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey string

const (
	ctxKeySessionID ctxKey = "session_id"
)

// глобальный логгер, текстовый вывод в stderr
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// Setup настраивает глобальный логгер: уровень debug|info|warn|error, формат text|json
func Setup(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
	return logger
}

// ParseLevel разбирает уровень логирования; неизвестное значение дает warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Logger возвращает глобальный логгер
func Logger() *slog.Logger {
	return logger
}

// WithFields возвращает логгер с дополнительными полями
func WithFields(kv ...any) *slog.Logger {
	return logger.With(kv...)
}

// WithSessionID сохраняет session_id в контексте
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, sessionID)
}

// LoggerFromContext добавляет session_id из контекста, если он есть
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logger
	}
	id, _ := ctx.Value(ctxKeySessionID).(string)
	if id == "" {
		return logger
	}
	return WithFields("session_id", id)
}
