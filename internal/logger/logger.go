package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init инициализирует глобальный логгер.
// development - текст с уровнем debug, test - только предупреждения без источника,
// иначе JSON с уровнем info. LOG_LEVEL (debug, info, warn, error) переопределяет уровень.
func Init(env string) {
	level := slog.LevelInfo
	addSource := true
	switch env {
	case "development":
		level = slog.LevelDebug
	case "test":
		level = slog.LevelWarn
		addSource = false
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(raw)); err == nil {
			level = parsed
		}
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}

	var handler slog.Handler
	switch env {
	case "development":
		handler = slog.NewTextHandler(os.Stdout, opts)
	case "test":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback если Init не вызван
		Init("development")
	}
	return log
}

// ============================================
// Convenience функции для быстрого логирования
// ============================================

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует fatal ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
// Пример: logger.With("user_id", 123, "action", "login").Info("user logged in")
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создает логгер с полем error
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
