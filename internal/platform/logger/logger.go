package logger

import (
	"io"
	"log/slog"

	"github.com/ogurasousui/codex-hr-roster/internal/platform/config"
)

// New は環境に応じたハンドラとログレベルで slog.Logger を生成します。
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvDevelopment:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case config.EnvProduction:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
	default:
		log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelError}))
		log.Error("unknown env, falling back to error-level logging", slog.String("env", env))
		return log
	}
}
