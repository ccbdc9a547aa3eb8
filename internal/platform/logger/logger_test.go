package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ogurasousui/codex-hr-roster/internal/platform/config"
	"github.com/ogurasousui/codex-hr-roster/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{env: config.EnvLocal, enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{env: config.EnvDevelopment, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{env: config.EnvProduction, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{env: "unknown", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.New(tt.env, &buf)

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(config.EnvProduction, &buf)
	log.Warn("firing rejected", slog.Int64("employee_id", 7))

	assert.Contains(t, buf.String(), `"employee_id":7`)
}
