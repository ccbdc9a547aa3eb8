package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-hr-roster/internal/lib/logger/sl"
)

const healthCheckTimeout = 2 * time.Second

// Pinger はデータストアの疎通確認を表します。
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler はプロセスとデータベースの稼働状況を返します。
type HealthHandler struct {
	db  Pinger
	log *slog.Logger
}

// NewHealthHandler は HealthHandler を生成します。db が nil の場合はプロセスの生存のみ報告します。
func NewHealthHandler(db Pinger, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &HealthHandler{db: db, log: log}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Check は GET /healthz を処理します。
func (h *HealthHandler) Check(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, healthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "database ping failed", sl.Err(err))
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
