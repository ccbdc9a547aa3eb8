package handler

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ogurasousui/codex-hr-roster/internal/adapters/http/middleware"
	"github.com/ogurasousui/codex-hr-roster/internal/core/employee"
	"github.com/ogurasousui/codex-hr-roster/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps は HTTP ルーターの構築に必要な依存関係です。
type RouterDeps struct {
	Employees     employee.UseCase
	DB            Pinger
	Gatherer      prometheus.Gatherer
	Metrics       *metrics.Metrics
	Log           *slog.Logger
	FireRateLimit string
}

// NewRouter は API ルートを登録した gin エンジンを返します。
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	fireLimit, err := middleware.RateLimit(deps.FireRateLimit)
	if err != nil {
		return nil, fmt.Errorf("fire rate limit: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(deps.Log))

	health := NewHealthHandler(deps.DB, deps.Log)
	r.GET("/healthz", health.Check)

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	employees := NewEmployeeHandler(deps.Employees, deps.Metrics, deps.Log)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/employees", employees.ListEmployees)
		v1.GET("/employees/:id", employees.GetEmployee)
		v1.GET("/employees/:id/risk", employees.GetRiskScore)
		v1.POST("/employees/:id/firings", fireLimit, employees.FireEmployee)
	}

	return r, nil
}
