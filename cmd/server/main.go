package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ogurasousui/codex-hr-roster/internal/adapters/http/handler"
	"github.com/ogurasousui/codex-hr-roster/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-hr-roster/internal/core/employee"
	"github.com/ogurasousui/codex-hr-roster/internal/lib/logger/sl"
	"github.com/ogurasousui/codex-hr-roster/internal/metrics"
	"github.com/ogurasousui/codex-hr-roster/internal/platform/config"
	pg "github.com/ogurasousui/codex-hr-roster/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-hr-roster/internal/platform/logger"
	"github.com/ogurasousui/codex-hr-roster/internal/platform/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", sl.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}

	log := logger.New(cfg.Env, os.Stdout)
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", sl.Err(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	txManager := pg.NewTransactionManager(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool, m)
	employeeSvc := employee.NewService(employeeRepo, nil, txManager, log)

	router, err := handler.NewRouter(handler.RouterDeps{
		Employees:     employeeSvc,
		DB:            dbPool,
		Gatherer:      reg,
		Metrics:       m,
		Log:           log,
		FireRateLimit: cfg.Server.FireRateLimit,
	})
	if err != nil {
		return err
	}

	srv := server.New(server.Options{
		HTTPAddr:        cfg.Server.HTTPAddr,
		GRPCAddr:        cfg.Server.ListenAddr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router,
		Log:             log,
	})

	log.Info("starting hr roster service", slog.String("env", cfg.Env))
	return srv.Run(ctx)
}
