// Package main Rank Eval API
// @title Rank Eval API
// @version 1.0
// @description Ranking quality metrics for retrieval runs
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/rank-eval/docs"
	"github.com/DjordjeVuckovic/rank-eval/internal/router"
	"github.com/DjordjeVuckovic/rank-eval/internal/server"
	"github.com/DjordjeVuckovic/rank-eval/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const storeInitTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, err := factory.NewRunStore(ctx, factory.Config{Type: cfg.Store, PgURL: cfg.PgURL})
	cancel()
	if err != nil {
		slog.Error("Failed to create run store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	s := server.New(cfg, store).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Rank Eval API is running")
	})

	router.NewEvalRouter(s.Echo, store, router.EvalConfig{
		Workers:  cfg.Workers,
		MaxBatch: cfg.MaxBatch,
	}).Bind()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
