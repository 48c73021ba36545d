// Command prune removes dated access log entries older than the configured
// retention period. Entries recorded with creation_time 0 are kept. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// A retention of 0 removes every dated entry.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hollowtree/accesslog/internal/adapter/postgres"
	accesslogrepo "github.com/hollowtree/accesslog/internal/adapter/postgres/accesslog"
	"github.com/hollowtree/accesslog/internal/app"
	"github.com/hollowtree/accesslog/internal/config"
	"github.com/hollowtree/accesslog/internal/service/audit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting prune", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := accesslogrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	svc := audit.NewService(logger, repo, txm, cfg.AccessLog.DefaultRemoteOrigin)

	var createdBefore *int64
	if cfg.AccessLog.Retention > 0 {
		cutoff := time.Now().Add(-cfg.AccessLog.Retention).Unix()
		createdBefore = &cutoff
	}

	deleted, err := svc.Prune(ctx, createdBefore)
	if err != nil {
		logger.Error("prune failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", cfg.AccessLog.Retention),
	)
}
