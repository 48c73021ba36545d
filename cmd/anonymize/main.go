// Command anonymize scrubs personal data from the access log.
//
// Usage:
//
//	anonymize --id=<uuid> [--new-id=<uuid>]
//	anonymize --origins [--scope=<scope>] [--created-before=<unix>]
//
// The first form rewrites every subject and object reference to the given
// identity with a replacement id (random unless --new-id is given). The
// second form coarsens the stored network origins of the matching entries:
// IPv4 addresses lose their low 16 bits, IPv6 addresses their low 80 bits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/hollowtree/accesslog/internal/adapter/postgres"
	accesslogrepo "github.com/hollowtree/accesslog/internal/adapter/postgres/accesslog"
	"github.com/hollowtree/accesslog/internal/app"
	"github.com/hollowtree/accesslog/internal/config"
	"github.com/hollowtree/accesslog/internal/domain"
	"github.com/hollowtree/accesslog/internal/service/audit"
)

func main() {
	idRaw := flag.String("id", "", "identity to anonymize (uuid)")
	newIDRaw := flag.String("new-id", "", "replacement id (uuid, random when omitted)")
	origins := flag.Bool("origins", false, "coarsen remote origins of matching entries")
	scope := flag.String("scope", "", "restrict --origins to one scope")
	createdBefore := flag.Int64("created-before", 0, "restrict --origins to entries older than this unix timestamp")
	flag.Parse()

	haveID := *idRaw != ""
	// Exactly one mode must be selected.
	if haveID == *origins {
		fmt.Fprintln(os.Stderr, "Usage: anonymize --id=<uuid> [--new-id=<uuid>] | anonymize --origins [--scope=...] [--created-before=...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting anonymize", slog.String("version", app.BuildVersion()))

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

	if *idRaw != "" {
		anonymizeID(ctx, logger, svc, *idRaw, *newIDRaw)
		return
	}
	anonymizeOrigins(ctx, logger, svc, *scope, *createdBefore)
}

func anonymizeID(ctx context.Context, logger *slog.Logger, svc *audit.Service, idRaw, newIDRaw string) {
	oldID, err := uuid.Parse(idRaw)
	if err != nil {
		log.Fatalf("parse --id: %v", err)
	}

	newID := uuid.Nil
	if newIDRaw != "" {
		if newID, err = uuid.Parse(newIDRaw); err != nil {
			log.Fatalf("parse --new-id: %v", err)
		}
	}

	replacement, rewritten, err := svc.AnonymizeID(ctx, oldID, newID)
	if err != nil {
		logger.Error("anonymize id failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Rewrote %d references of %s to %s.\n", rewritten, oldID, replacement)
}

func anonymizeOrigins(ctx context.Context, logger *slog.Logger, svc *audit.Service, scope string, createdBefore int64) {
	var f domain.LogFilter
	if scope != "" {
		f.Scopes = []string{scope}
	}
	if createdBefore > 0 {
		f.CreatedBefore = &createdBefore
	}

	logs, err := svc.Search(ctx, f)
	if err != nil {
		logger.Error("search failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := svc.AnonymizeOrigins(ctx, logs); err != nil {
		logger.Error("anonymize origins failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Anonymized origins of %d entries.\n", logs.Len())
}
