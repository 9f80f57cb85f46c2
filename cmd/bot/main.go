package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/BalanceBalls/worklog-report/internal/bot"
	"github.com/BalanceBalls/worklog-report/internal/builder"
	"github.com/BalanceBalls/worklog-report/internal/clients/jira"
	"github.com/BalanceBalls/worklog-report/internal/config"
	"github.com/BalanceBalls/worklog-report/internal/generator"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/storage"
	"github.com/BalanceBalls/worklog-report/internal/storage/postgres"
	"github.com/BalanceBalls/worklog-report/internal/storage/sqlite"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	appLogger := logger.New(os.Stderr, cfg.Debug)
	ctx = logger.AddToContext(ctx, appLogger)

	db, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("unable to open storage: %s", err)
	}
	defer db.Close()

	if err = db.Up(ctx); err != nil {
		log.Fatalf("unable to prepare storage: %s", err)
	}

	opts, err := cfg.BuilderOptions()
	if err != nil {
		log.Fatal(err)
	}

	gen, err := generator.New(cfg, cfg.ReportFormat)
	if err != nil {
		log.Fatal(err)
	}

	reportsBot, err := bot.New(cfg, appLogger, db, builder.New(jira.NewClient(), opts), gen)
	if err != nil {
		log.Fatal(err)
	}

	reportsBot.Serve(ctx)
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.DbDriver {
	case "sqlite":
		return sqlite.New(cfg.DbName)
	case "postgres":
		return postgres.New(cfg.DbName)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DbDriver)
	}
}
