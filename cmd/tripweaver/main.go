package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mkarpenko/tripweaver/internal/cli"
	"github.com/mkarpenko/tripweaver/internal/config"
	"github.com/mkarpenko/tripweaver/internal/db"
	"github.com/mkarpenko/tripweaver/internal/repository"
	"github.com/mkarpenko/tripweaver/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	itemRepo := repository.NewSQLitePlanItemRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo, itemRepo, uow, logger),
		Catalog:  service.NewCatalogService(activityRepo, logger),
		Settings: service.NewSettingsService(settingsRepo),
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	if level == "debug" {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}
