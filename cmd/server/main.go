package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mycolab/app"
	"mycolab/config"
	"mycolab/database"
	"mycolab/pkg/lifecycle"
	"mycolab/pkg/logging"
)

func main() {
	// 1) Config + logging
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel)
	slog.Info("starting mycolab", "config", cfg)

	// 2) DB (sqlite) + migrations
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("database", "err", err)
		os.Exit(1)
	}

	// 3) Stage durations (defaults when no files are configured)
	durations, err := lifecycle.LoadDurations(cfg.StageConfigPath, cfg.StageAdjustPath)
	if err != nil {
		slog.Warn("stage config ignored, using defaults", "err", err)
		durations = lifecycle.DefaultDurations()
	}

	// 4) Wiring
	a := app.Build(cfg, db, durations)
	if err := a.Profiles.BootstrapAdmins(cfg.AdminUsers); err != nil {
		slog.Error("bootstrap admins", "err", err)
		os.Exit(1)
	}
	if cfg.StorageEndpoint == "" {
		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			slog.Warn("upload dir", "dir", cfg.UploadDir, "err", err)
		}
	}
	e := a.Echo()

	// 5) Start, then drain on SIGINT/SIGTERM
	go func() {
		slog.Info("listening", "port", cfg.Port, "auth_mode", cfg.AuthMode)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server", "err", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("shutdown", "err", err)
	}
	a.Mail.Wait()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("bye")
}
