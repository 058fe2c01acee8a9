package main

import (
	"context"
	"fmt"
	"os"

	"github.com/workpulse/attendance-backend-go/internal/config"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse/attendance-backend-go/internal/pkg/storage"
	"github.com/workpulse/attendance-backend-go/internal/pkg/webhook"
	"github.com/workpulse/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/attendance-backend-go/internal/service/attendance"
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
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	var notifier attendanceService.Notifier
	if cfg.Import.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Import.WebhookURL)
	}

	service := attendanceService.NewAttendanceService(
		postgresql.NewAttendanceRepository(db),
		postgresql.NewCounterRepository(db),
		fileStorage,
		notifier,
		cfg.Import.ChunkSize,
		cfg.Import.Workers,
	)

	rootCmd := newRootCmd(service)
	return rootCmd.ExecuteContext(context.Background())
}
