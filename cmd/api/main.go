package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse/attendance-backend-go/internal/handler/http"
	"github.com/workpulse/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse/attendance-backend-go/internal/pkg/storage"
	"github.com/workpulse/attendance-backend-go/internal/pkg/webhook"
	"github.com/workpulse/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/attendance-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	counterRepo := postgresql.NewCounterRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	var notifier attendanceService.Notifier
	if cfg.Import.WebhookURL != "" {
		notifier = webhook.NewClient(cfg.Import.WebhookURL)
	}

	service := attendanceService.NewAttendanceService(
		attendanceRepo,
		counterRepo,
		fileStorage,
		notifier,
		cfg.Import.ChunkSize,
		cfg.Import.Workers,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(service)

	router := appHTTP.NewRouter(cfg.App.APIKey, cfg.App.Env, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
