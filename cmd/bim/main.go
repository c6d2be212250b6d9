package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"bim-service/internal/bim/elements"
	"bim-service/internal/bim/generator"
	"bim-service/internal/bim/handlers"
	"bim-service/internal/bim/repository"
	"bim-service/internal/bim/storage"
	"bim-service/internal/common/config"
	"bim-service/internal/common/middleware"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ============================================================
// BIM Generation Service
// ============================================================

func main() {
	cfg := config.Load()

	// Реестр билдеров заполняется до старта сервера; дубликат
	// регистрации — фатальная ошибка конфигурации.
	reg, err := elements.Discover()
	if err != nil {
		log.Fatalf("discover builders: %v", err)
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(cfg.MigrationsPath); err != nil {
		log.Fatalf("init db: %v", err)
	}

	backend, err := storage.FromConfig(context.Background(), storage.Config{
		Backend:  cfg.StorageBackend,
		S3Bucket: cfg.S3Bucket,
		S3Region: cfg.S3Region,
	})
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	gen := generator.New(reg, backend, cfg.OutputDir)
	handler := handlers.New(gen, reg, repo)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "BIM Generation Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health & Metrics
	// ============================================================

	app.Get("/health", handler.Health)
	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// ============================================================
	// BIM Routes
	// ============================================================

	app.Post("/generate", handler.Generate)
	app.Get("/generations", handler.ListGenerations)
	app.Get("/generations/:id", handler.GetGeneration)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting BIM Generation Service on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Registered builders: %v", reg.Available())
	log.Printf("Storage backend: %s", cfg.StorageBackend)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
