package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"waqf-task-tracker/internal/adapters/http/middleware"
	"waqf-task-tracker/internal/adapters/http/routes"
	"waqf-task-tracker/internal/adapters/persistence/models"
	"waqf-task-tracker/internal/adapters/persistence/repositories"
	"waqf-task-tracker/internal/config"
	"waqf-task-tracker/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "waqf-task-tracker/docs" // Swagger docs
)

// @title Waqf Task Tracker API
// @version 1.0
// @description Property and task management API for waqf assets held in charitable trust.

// @license.name MIT

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo data in development
	if cfg.IsDev() {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed demo data: %v", err)
		}
	}

	// Start daily overdue reminder
	reminder := services.NewReminderService(repositories.NewTaskRepository(db))
	reminder.Start()
	defer reminder.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Waqf Task Tracker API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
