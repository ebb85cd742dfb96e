package routes

import (
	"waqf-task-tracker/internal/adapters/http/handlers"
	"waqf-task-tracker/internal/adapters/http/middleware"
	"waqf-task-tracker/internal/adapters/persistence/repositories"
	"waqf-task-tracker/internal/config"
	"waqf-task-tracker/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	propertyService := services.NewPropertyService(propertyRepo)
	taskService := services.NewTaskService(taskRepo, propertyRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Root & health
	app.Get("/", healthHandler.Root)
	app.Get("/api/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	setupPropertyRoutes(api.Group("/properties"), propertyHandler)
	setupTaskRoutes(api.Group("/tasks"), taskHandler)
	setupUserRoutes(api.Group("/users"), authHandler, cfg)
}

// setupPropertyRoutes configures property routes
func setupPropertyRoutes(router fiber.Router, handler *handlers.PropertyHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.GetByID)
}

// setupTaskRoutes configures task routes
func setupTaskRoutes(router fiber.Router, handler *handlers.TaskHandler) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Put("/:id/status", handler.UpdateStatus)
}

// setupUserRoutes configures user/auth routes
func setupUserRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against brute force
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/profile", middleware.Protect(cfg), handler.GetProfile)
}
