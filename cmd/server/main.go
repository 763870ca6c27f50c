package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mbeckert/taskboard-api/internal/config"
	"github.com/mbeckert/taskboard-api/internal/database"
	"github.com/mbeckert/taskboard-api/internal/handlers"
	"github.com/mbeckert/taskboard-api/internal/middleware"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"github.com/mbeckert/taskboard-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connection established", zap.String("driver", cfg.DBDriver))

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	settingsRepo := repository.NewBoardSettingsRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenRepo)
	taskService := services.NewTaskService(taskRepo)
	settingsService := services.NewBoardSettingsService(settingsRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	settingsHandler := handlers.NewBoardSettingsHandler(settingsService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task board API is running",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/registration/", authHandler.Register)
		auth.POST("/login/", authHandler.Login)
		auth.POST("/guest-login/", authHandler.GuestLogin)
	}

	// Resource routes (protected)
	api := r.Group("/", middleware.RequireAuth(authService))
	{
		api.GET("tasks/", taskHandler.List)
		api.POST("tasks/", taskHandler.Create)
		api.GET("tasks/:id/", taskHandler.Get)
		api.PUT("tasks/:id/", taskHandler.Update)
		api.PATCH("tasks/:id/", taskHandler.Patch)
		api.DELETE("tasks/:id/", taskHandler.Delete)

		api.GET("board-settings/", settingsHandler.List)
		api.POST("board-settings/", settingsHandler.Create)
		api.GET("board-settings/:userId/", settingsHandler.Get)
		api.PUT("board-settings/:userId/", settingsHandler.Update)
		api.PATCH("board-settings/:userId/", settingsHandler.Patch)
		api.DELETE("board-settings/:userId/", settingsHandler.Delete)

		api.GET("contacts/", contactHandler.List)
		api.POST("contacts/", contactHandler.Create)
		api.GET("contacts/:id/", contactHandler.Get)
		api.PUT("contacts/:id/", contactHandler.Update)
		api.PATCH("contacts/:id/", contactHandler.Patch)
		api.DELETE("contacts/:id/", contactHandler.Delete)
	}

	// Start server
	logger.Info("Server starting", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
