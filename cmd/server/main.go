package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/taskhive/task-dashboard-api/internal/config"
	"github.com/taskhive/task-dashboard-api/internal/constants"
	"github.com/taskhive/task-dashboard-api/internal/database"
	"github.com/taskhive/task-dashboard-api/internal/handlers"
	"github.com/taskhive/task-dashboard-api/internal/middleware"
	"github.com/taskhive/task-dashboard-api/internal/repository"
	"github.com/taskhive/task-dashboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, store))

	// Wire repositories, services and handlers
	db := database.GetDB()
	authService := services.NewAuthService(repository.NewUserRepository(db))
	dashboardService := services.NewDashboardService(repository.NewDashboardRepository(db))
	taskService := services.NewTaskService(repository.NewTaskRepository(db))

	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	taskHandler := handlers.NewTaskHandler(taskService)
	workspaceHandler := handlers.NewWorkspaceHandler(repository.NewWorkspaceRepository(db))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Dashboard API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireAuth())
		{
			dashboard.GET("/tasks", dashboardHandler.GetAllTasks)
		}

		// Workspace routes (protected)
		workspaces := api.Group("/workspaces")
		workspaces.Use(middleware.RequireAuth())
		{
			workspaces.GET("", workspaceHandler.ListWorkspaces)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.PATCH("/:id/status", middleware.RequireTaskAccess(), taskHandler.UpdateStatus)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
