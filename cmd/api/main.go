package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartstats/internal/analysis"
	"smartstats/internal/config"
	"smartstats/internal/database"
	"smartstats/internal/handlers"
	"smartstats/internal/logger"
	"smartstats/internal/middleware"
	"smartstats/internal/services"
	"smartstats/internal/validator"

	_ "smartstats/internal/docs" // Import swagger docs
)

// @title           SmartStats API
// @version         1.0
// @description     SmartStats is a dashboard builder that lets users analyze CSV data, generate chart suggestions, and organize charts into personal dashboards.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validations
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	tokens := middleware.NewTokenService(appConfig.JWTSecret, appConfig.JWTExpirationDur)
	userService := services.NewUserService(db, services.NewLoginAuditService(db))
	dashboardService := services.NewDashboardService(db)
	chartService := services.NewChartService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	chartHandler := handlers.NewChartHandler(chartService)
	generateHandler := handlers.NewGenerateHandler(analysis.NewGenerator())

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(tokens.Middleware())

	dashboards := protected.Group("/dashboards")
	dashboards.GET("", dashboardHandler.GetUserDashboards)
	dashboards.POST("", dashboardHandler.CreateDashboard)
	dashboards.DELETE("/:id", dashboardHandler.DeleteDashboard)
	dashboards.GET("/:id/charts", chartHandler.GetDashboardCharts)
	dashboards.POST("/:id/charts", chartHandler.CreateChart)

	protected.DELETE("/charts/:id", chartHandler.DeleteChart)
	protected.POST("/generate-chart", generateHandler.GenerateChart)

	log.Infof("Starting SmartStats backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
