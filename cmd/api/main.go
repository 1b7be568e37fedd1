package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sahilkr24/jobtrackr/internal/config"
	"github.com/sahilkr24/jobtrackr/internal/database"
	"github.com/sahilkr24/jobtrackr/internal/handlers"
	"github.com/sahilkr24/jobtrackr/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}
	cfg := config.Load()
	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// 2. Database Connection
	db := database.Connect(cfg.PostgresDSN)

	// 3. Services & Handlers
	appService := services.NewApplicationService(db)
	appHandler := handlers.NewApplicationHandler(appService)

	// 4. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	// 5. Routes
	r.GET("/health", handlers.HealthCheck)
	apps := r.Group("/jobapplications")
	{
		apps.GET("", appHandler.ListApplications)
		apps.GET("/:id", appHandler.GetApplication)
		apps.POST("", appHandler.CreateApplication)
		apps.PUT("/:id", appHandler.UpdateApplication)
		apps.DELETE("/:id", appHandler.DeleteApplication)
	}

	log.Println("API server starting on port " + cfg.HTTPPort + "...")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
