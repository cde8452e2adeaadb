package main

import (
	"log"

	"weather-be/internal/config"
	"weather-be/internal/controllers"
	"weather-be/internal/database"
	"weather-be/internal/middleware"
	"weather-be/internal/repository"
	"weather-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration. A bad temperature range or bound fails here, not
	// on individual weather requests.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	weatherService := service.NewWeatherService(cfg.DefaultCity, cfg.DefaultCityTemp, cfg.LowNumber, cfg.HighNumber)

	// Initialize controllers
	userController := controllers.NewUserController(userService, cfg.Version)
	weatherController := controllers.NewWeatherController(userService, weatherService)
	qrcodeController := controllers.NewQRCodeController(userService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	registerRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRegisterRPS), cfg.RateLimitRegisterBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS())

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// User routes with general rate limiting
	user := router.Group("/user")
	user.Use(generalRateLimiter.LimitMiddleware())
	{
		// Registration with stricter rate limiting
		user.POST("", registerRateLimiter.LimitMiddleware(), userController.CreateUser)

		user.GET("/version", userController.GetVersion)
		user.GET("/details", userController.GetUserDetails)
		user.GET("/weather", weatherController.GetWeatherData)
		user.GET("/apikey/qrcode", qrcodeController.GenerateAPIKeyQRCode)
		user.DELETE("", userController.DeleteUser)
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
