// main.go
package main

import (
	"log"
	"os"
	"time"

	"collegit/database"
	"collegit/handlers"
	"collegit/middleware"
	"collegit/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Initialize guest cleanup service
	services.InitCleanupService()
	defer func() {
		if cleanupService := services.GetCleanupService(); cleanupService != nil {
			cleanupService.Stop()
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/upgrade", middleware.AuthMiddleware, handlers.UpgradeGuest)

	// College catalog (public)
	api.Get("/colleges", handlers.GetColleges)
	api.Get("/colleges/:id", handlers.GetCollege)

	// User routes (require authentication)
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)
	userGroup.Post("/me/onboarding", handlers.CompleteOnboarding)

	// User college list
	myGroup := api.Group("/my")
	myGroup.Use(middleware.AuthMiddleware)
	myGroup.Get("/colleges", handlers.GetUserColleges)
	myGroup.Post("/colleges", handlers.AddUserCollege)
	myGroup.Put("/colleges/:id", handlers.UpdateUserCollege)
	myGroup.Post("/colleges/:id/submit", handlers.SubmitUserCollege)
	myGroup.Post("/colleges/:id/decision", handlers.RecordDecision)

	// Task routes
	taskGroup := api.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware)
	taskGroup.Get("/", handlers.GetTasks)
	taskGroup.Post("/", handlers.CreateTask)
	taskGroup.Put("/:id", handlers.UpdateTask)
	taskGroup.Delete("/:id", handlers.DeleteTask)
	taskGroup.Post("/:id/complete", handlers.CompleteTask)

	// Progression routes
	progressionGroup := api.Group("/progression")
	progressionGroup.Use(middleware.AuthMiddleware)
	progressionGroup.Get("/", handlers.GetProgression)
	progressionGroup.Get("/achievements", handlers.GetUserAchievements)

	// Leaderboard routes
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Get("/", handlers.GetLeaderboard)
	leaderboardGroup.Get("/user/:id", handlers.GetUserRank)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	// Start HTTP server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🧹 Guest cleanup: %s", getEnv("GUEST_CLEANUP_ENABLED", "true"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

// Helper functions

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
