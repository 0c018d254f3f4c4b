package main

import (
	"fmt"
	"log"
	"os"

	"studytrack/handler"
	"studytrack/middleware"
	"studytrack/repository"
	"studytrack/services"
	"studytrack/usecase"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	eventsRepo := repository.GetEventsRepo(utils.MongoClient)
	completionsRepo := repository.GetCompletionsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)

	eventsService := usecase.NewEventsService(eventsRepo)
	scheduleService := usecase.NewScheduleService(eventsRepo, completionsRepo)
	completionsService := usecase.NewCompletionsService(eventsRepo, completionsRepo)
	userService := usecase.NewUserService(usersRepo)

	eventsHandler := handler.NewEventsHandler(eventsService, completionsService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	authHandler := handler.NewAuthHandler(userService)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", authHandler.Logout)

		events := protected.Group("/events")
		{
			events.POST("/", eventsHandler.CreateEvent)
			events.GET("/", eventsHandler.GetUserEvents)
			events.PUT("/:id", eventsHandler.UpdateEvent)
			events.POST("/:id/complete", eventsHandler.CompleteEvent)
		}

		schedule := protected.Group("/schedule")
		{
			schedule.GET("/", scheduleHandler.GetMonthSchedule)
			schedule.GET("/today", scheduleHandler.GetTodaySchedule)
			schedule.GET("/stats", scheduleHandler.GetMonthStats)
		}
	}

	return router
}

func main() {
	dbName := os.Getenv("MONGO_DB")
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbName)); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
	} else {
		log.Println("REDIS_URL not set, logout token blacklist disabled")
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
