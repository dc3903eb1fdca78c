package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"league-platform/backend/internal/db"
	"league-platform/backend/internal/league"
	"league-platform/backend/internal/locks"
	"league-platform/backend/internal/middleware"
	"league-platform/backend/internal/redis"
	"league-platform/backend/internal/server/handlers"
)

func main() {
	cfg := LoadConfig()

	database, err := db.New(cfg.DBConfig)
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}

	// Get underlying SQL DB for cleanup
	sqlDB, err := database.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database connection:", err)
	}
	defer sqlDB.Close()

	leagueService := league.NewService(database.DB)

	// Redis is optional: without it the service runs unlocked and uncached,
	// which is fine for a single instance.
	if cfg.RedisEnabled {
		redisClient, err := redis.New(cfg.RedisConfig)
		if err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		defer redisClient.Close()

		leagueService.SetLocker(locks.NewManager(redisClient.Client))
		leagueService.SetCache(redisClient)
	}

	if err := leagueService.SeedDefaults(context.Background()); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Configure CORS using gin-contrib/cors
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // Allow all origins
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400 * time.Second,
	}
	r.Use(cors.New(corsConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig)
	defer rateLimiter.Stop()
	r.Use(rateLimiter.GinMiddleware())

	handlers.NewLeagueHandler(leagueService).RegisterRoutes(r)

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(r.Run(":" + cfg.ServerPort))
}
