package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging

	"bistro_backend/internal/api"
	"bistro_backend/internal/config"
	"bistro_backend/internal/db"
	"bistro_backend/internal/payments"
	"bistro_backend/internal/repository"
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB (bounded ping retry, then the driver pool owns reconnects)
	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("failed to disconnect from MongoDB: %v", err)
		}
	}()
	database := client.Database(cfg.DBName)

	// Setup Redis client for the menu cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		// Cache misses degrade to direct store reads, so this is not fatal
		logrus.Warnf("failed to connect to Redis, menu cache disabled: %v", err)
		redisClient = nil
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()

	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// CORS: the frontend is a browser SPA served from another origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	api.RegisterRoutes(r, api.Deps{
		Users:     repository.NewUserRepository(database),
		Menu:      repository.NewMenuRepository(database),
		Reviews:   repository.NewReviewRepository(database),
		Carts:     repository.NewCartRepository(database),
		Payments:  repository.NewPaymentRepository(database),
		Intents:   payments.NewStripeIntentCreator(cfg.StripeSecretKey),
		RDB:       redisClient,
		JWTSecret: cfg.JWTSecret,
	})

	logrus.Infof("Server running on port %s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
