package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studybuddy-backend/internal/api/routes"
	"studybuddy-backend/internal/config"
	"studybuddy-backend/internal/database"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "studybuddy-backend/docs" // This is needed for swag
)

//	@title			StudyBuddy API
//	@version		1.0
//	@description	Backend API for StudyBuddy: course study groups, join requests, invite codes, study sessions, quizzes and flashcards.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)
	log := logger.New()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}

	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	rdb := newRedisClient(cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(routes.Dependencies{
		DB:        db,
		Config:    cfg,
		Publisher: publisher,
		Redis:     rdb,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to set up routes")
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
}

// newPublisher connects to Kafka when brokers are configured; events are dropped otherwise
func newPublisher(cfg *config.Config, log *logger.Logger) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("KAFKA_BROKERS not set, domain events are disabled")
		return events.NopPublisher{}
	}
	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.WithError(err).Warn("Kafka unavailable, domain events are disabled")
		return events.NopPublisher{}
	}
	return publisher
}

func newRedisClient(cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, rate limiting is disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis not reachable at startup, rate limiter will fail open until it is")
	}
	return rdb
}
