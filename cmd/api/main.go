package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/agendai-app/booking-api/internal/config"
	dbpkg "github.com/agendai-app/booking-api/internal/db"
	"github.com/agendai-app/booking-api/internal/middleware"
	"github.com/agendai-app/booking-api/internal/notify"
	"github.com/agendai-app/booking-api/internal/routes"
	"github.com/agendai-app/booking-api/internal/storage"
)

func main() {

	// local dev convenience; real deployments set env directly
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	notifier := notify.NewDispatcher(
		notify.NewRedisPublisher(redisClient, cfg.EventsChannel),
	)

	store := storage.NewStore(storage.NewClient(cfg), cfg.S3Bucket, cfg.S3PublicURL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Notifier: notifier,
		Store:    store,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
