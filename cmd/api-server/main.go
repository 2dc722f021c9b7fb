package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"roomshub/database"
	"roomshub/internal/config"
	"roomshub/internal/http-api/handler"
	"roomshub/internal/http-api/middleware"
	"roomshub/internal/http-api/models"
	"roomshub/internal/http-api/repository"
	"roomshub/internal/http-api/service"
	"roomshub/internal/notify"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	ctx := context.Background()

	// Connect to the database
	pool, err := database.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	gdb, err := database.OpenGorm(cfg.DatabaseURL, logger)
	if err != nil {
		log.Fatalf("failed to open gorm DB: %v", err)
	}

	// Auto-migrate models
	if err := gdb.AutoMigrate(
		&models.Room{},
		&models.RoomSender{},
		&models.Message{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Notification channel
	publisher, err := notify.NewRedisPublisher(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	defer publisher.Close()

	// Create repositories
	roomRepo := repository.NewRoomRepository(gdb)
	messageRepo := repository.NewMessageRepository(gdb)

	// Create services
	policy := service.NewAccessPolicy()
	subjectService := service.NewSubjectService(cfg.Subjects)
	roomService := service.NewRoomService(roomRepo, subjectService, policy)
	messageService := service.NewMessageService(
		messageRepo, roomRepo, subjectService, policy,
		publisher, cfg.NotifyNamespace, logger,
	)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	handler.NewHealthHandler(pool).RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		handler.NewSubjectHandler(subjectService).RegisterRoutes(api)
		handler.NewRoomHandler(roomService).RegisterRoutes(api)
		handler.NewMessageHandler(
			messageService,
			middleware.PostRateLimit(cfg.PostRatePerSec, cfg.PostRateBurst),
		).RegisterRoutes(api)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("API server starting", "addr", addr, "tls", cfg.TLSEnabled)

	if cfg.TLSEnabled {
		err = r.RunTLS(addr, cfg.TLSCertPath, cfg.TLSKeyPath)
	} else {
		err = r.Run(addr)
	}
	if err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
