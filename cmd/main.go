package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/seoforge/contentiq/internal/api"
	"github.com/seoforge/contentiq/internal/config"
	"github.com/seoforge/contentiq/internal/dedup"
	"github.com/seoforge/contentiq/internal/logger"
	"github.com/seoforge/contentiq/internal/middleware"
	"github.com/seoforge/contentiq/internal/storage"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogFile,
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting application...")

	// Publication record store: Redis when configured, in-memory otherwise
	var store dedup.Store
	if cfg.RedisURL != "" {
		redisStore, err := dedup.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis store")
		}
		store = redisStore
		log.Info().Msg("Using Redis record store")
	} else {
		store = dedup.NewMemoryStore()
		log.Warn().Msg("REDIS_URL not set, records will not survive restarts")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing record store")
		}
	}()

	// Report archive: S3-compatible bucket when configured, local files otherwise
	var archive storage.Archive
	if cfg.S3Bucket != "" {
		s3Archive, err := storage.NewS3Archive(context.Background(), storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			UsePathStyle:    cfg.S3Endpoint != "",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 archive")
		}
		archive = s3Archive
		log.Info().Str("bucket", cfg.S3Bucket).Msg("Using S3 report archive")
	} else {
		fileArchive, err := storage.NewFileArchive(cfg.ReportPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize file archive")
		}
		archive = fileArchive
		log.Info().Str("path", cfg.ReportPath).Msg("Using file report archive")
	}

	handlers, err := api.NewHandlers(cfg, store, archive)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Setup API routes
	api.SetupRoutes(app, handlers, cfg)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
