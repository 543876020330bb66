package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/fortuna-reports/internal/config"
	"github.com/dafibh/fortuna/fortuna-reports/internal/handler"
	"github.com/dafibh/fortuna/fortuna-reports/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository/storage"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/dafibh/fortuna/fortuna-reports/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Fortuna Reports API
// @version 1.0
// @description Monthly spending reports by category with drill-down, exports and a push channel.
// @host localhost:8080
// @BasePath /
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database (runs pending migrations)
	repos, closeDB, err := repository.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer closeDB()

	// Export storage
	var exportStore storage.ExportStore
	if cfg.S3.Enabled {
		s3Store, err := storage.NewS3ExportStore(context.Background(), cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 export storage")
		}
		exportStore = s3Store
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("Exports stored in S3")
	} else {
		localStore, err := storage.NewLocalExportStore(cfg.ExportDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize export directory")
		}
		exportStore = localStore
		log.Info().Str("dir", cfg.ExportDir).Msg("Exports stored on local disk")
	}

	// Initialize services
	reportService := service.NewReportService(repos.Transactions, repos.Categories)
	monthService := service.NewMonthService(repos.Transactions)
	categoryService := service.NewCategoryService(repos.Categories)
	exportService := service.NewExportService(reportService, exportStore)

	// WebSocket hub and background refresh
	hub := websocket.NewHub()
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	reportWorker := service.NewReportWorker(reportService, hub, log.Logger, service.ReportWorkerConfig{
		Interval: cfg.ReportRefreshInterval,
	})
	reportWorker.Start(workerCtx)

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	// Initialize handlers
	handlers := handler.Handlers{
		Report:    handler.NewReportHandler(reportService),
		Month:     handler.NewMonthHandler(monthService),
		Category:  handler.NewCategoryHandler(categoryService),
		Export:    handler.NewExportHandler(exportService),
		WebSocket: handler.NewWebSocketHandler(hub, cfg.CORSOrigins),
		APIServers: []handler.Server{
			{URL: cfg.PublicURL, Description: cfg.Env},
		},
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))

	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.Recover())

	handler.RegisterRoutes(e, rateLimiter, handlers)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", repos.Backend).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	reportWorker.Stop()
	rateLimiter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
