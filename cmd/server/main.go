package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/coach"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/entries"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/fasting"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/finance"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/insights"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/routines"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/settings"
	"github.com/lifetrackhq/lifetrack-backend/internal/apps/trophies"
	"github.com/lifetrackhq/lifetrack-backend/internal/config"
	"github.com/lifetrackhq/lifetrack-backend/internal/database"
	"github.com/lifetrackhq/lifetrack-backend/internal/handlers"
	"github.com/lifetrackhq/lifetrack-backend/internal/logging"
	"github.com/lifetrackhq/lifetrack-backend/internal/middleware"
	"github.com/lifetrackhq/lifetrack-backend/internal/routes"
	"github.com/lifetrackhq/lifetrack-backend/internal/scheduler"
	"github.com/lifetrackhq/lifetrack-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Migrate shared models
	if err := database.MigrateShared(); err != nil {
		slog.Error("shared migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Register plugins
	plugins := []apps.Plugin{
		entries.New(),
		settings.New(),
		fasting.New(),
		trophies.New(),
		routines.New(),
		finance.New(),
		insights.New(),
		coach.New(),
	}

	// Migrate plugin models
	var purgeModels []interface{}
	for _, p := range plugins {
		models := p.Models()
		if len(models) == 0 {
			continue
		}
		if err := database.MigrateModels(models); err != nil {
			slog.Error("plugin migration failed", "plugin", p.ID(), "error", err)
			os.Exit(1)
		}
		slog.Info("plugin migrated", "plugin", p.ID(), "models", len(models))
		purgeModels = append(purgeModels, models...)
	}

	// Services and handlers
	authService := services.NewAuthService(database.DB, cfg, purgeModels)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Nightly recurring-finance processing
	recurringService := finance.NewRecurringService(database.DB)
	sched := scheduler.New(time.UTC)
	if _, err := sched.Daily(cfg.RecurringRunAt, func() {
		processed, err := recurringService.ProcessAllDue(time.Now().UTC())
		if err != nil {
			slog.Error("recurring processing run failed", "error", err)
			return
		}
		slog.Info("recurring processing run completed", "processed", processed)
	}); err != nil {
		slog.Error("failed to schedule recurring processing", "run_at", cfg.RecurringRunAt, "error", err)
		os.Exit(1)
	}
	sched.Start()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, database.DB, authHandler, healthHandler, plugins)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	sched.Stop()
	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
