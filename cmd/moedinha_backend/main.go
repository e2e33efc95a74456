package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/moedinha/moedinha_backend/internal/adapters/telegram"
	portssvc "github.com/moedinha/moedinha_backend/internal/core/ports/services"
	"github.com/moedinha/moedinha_backend/internal/core/services"
	"github.com/moedinha/moedinha_backend/internal/handlers"
	"github.com/moedinha/moedinha_backend/internal/middleware"
	"github.com/moedinha/moedinha_backend/internal/platform/config"
	"github.com/moedinha/moedinha_backend/internal/repositories/database/pgsql"
	"github.com/moedinha/moedinha_backend/internal/utils"
	"github.com/moedinha/moedinha_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Moedinha Backend API
// @version 1.0
// @description Budget distribution, monthly metrics, alerts, recurring rules, calendar and invoices.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tracker := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer tracker.Close()

	// A nil *Notifier must not reach the container as a non-nil interface.
	var notifier portssvc.AlertNotifier
	tg, err := telegram.NewNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, telegram.WithAppURL(cfg.FrontendBaseURL))
	if err != nil {
		logger.Error("Failed to initialize telegram notifier", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if tg != nil {
		notifier = tg
		logger.Info("Telegram alert delivery enabled", slog.Int64("chat_id", cfg.TelegramChatID))
	} else {
		logger.Warn("Telegram bot token or chat id missing, alert delivery disabled.")
	}

	var eventTracker portssvc.EventTracker
	if tracker.IsInitialized() {
		eventTracker = tracker
	}

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), notifier, eventTracker)

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, tracker); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("timezone", cfg.Timezone))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.FrontendBaseURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// runMigrations applies every pending "up" migration from ./migrations.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
