package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultTimezone  = "America/Sao_Paulo"
	defaultRateLimit = "120-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string
	FrontendBaseURL string
	RateLimit       string // ulule/limiter format, e.g. "120-M"

	// Scheduled jobs authenticate with a bearer secret, or its bcrypt hash when set.
	CronSecret     string
	CronSecretHash string

	Timezone string
	Location *time.Location

	PosthogAPIKey string

	TelegramBotToken string
	TelegramChatID   int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("CRON_SECRET", "")
	viper.SetDefault("CRON_SECRET_HASH", "")
	viper.SetDefault("TIMEZONE", defaultTimezone)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", 0)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		CronSecret:       viper.GetString("CRON_SECRET"),
		CronSecretHash:   viper.GetString("CRON_SECRET_HASH"),
		Timezone:         viper.GetString("TIMEZONE"),
		FrontendBaseURL:  viper.GetString("FRONTEND_BASE_URL"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		PosthogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		TelegramBotToken: viper.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   viper.GetInt64("TELEGRAM_CHAT_ID"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.CronSecret == "" && cfg.CronSecretHash == "" {
		slog.Warn("Neither CRON_SECRET nor CRON_SECRET_HASH is set. Job endpoints will reject every call.")
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID == 0 {
		slog.Warn("TELEGRAM_BOT_TOKEN is set without TELEGRAM_CHAT_ID. Alert notifications are disabled.")
	}

	return cfg, nil
}

// Now returns the wall clock in the configured location.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
