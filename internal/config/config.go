package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port                string
	Env                 string
	DatabaseDSN         string
	HistoryFile         string
	JWTSecret           string
	JWTExpiry           time.Duration
	AdminPasswordHash   string
	ClipboardClearAfter time.Duration
	RateLimitRPS        float64
	RateLimitBurst      int
}

func Load() Config {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		DatabaseDSN:         getEnv("DATABASE_DSN", ""),
		HistoryFile:         getEnv("HISTORY_FILE", "password-history.json"),
		JWTSecret:           getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:           getDuration("JWT_EXPIRY", 24*time.Hour),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		ClipboardClearAfter: getDuration("CLIPBOARD_CLEAR_AFTER", 30*time.Second),
		RateLimitRPS:        getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:      getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
