// internal/config/config.go

// Package config reads service configuration from the environment. main
// autoloads a .env file via godotenv, so local development only needs a
// dotfile next to the binary.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration of the service.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DatabaseURL is the Postgres DSN. Required.
	DatabaseURL string
	// RedisAddr enables the leaderboard cache when non-empty.
	RedisAddr string
	RedisDB   int
	// LeaderboardTTL bounds staleness of cached leaderboards.
	LeaderboardTTL time.Duration
	// LogLevel is a logrus level name (debug, info, warn, ...).
	LogLevel string
	// AdminPasswordHash (argon2id encoded) enables admin auth on mutating
	// endpoints when non-empty.
	AdminPasswordHash string
	// TokenTTL is the admin session lifetime; zero means no expiry.
	TokenTTL time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Addr:              ":8080",
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		LeaderboardTTL:    getEnvDuration("LEADERBOARD_CACHE_TTL", 30*time.Second),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		TokenTTL:          getEnvDuration("TOKEN_EXPIRE_TIME", 72*time.Hour),
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	if s == "never" || s == "0" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
