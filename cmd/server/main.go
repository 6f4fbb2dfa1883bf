// cmd/server/main.go
package main

import (
	"context"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/KayKv10/RankForge/internal/auth"
	"github.com/KayKv10/RankForge/internal/cache"
	"github.com/KayKv10/RankForge/internal/config"
	"github.com/KayKv10/RankForge/internal/database"
	"github.com/KayKv10/RankForge/internal/handlers"
	"github.com/KayKv10/RankForge/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Fatalf("migrating schema: %v", err)
	}

	var leaderboards *cache.Leaderboards
	if cfg.RedisAddr != "" {
		leaderboards, err = cache.Connect(cfg.RedisAddr, cfg.RedisDB, cfg.LeaderboardTTL)
		if err != nil {
			// Cache-less operation is degraded, not broken.
			logger.Warnf("leaderboard cache disabled: %v", err)
			leaderboards = nil
		}
	}

	if err := auth.Init(cfg.TokenTTL); err != nil {
		logger.Fatalf("initializing auth: %v", err)
	}

	srv := &handlers.Server{
		DB:                db,
		Processor:         service.NewProcessor(db, logger),
		Cache:             leaderboards,
		Log:               logger,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}

	logger.Infof("Running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
