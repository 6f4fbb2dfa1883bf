// internal/cache/leaderboard.go

// Package cache provides the Redis-backed leaderboard read cache. The cache
// is an optimization only: the service runs fine (just slower reads) when
// Redis is unavailable, so a nil *Leaderboards is valid everywhere.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KayKv10/RankForge/internal/models"
)

// Leaderboards caches rendered leaderboard entries per game.
type Leaderboards struct {
	rdb *redis.Client
	ttl time.Duration
}

// Connect initializes a Redis client and verifies connectivity.
func Connect(addr string, db int, ttl time.Duration) (*Leaderboards, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Leaderboards{rdb: rdb, ttl: ttl}, nil
}

func key(gameID int64) string {
	return fmt.Sprintf("leaderboard:%d", gameID)
}

// Get returns the cached entries for a game, or ok=false on miss or any
// Redis failure.
func (c *Leaderboards) Get(ctx context.Context, gameID int64) ([]models.LeaderboardEntry, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key(gameID)).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Set stores the entries for a game with the configured TTL. Failures are
// swallowed; a cold cache is not an error.
func (c *Leaderboards) Set(ctx context.Context, gameID int64, entries []models.LeaderboardEntry) {
	if c == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key(gameID), data, c.ttl).Err()
}

// Invalidate drops a game's cached leaderboard. Called after a match for
// that game commits.
func (c *Leaderboards) Invalidate(ctx context.Context, gameID int64) {
	if c == nil {
		return
	}
	_ = c.rdb.Del(ctx, key(gameID)).Err()
}
