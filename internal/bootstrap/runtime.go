// Package bootstrap establishes process-wide runtime dependencies before the
// HTTP layer starts.
package bootstrap

import (
	"fmt"

	"pawnder/internal/cache"
	"pawnder/internal/config"
	"pawnder/internal/database"
	"pawnder/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// Runtime bundles the shared dependencies the server is built on.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// InitRuntime connects to DB and Redis and optionally runs demo seeding.
// A missing Redis yields a nil client; realtime fan-out degrades to
// single-instance delivery in that case.
func InitRuntime(cfg *config.Config, opts Options) (*Runtime, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	if opts.SeedDemoData {
		if err := seed.Seed(db, seed.Options{NumUsers: 50, NumLikes: 200, ShouldClean: false}); err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return &Runtime{DB: db, Redis: cache.GetClient()}, nil
}
