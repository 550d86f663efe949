// Package bootstrap wires runtime dependencies for the cmd entry points.
package bootstrap

import (
	"fmt"

	"amity/internal/cache"
	"amity/internal/config"
	"amity/internal/database"
	"amity/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
	DemoUsers    int
}

// InitRuntime connects to DB and Redis and optionally seeds demo data.
// The Redis client may be nil when the server is unreachable; callers must
// treat the cache as optional.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		n := opts.DemoUsers
		if n <= 0 {
			n = 50
		}
		if _, err := seed.NewSeeder(db).SeedSocialMesh(n); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}
