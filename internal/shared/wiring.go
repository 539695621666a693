package shared

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"staycards/internal/adapters/memory"
	redisad "staycards/internal/adapters/redis"
	"staycards/internal/adapters/source"
	"staycards/internal/domain"
)

// Build creates the listing source and card container selected by cfg.
func Build(ctx context.Context, cfg Config) (domain.ListingSource, domain.Container, error) {
	src, err := source.New(cfg.SourceURL, cfg.ListingLimit, cfg.SourceRPS, cfg.SourceTimeout)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Container {
	case "redis":
		c := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisKey)
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Str("key", cfg.RedisKey).Msg("redis container ok")
		return src, c, nil
	default:
		return src, memory.NewContainer(), nil
	}
}

// Close releases the container's connections, if it holds any.
func Close(c domain.Container) error {
	if cl, ok := c.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
