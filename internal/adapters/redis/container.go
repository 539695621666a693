package redisad

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"staycards/internal/adapters/observability"
	"staycards/internal/domain"
)

// Container keeps the rendered cards as a Redis list under one key, so
// another process can read what the last load produced.
type Container struct {
	c   *redis.Client
	key string
}

func New(addr, pass string, db int, key string) *Container {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), key)
}

func NewWithClient(c *redis.Client, key string) *Container {
	if key == "" {
		key = "staycards:cards"
	}
	return &Container{c: c, key: key}
}

func (r *Container) Clear(ctx context.Context) error {
	if err := r.c.Del(ctx, r.key).Err(); err != nil {
		observability.ObserveContainer("redis", "error")
		return fmt.Errorf("%w: %v", domain.ErrContainerUnavailable, err)
	}
	observability.ObserveContainer("redis", "clear")
	return nil
}

func (r *Container) Append(ctx context.Context, card domain.Card) error {
	if err := r.c.RPush(ctx, r.key, string(card)).Err(); err != nil {
		observability.ObserveContainer("redis", "error")
		return fmt.Errorf("%w: %v", domain.ErrContainerUnavailable, err)
	}
	observability.ObserveContainer("redis", "append")
	return nil
}

func (r *Container) Cards(ctx context.Context) ([]domain.Card, error) {
	vals, err := r.c.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContainerUnavailable, err)
	}
	out := make([]domain.Card, len(vals))
	for i, v := range vals {
		out[i] = domain.Card(v)
	}
	return out, nil
}

func (r *Container) Ping(ctx context.Context) error {
	return r.c.Ping(ctx).Err()
}

func (r *Container) Close() error { return r.c.Close() }
