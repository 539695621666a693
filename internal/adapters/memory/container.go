package memory

import (
	"context"
	"sync"

	"staycards/internal/adapters/observability"
	"staycards/internal/domain"
)

// Container is a thread-safe in-process card container.
type Container struct {
	mu    sync.RWMutex
	cards []domain.Card
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = nil
	observability.ObserveContainer("memory", "clear")
	return nil
}

func (c *Container) Append(ctx context.Context, card domain.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = append(c.cards, card)
	observability.ObserveContainer("memory", "append")
	return nil
}

// Cards returns a copy so callers can't alias the backing array.
func (c *Container) Cards(ctx context.Context) ([]domain.Card, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Card, len(c.cards))
	copy(out, c.cards)
	return out, nil
}
