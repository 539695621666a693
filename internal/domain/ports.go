package domain

import "context"

type ListingSource interface {
	Load(ctx context.Context) ([]Record, error)
}

// Container is the display surface cards are written to. Only the display
// orchestrator mutates it.
type Container interface {
	Clear(ctx context.Context) error
	Append(ctx context.Context, c Card) error
	Cards(ctx context.Context) ([]Card, error)
}
