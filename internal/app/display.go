package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"staycards/internal/adapters/observability"
	"staycards/internal/domain"
)

// Show clears target and appends one card per record, in input order.
// It returns the number of cards appended.
func Show(ctx context.Context, records []domain.Record, target domain.Container) (int, error) {
	if err := target.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear container: %w", err)
	}

	for i, rec := range records {
		l := Normalize(rec)
		noteAmenities(i, l)
		if err := target.Append(ctx, RenderCard(l)); err != nil {
			return i, fmt.Errorf("append card %d: %w", i, err)
		}
		observability.ObserveCard()
	}
	return len(records), nil
}

// noteAmenities reports records whose amenities needed a fallback.
func noteAmenities(idx int, l domain.Listing) {
	switch l.AmenitiesSource {
	case domain.AmenitiesCommaSplit:
		observability.ObserveAmenitiesFallback(string(l.AmenitiesSource))
		log.Debug().Int("index", idx).Str("title", l.Title).Msg("amenities parsed as comma-separated text")
	case domain.AmenitiesUnsupported:
		observability.ObserveAmenitiesFallback(string(l.AmenitiesSource))
		log.Warn().Int("index", idx).Str("title", l.Title).Msg("amenities has unsupported shape; rendering none")
	}
}
