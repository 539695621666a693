package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycards/internal/domain"
)

// ---- fakes ----

type fakeContainer struct {
	mu        sync.Mutex
	cards     []domain.Card
	clears    int
	failAfter int // fail appends once this many cards exist; 0 disables
}

func (c *fakeContainer) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
	c.cards = nil
	return nil
}

func (c *fakeContainer) Append(ctx context.Context, card domain.Card) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAfter > 0 && len(c.cards) >= c.failAfter {
		return domain.ErrContainerUnavailable
	}
	c.cards = append(c.cards, card)
	return nil
}

func (c *fakeContainer) Cards(ctx context.Context) ([]domain.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Card(nil), c.cards...), nil
}

func titleOf(t *testing.T, card domain.Card) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(card)))
	require.NoError(t, err)
	return doc.Find(".card-title").Text()
}

func records(n int) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		out[i] = domain.Record{"name": fmt.Sprintf("Listing %d", i), "amenities": "['Wifi', 'Pool']"}
	}
	return out
}

// ---- tests ----

func TestShow_AppendsInOrder(t *testing.T) {
	c := &fakeContainer{}
	n, err := Show(context.Background(), records(10), c)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	require.Len(t, c.cards, 10)
	for i, card := range c.cards {
		assert.Equal(t, fmt.Sprintf("Listing %d", i), titleOf(t, card))
	}
}

func TestShow_ClearsPriorContentAndIsIdempotent(t *testing.T) {
	c := &fakeContainer{cards: []domain.Card{"<div>stale</div>"}}
	ctx := context.Background()

	_, err := Show(ctx, records(3), c)
	require.NoError(t, err)
	_, err = Show(ctx, records(3), c)
	require.NoError(t, err)

	assert.Equal(t, 2, c.clears)
	assert.Len(t, c.cards, 3)
	for _, card := range c.cards {
		assert.NotContains(t, string(card), "stale")
	}
}

func TestShow_MalformedRecordStillRenders(t *testing.T) {
	recs := records(10)
	recs[4] = domain.Record{"name": "Odd One", "amenities": map[string]any{}}
	c := &fakeContainer{}

	n, err := Show(context.Background(), recs, c)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(c.cards[4])))
	require.NoError(t, err)
	assert.Equal(t, "Odd One", doc.Find(".card-title").Text())
	assert.Equal(t, 0, doc.Find(".amenity-badge").Length())
}

func TestShow_EmptyRecordsClearsOnly(t *testing.T) {
	c := &fakeContainer{cards: []domain.Card{"<div>old</div>"}}
	n, err := Show(context.Background(), nil, c)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, c.cards)
}

func TestShow_ContainerFailure(t *testing.T) {
	c := &fakeContainer{failAfter: 2}
	n, err := Show(context.Background(), records(5), c)
	assert.True(t, errors.Is(err, domain.ErrContainerUnavailable))
	assert.Equal(t, 2, n)
}
