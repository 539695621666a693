package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"staycards/internal/adapters/observability"
	"staycards/internal/domain"
)

// PageService owns the page state machine around the display container:
// idle -> loading -> success | error.
type PageService struct {
	src    domain.ListingSource
	target domain.Container
	now    func() time.Time

	sf singleflight.Group

	mu       sync.RWMutex
	state    domain.PageState
	cards    int
	errKind  string
	loadedAt *time.Time
}

func NewPageService(src domain.ListingSource, target domain.Container) *PageService {
	return &PageService{src: src, target: target, now: time.Now, state: domain.PageIdle}
}

// Load runs one fetch-then-render pass. Concurrent callers share the
// in-flight pass instead of starting another one.
func (p *PageService) Load(ctx context.Context) error {
	_, err, shared := p.sf.Do("load", func() (any, error) {
		return nil, p.load(ctx)
	})
	if shared {
		log.Debug().Msg("joined in-flight listings load")
	}
	return err
}

func (p *PageService) load(ctx context.Context) error {
	p.setState(domain.PageLoading, "")

	records, err := p.src.Load(ctx)
	if err != nil {
		p.fail(ctx, err)
		return err
	}

	n, err := Show(ctx, records, p.target)
	if err != nil {
		p.fail(ctx, err)
		return err
	}

	at := p.now()
	p.mu.Lock()
	p.state = domain.PageSuccess
	p.cards = n
	p.errKind = ""
	p.loadedAt = &at
	p.mu.Unlock()

	observability.ObserveLoad("success")
	log.Info().Int("cards", n).Msg("listings loaded")
	return nil
}

// fail moves to the error state. The container is emptied so that no cards
// from an earlier load stay visible next to the error indicator.
func (p *PageService) fail(ctx context.Context, err error) {
	kind := string(domain.LoadErrorKindOf(err))
	if kind == "" {
		kind = "container"
	}
	if cerr := p.target.Clear(ctx); cerr != nil {
		log.Error().Err(cerr).Msg("clear container after failed load")
	}
	p.mu.Lock()
	p.state = domain.PageError
	p.cards = 0
	p.errKind = kind
	p.mu.Unlock()

	observability.ObserveLoad(kind)
	log.Error().Err(err).Str("kind", kind).Msg("error loading listings")
}

func (p *PageService) setState(s domain.PageState, errKind string) {
	p.mu.Lock()
	p.state = s
	p.errKind = errKind
	p.mu.Unlock()
}

func (p *PageService) Status() domain.PageStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.PageStatus{
		State:     p.state,
		Loading:   p.state == domain.PageLoading,
		Failed:    p.state == domain.PageError,
		Cards:     p.cards,
		ErrorKind: p.errKind,
		LoadedAt:  p.loadedAt,
	}
}

// Cards returns the rendered cards currently in the container.
func (p *PageService) Cards(ctx context.Context) ([]domain.Card, error) {
	return p.target.Cards(ctx)
}
