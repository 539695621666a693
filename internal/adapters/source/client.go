// internal/adapters/source/client.go
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"staycards/internal/adapters/observability"
	"staycards/internal/domain"
)

const DefaultLimit = 50

// Client loads the listings document from an http(s) URL or a local path.
type Client struct {
	source string
	limit  int
	hc     *http.Client
	rl     *rate.Limiter
}

// New builds a Client. timeout <= 0 leaves the HTTP client without a deadline.
func New(source string, limit, rps int, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("listing source is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if rps <= 0 {
		rps = 1
	}
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{
		source: source,
		limit:  limit,
		hc:     hc,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// Load fetches the document once and returns its first limit records in order.
// Every failure is a *domain.LoadError.
func (c *Client) Load(ctx context.Context) ([]domain.Record, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, &domain.LoadError{Kind: domain.KindTransport, Err: err}
	}

	body, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", c.source).Str("size", humanize.Bytes(uint64(len(body)))).Msg("listings document fetched")

	return decodeRecords(body, c.limit)
}

// ---- Internals ----

func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(c.source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return c.fetchHTTP(ctx, u.Scheme)
	}
	path := c.source
	if err == nil && u.Scheme == "file" {
		path = u.Path
	}
	return readFile(path)
}

func (c *Client) fetchHTTP(ctx context.Context, scheme string) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, &domain.LoadError{Kind: domain.KindTransport, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "staycards/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(scheme, 0, time.Since(start))
		return nil, &domain.LoadError{Kind: domain.KindTransport, Err: err}
	}
	defer resp.Body.Close()
	observability.ObserveExternal(scheme, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.LoadError{Kind: domain.KindHTTPStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.LoadError{Kind: domain.KindTransport, Err: err}
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	start := time.Now()
	b, err := os.ReadFile(path)
	status := http.StatusOK
	if err != nil {
		status = 0
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
	}
	observability.ObserveExternal("file", status, time.Since(start))
	if err != nil {
		return nil, &domain.LoadError{Kind: domain.KindTransport, Err: err}
	}
	return b, nil
}

// decodeRecords expects a top-level JSON array. Elements that are not
// objects become empty records so they still render as placeholder cards.
func decodeRecords(body []byte, limit int) ([]domain.Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.LoadError{Kind: domain.KindDecode, Err: err}
	}
	if raw == nil {
		return nil, &domain.LoadError{Kind: domain.KindDecode, Err: errors.New("document is null, want array")}
	}
	if len(raw) > limit {
		raw = raw[:limit]
	}

	out := make([]domain.Record, 0, len(raw))
	for i, el := range raw {
		var m map[string]any
		if err := json.Unmarshal(el, &m); err != nil || m == nil {
			log.Warn().Int("index", i).Msg("listing is not a JSON object; using empty record")
			m = map[string]any{}
		}
		out = append(out, domain.Record(m))
	}
	return out, nil
}
