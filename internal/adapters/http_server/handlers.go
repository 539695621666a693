// internal/adapters/http_server/handlers.go
package httpserver

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"staycards/internal/adapters/page"
	"staycards/internal/app"
)

type Handlers struct {
	P     *app.PageService
	Title string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.getPage)
	s.mux.Get("/cards", h.getCards)
	s.mux.Get("/api/status", h.getStatus)
	s.mux.Post("/reload", h.reload)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func etagOf(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	cards, err := h.P.Cards(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("read cards for page")
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "card container unavailable")
		return
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, page.NewView(h.Title, h.P.Status(), cards)); err != nil {
		log.Error().Err(err).Msg("render page")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "page rendering failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) getCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.P.Cards(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "card container unavailable")
		return
	}
	var buf bytes.Buffer
	if err := page.RenderCards(&buf, cards); err != nil {
		log.Error().Err(err).Msg("render cards")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "cards rendering failed")
		return
	}

	etag := etagOf(buf.Bytes())
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("failed to write cards body")
	}
}

func (h *Handlers) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.P.Status())
}

// reload runs a load that outlives the request, so a dropped client does not
// cancel a pass other callers may have joined.
func (h *Handlers) reload(w http.ResponseWriter, r *http.Request) {
	if err := h.P.Load(context.WithoutCancel(r.Context())); err != nil {
		writeProblem(w, http.StatusBadGateway, "Load Failed", "listings could not be loaded")
		return
	}
	writeJSON(w, http.StatusOK, h.P.Status())
}
