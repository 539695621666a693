package app

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/rs/zerolog/log"

	"staycards/internal/domain"
)

const (
	maxDescriptionRunes = 150
	maxAmenityBadges    = 5
)

//go:embed templates/card.html
var cardFS embed.FS

var cardTmpl = template.Must(template.ParseFS(cardFS, "templates/card.html"))

type cardView struct {
	Title             string
	Price             string
	Description       string
	Truncated         bool
	ImageURL          string
	HostName          string
	HostImageURL      string
	Amenities         []string
	FallbackImage     string
	FallbackHostImage string
}

// truncateRunes cuts s to at most n characters and reports whether it did.
func truncateRunes(s string, n int) (string, bool) {
	r := []rune(s)
	if len(r) <= n {
		return s, false
	}
	return string(r[:n]), true
}

// RenderCard builds the markup for one listing. Every field is escaped for
// its context by html/template; image URLs fall back to placeholders at
// display time through onerror.
func RenderCard(l domain.Listing) domain.Card {
	desc, truncated := truncateRunes(l.Description, maxDescriptionRunes)
	amenities := l.Amenities
	if len(amenities) > maxAmenityBadges {
		amenities = amenities[:maxAmenityBadges]
	}
	v := cardView{
		Title:             l.Title,
		Price:             l.Price,
		Description:       desc,
		Truncated:         truncated,
		ImageURL:          l.ImageURL,
		HostName:          l.HostName,
		HostImageURL:      l.HostImageURL,
		Amenities:         amenities,
		FallbackImage:     domain.PlaceholderImageURL,
		FallbackHostImage: domain.PlaceholderHostImageURL,
	}

	var buf bytes.Buffer
	if err := cardTmpl.ExecuteTemplate(&buf, "card", v); err != nil {
		// Log but don't drop the card; fall back to an escaped title only.
		log.Error().Err(err).Str("context", "RenderCard").Msg("card template failed")
		return domain.Card(`<div class="col-md-6 col-lg-4"><div class="card listing-card"><h5 class="card-title">` +
			template.HTMLEscapeString(l.Title) + `</h5></div></div>`)
	}
	return domain.Card(buf.String())
}
