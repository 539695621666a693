// Package page lays out the full listings page around the rendered cards.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"staycards/internal/domain"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

const DefaultTitle = "Airbnb Listings"

type View struct {
	Title   string
	Summary string
	Loading bool
	Failed  bool
	Cards   []domain.Card
}

// NewView builds the page view. Cards are only shown on success; the error
// indicator replaces them otherwise.
func NewView(title string, st domain.PageStatus, cards []domain.Card) View {
	if title == "" {
		title = DefaultTitle
	}
	v := View{Title: title, Loading: st.Loading, Failed: st.Failed}
	if st.State == domain.PageSuccess {
		v.Cards = cards
		v.Summary = fmt.Sprintf("Showing %s listings", humanize.Comma(int64(len(cards))))
	}
	return v
}

func Render(w io.Writer, v View) error {
	if err := pageTmpl.ExecuteTemplate(w, "page", v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderCards writes only the card fragments.
func RenderCards(w io.Writer, cards []domain.Card) error {
	if err := pageTmpl.ExecuteTemplate(w, "cards", cards); err != nil {
		return fmt.Errorf("render cards: %w", err)
	}
	return nil
}
