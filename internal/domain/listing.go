package domain

import "html/template"

// Record is one decoded listing object from the source document.
// Field shapes vary between records; never mutate it.
type Record map[string]any

const (
	PlaceholderImageURL     = "https://via.placeholder.com/400x220?text=No+Image"
	PlaceholderHostImageURL = "https://via.placeholder.com/50?text=Host"
)

// AmenitiesSource records which resolution branch produced Listing.Amenities.
type AmenitiesSource string

const (
	AmenitiesMissing     AmenitiesSource = "missing"
	AmenitiesJSON        AmenitiesSource = "json"
	AmenitiesList        AmenitiesSource = "list"
	AmenitiesCommaSplit  AmenitiesSource = "comma_split"
	AmenitiesUnsupported AmenitiesSource = "unsupported"
)

type Listing struct {
	Title           string
	Description     string
	Price           string
	ImageURL        string
	HostName        string
	HostImageURL    string
	Amenities       []string
	AmenitiesSource AmenitiesSource
}

// Card is one rendered, self-contained listing unit.
type Card = template.HTML
