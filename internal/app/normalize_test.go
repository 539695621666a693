package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"staycards/internal/domain"
)

func TestNormalize_FullRecord(t *testing.T) {
	rec := domain.Record{
		"name":             "Sunny Loft",
		"description":      "Bright and airy",
		"summary":          "ignored",
		"price":            "$120.00",
		"picture_url":      "https://img/p.jpg",
		"thumbnail_url":    "https://img/t.jpg",
		"host_name":        "Ana",
		"host_picture_url": "https://img/h.jpg",
		"amenities":        `["Wifi", "Kitchen"]`,
	}

	got := Normalize(rec)

	assert.Equal(t, domain.Listing{
		Title:           "Sunny Loft",
		Description:     "Bright and airy",
		Price:           "$120.00",
		ImageURL:        "https://img/p.jpg",
		HostName:        "Ana",
		HostImageURL:    "https://img/h.jpg",
		Amenities:       []string{"Wifi", "Kitchen"},
		AmenitiesSource: domain.AmenitiesJSON,
	}, got)
}

func TestNormalize_EmptyRecordUsesSentinels(t *testing.T) {
	got := Normalize(domain.Record{})

	assert.Equal(t, "Untitled Listing", got.Title)
	assert.Equal(t, "No description available", got.Description)
	assert.Equal(t, "N/A", got.Price)
	assert.Equal(t, domain.PlaceholderImageURL, got.ImageURL)
	assert.Equal(t, "Unknown Host", got.HostName)
	assert.Equal(t, domain.PlaceholderHostImageURL, got.HostImageURL)
	assert.NotNil(t, got.Amenities)
	assert.Empty(t, got.Amenities)
	assert.Equal(t, domain.AmenitiesMissing, got.AmenitiesSource)
}

func TestNormalize_SecondaryFallbacks(t *testing.T) {
	got := Normalize(domain.Record{
		"description":        "",
		"summary":            "From summary",
		"thumbnail_url":      "https://img/t.jpg",
		"host_thumbnail_url": "https://img/ht.jpg",
	})

	assert.Equal(t, "From summary", got.Description)
	assert.Equal(t, "https://img/t.jpg", got.ImageURL)
	assert.Equal(t, "https://img/ht.jpg", got.HostImageURL)
}

func TestNormalize_ScalarShapes(t *testing.T) {
	tests := []struct {
		name  string
		price any
		want  string
	}{
		{"string", "$99", "$99"},
		{"integer number", float64(150), "150"},
		{"fractional number", 99.5, "99.5"},
		{"zero is absent", float64(0), "N/A"},
		{"empty string is absent", "", "N/A"},
		{"null is absent", nil, "N/A"},
		{"bool is absent", true, "N/A"},
		{"object is absent", map[string]any{"amount": 1}, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(domain.Record{"price": tt.price})
			assert.Equal(t, tt.want, got.Price)
		})
	}
}

func TestNormalize_Amenities(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   []string
		source domain.AmenitiesSource
	}{
		{"json array string", `["Wifi","Pool"]`, []string{"Wifi", "Pool"}, domain.AmenitiesJSON},
		{"single quoted list", "['Wifi', 'Pool']", []string{"Wifi", "Pool"}, domain.AmenitiesJSON},
		{"comma separated", "Wifi, Pool, Parking", []string{"Wifi", "Pool", "Parking"}, domain.AmenitiesCommaSplit},
		{"unbalanced bracket", "not [valid", []string{"not [valid"}, domain.AmenitiesCommaSplit},
		{"json number text renders none", "42", []string{}, domain.AmenitiesUnsupported},
		{"json object text renders none", `{"a":1}`, []string{}, domain.AmenitiesUnsupported},
		{"json bool text renders none", "true", []string{}, domain.AmenitiesUnsupported},
		{"quoted json string renders none", "'Wifi, Pool'", []string{}, domain.AmenitiesUnsupported},
		{"only separators", " , ,", []string{}, domain.AmenitiesCommaSplit},
		{"empty pieces dropped", "Wifi,, Pool,", []string{"Wifi", "Pool"}, domain.AmenitiesCommaSplit},
		{"empty json array", "[]", []string{}, domain.AmenitiesJSON},
		{"mixed json elements", `["Wifi", 2, true, null, {"x":1}]`, []string{"Wifi", "2", "true"}, domain.AmenitiesJSON},
		{"real list", []any{"TV", "Heating"}, []string{"TV", "Heating"}, domain.AmenitiesList},
		{"string slice", []string{"TV"}, []string{"TV"}, domain.AmenitiesList},
		{"missing", nil, []string{}, domain.AmenitiesMissing},
		{"empty string", "", []string{}, domain.AmenitiesMissing},
		{"false", false, []string{}, domain.AmenitiesMissing},
		{"zero", float64(0), []string{}, domain.AmenitiesMissing},
		{"object", map[string]any{}, []string{}, domain.AmenitiesUnsupported},
		{"true", true, []string{}, domain.AmenitiesUnsupported},
		{"number", float64(3), []string{}, domain.AmenitiesUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(domain.Record{"amenities": tt.in})
			assert.Equal(t, tt.want, got.Amenities)
			assert.Equal(t, tt.source, got.AmenitiesSource)
		})
	}
}

func TestNormalize_AmenitiesKeepOrderAndDuplicates(t *testing.T) {
	got := Normalize(domain.Record{"amenities": "b, a, b"})
	assert.Equal(t, []string{"b", "a", "b"}, got.Amenities)
}

func TestNormalize_IsTotalOnHostileInput(t *testing.T) {
	inputs := []any{
		"[[[", "]", "['a', ", `{"a":`, "'", strings.Repeat("[", 10000),
		[]any{nil, []any{"x"}}, map[string]any{"a": []any{}}, float64(-1),
	}
	for _, in := range inputs {
		rec := domain.Record{"name": in, "description": in, "price": in, "amenities": in, "host_name": in}
		assert.NotPanics(t, func() {
			got := Normalize(rec)
			assert.NotEmpty(t, got.Title)
			assert.NotEmpty(t, got.Description)
			assert.NotEmpty(t, got.Price)
			assert.NotEmpty(t, got.ImageURL)
			assert.NotEmpty(t, got.HostName)
			assert.NotEmpty(t, got.HostImageURL)
			assert.NotNil(t, got.Amenities)
		})
	}
}

func TestNormalize_DoesNotMutateRecord(t *testing.T) {
	rec := domain.Record{"amenities": "['Wifi']", "name": "x"}
	_ = Normalize(rec)
	assert.Equal(t, domain.Record{"amenities": "['Wifi']", "name": "x"}, rec)
}

func TestLookupAny_Paths(t *testing.T) {
	m := map[string]any{
		"name": "Flat",
		"host": map[string]any{"name": "Nested"},
		"tags": []any{"x"},
	}
	assert.Equal(t, "Flat", lookupAny(m, "name"))
	assert.Equal(t, "Nested", lookupAny(m, "host.name"))
	assert.Nil(t, lookupAny(m, "host.missing"))
	assert.Nil(t, lookupAny(m, "tags.0"), "only maps are walked")
	assert.Nil(t, lookupAny(m, "name.first"))
}
