package app

import (
	"math"
	"strconv"
	"strings"

	"staycards/internal/domain"
)

/********** alias registry (single source of truth) **********/

// Ordered: the first present alias wins.
var listingAliases = map[string][]string{
	"title":       {"name"},
	"description": {"description", "summary"},
	"price":       {"price"},
	"image":       {"picture_url", "thumbnail_url"},
	"host_name":   {"host_name"},
	"host_image":  {"host_picture_url", "host_thumbnail_url"},
}

var listingDefaults = map[string]string{
	"title":       "Untitled Listing",
	"description": "No description available",
	"price":       "N/A",
	"image":       domain.PlaceholderImageURL,
	"host_name":   "Unknown Host",
	"host_image":  domain.PlaceholderHostImageURL,
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps. Aliases may name
// nested fields (e.g. "host.name"); the current feed is flat.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// textValue reports the display text of a scalar. Only non-empty strings and
// non-zero finite numbers count as present.
func textValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		if t == 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return formatNumber(t), true
	case int:
		return strconv.Itoa(t), t != 0
	case int64:
		return strconv.FormatInt(t, 10), t != 0
	}
	return "", false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// resolveField walks the alias chain for key and falls back to its default.
func resolveField(m map[string]any, key string) string {
	for _, p := range listingAliases[key] {
		if s, ok := textValue(lookupAny(m, p)); ok {
			return s
		}
	}
	return listingDefaults[key]
}

/********** listing normalizer **********/

// Normalize maps one raw record to a fixed-shape Listing. It never fails and
// never leaves a field undefined.
func Normalize(rec domain.Record) domain.Listing {
	m := map[string]any(rec)
	amenities, src := resolveAmenities(lookupAny(m, "amenities"))
	return domain.Listing{
		Title:           resolveField(m, "title"),
		Description:     resolveField(m, "description"),
		Price:           resolveField(m, "price"),
		ImageURL:        resolveField(m, "image"),
		HostName:        resolveField(m, "host_name"),
		HostImageURL:    resolveField(m, "host_image"),
		Amenities:       amenities,
		AmenitiesSource: src,
	}
}
