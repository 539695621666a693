package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"staycards/internal/domain"
)

type amenitiesKind int

const (
	amenitiesMissing amenitiesKind = iota
	amenitiesText
	amenitiesList
	amenitiesUnsupported
)

// amenitiesField is the boundary shape of a record's amenities value.
type amenitiesField struct {
	kind amenitiesKind
	text string
	list []any
}

func classifyAmenities(v any) amenitiesField {
	switch t := v.(type) {
	case nil:
		return amenitiesField{kind: amenitiesMissing}
	case string:
		if t == "" {
			return amenitiesField{kind: amenitiesMissing}
		}
		return amenitiesField{kind: amenitiesText, text: t}
	case []any:
		return amenitiesField{kind: amenitiesList, list: t}
	case []string:
		list := make([]any, len(t))
		for i, s := range t {
			list[i] = s
		}
		return amenitiesField{kind: amenitiesList, list: list}
	case bool:
		if !t {
			return amenitiesField{kind: amenitiesMissing}
		}
	case float64:
		if t == 0 {
			return amenitiesField{kind: amenitiesMissing}
		}
	}
	return amenitiesField{kind: amenitiesUnsupported}
}

// parseOutcome is the result of one text parse attempt.
type parseOutcome struct {
	values []string
	source domain.AmenitiesSource
	ok     bool
}

type textParser func(raw string) parseOutcome

// Tried in order; the first ok outcome wins.
var textParsers = []textParser{parseQuotedJSON, splitCommas}

// parseQuotedJSON accepts JSON arrays, including Python-style single-quoted
// lists such as ['Wifi', 'Pool']. Text that parses to any other JSON value
// yields no amenities; only unparseable text moves on to comma splitting.
func parseQuotedJSON(raw string) parseOutcome {
	var v any
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &v); err != nil {
		return parseOutcome{}
	}
	list, ok := v.([]any)
	if !ok {
		return parseOutcome{values: []string{}, source: domain.AmenitiesUnsupported, ok: true}
	}
	return parseOutcome{values: listStrings(list), source: domain.AmenitiesJSON, ok: true}
}

func splitCommas(raw string) parseOutcome {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return parseOutcome{values: out, source: domain.AmenitiesCommaSplit, ok: true}
}

// listStrings converts list elements to text; null and nested values are dropped.
func listStrings(list []any) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		switch t := it.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, formatNumber(t))
		case bool:
			out = append(out, strconv.FormatBool(t))
		}
	}
	return out
}

// resolveAmenities turns any amenities shape into the canonical list.
// The result is never nil.
func resolveAmenities(v any) ([]string, domain.AmenitiesSource) {
	f := classifyAmenities(v)
	switch f.kind {
	case amenitiesText:
		for _, parse := range textParsers {
			if out := parse(f.text); out.ok {
				return out.values, out.source
			}
		}
		return []string{}, domain.AmenitiesCommaSplit
	case amenitiesList:
		return listStrings(f.list), domain.AmenitiesList
	case amenitiesUnsupported:
		return []string{}, domain.AmenitiesUnsupported
	default:
		return []string{}, domain.AmenitiesMissing
	}
}
