// Package model holds the record types that flow through the enrichment
// pipeline, plus the coordinate-text parser used at ingestion.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports an unparseable coordinate cell. It keeps the original
// text so error records and logs can show exactly what the source held.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model: invalid coordinate %q: %s", e.Text, e.Reason)
}

// ParseCoordinates parses a free-form "lat, lon" cell. Comma is the
// primary separator; when the text has no comma it is split on
// whitespace instead. Exactly two numeric tokens are required. No range
// validation is applied: out-of-range values are passed through and will
// simply yield empty geo-query results.
func ParseCoordinates(text string) (lat, lon float64, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, 0, &ParseError{Text: text, Reason: "empty"}
	}

	var parts []string
	if strings.Contains(trimmed, ",") {
		parts = strings.Split(trimmed, ",")
	} else {
		parts = strings.Fields(trimmed)
	}
	if len(parts) != 2 {
		return 0, 0, &ParseError{Text: text, Reason: fmt.Sprintf("expected 2 components, got %d", len(parts))}
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, &ParseError{Text: text, Reason: "latitude is not numeric"}
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, &ParseError{Text: text, Reason: "longitude is not numeric"}
	}
	return lat, lon, nil
}
