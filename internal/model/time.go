package model

import (
	"fmt"
	"time"
)

// Layouts accepted from clients, tried in order. HTML date and
// datetime-local inputs produce the zone-less forms; those are interpreted
// as UTC so every stored instant lives on one absolute clock.
var clientTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseClientTime parses a client-supplied date/time string and normalizes
// it to UTC. Empty input resolves to the current instant.
func ParseClientTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range clientTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseClientDay parses a YYYY-MM-DD selector, defaulting to today (UTC).
func ParseClientDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC(), nil
}
