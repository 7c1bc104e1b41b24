// Package util provides small shared helpers for date handling across the
// resource handlers and the dashboard aggregation.
package util

import (
	"fmt"
	"time"
)

// Today returns the current UTC date in YYYY-MM-DD, the format every date
// field in the record store uses.
func Today() string {
	return time.Now().UTC().Format(time.DateOnly)
}

// DaysAgo returns the UTC date n days before today in YYYY-MM-DD.
func DaysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format(time.DateOnly)
}

// ParseDate parses a stored date value, accepting both the plain date form
// and full RFC3339 timestamps (lastModified is stored as a timestamp).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", s)
}
