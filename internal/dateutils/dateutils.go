// Package dateutils provides the date arithmetic used by the prediction
// pipeline. All comparisons operate on naive local dates: timestamps are
// truncated to their calendar date and time zones are deliberately
// ignored, matching the semantics of the deadline and created-at inputs.
package dateutils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayoutISO is the wire format for all dates (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// ParseISODate parses a strict YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}
	return t, nil
}

// ParseTimestampDate parses an ISO-8601 timestamp that may carry a
// time-of-day and zone suffix, keeping only the calendar date. The
// time-of-day is stripped before parsing, so a goal created late in the
// evening in any zone still counts from that local date.
func ParseTimestampDate(s string) (time.Time, error) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(s), "T")
	return ParseISODate(datePart)
}

// ToISODate formats a time as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// DateOnly truncates a timestamp to midnight of its calendar date,
// preserving the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WholeDaysBetween returns the number of whole days from `from` to `to`,
// flooring toward negative infinity. A deadline later today therefore
// yields 0 when measured from any earlier moment today, and a deadline at
// this morning's midnight measured from noon yields -1.
func WholeDaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// AddDays adds a possibly fractional number of days to a time using
// duration arithmetic, so fractional days accumulate instead of being
// truncated.
func AddDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// SameOrBefore reports whether a falls on the same calendar date as b or
// earlier. Both sides are truncated to dates first, so an intra-day
// difference never flips the comparison.
func SameOrBefore(a, b time.Time) bool {
	return !DateOnly(a).After(DateOnly(b))
}
