package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{"Valid date", "2026-09-01", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"With surrounding spaces", " 2026-09-01 ", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"European format rejected", "01.09.2026", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
		{"Garbage", "not-a-date", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseISODate(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(got))
			}
		})
	}
}

func TestParseTimestampDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasError bool
	}{
		{"Plain date", "2026-03-15", "2026-03-15", false},
		{"With time component", "2026-03-15T22:45:00", "2026-03-15", false},
		{"With zone suffix", "2026-03-15T23:59:59Z", "2026-03-15", false},
		{"With offset", "2026-03-15T01:00:00+09:00", "2026-03-15", false},
		{"Unparseable", "yesterday", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestampDate(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			// The time-of-day and zone are stripped; only the calendar
			// date survives, treated as naive local time.
			assert.Equal(t, tc.expected, ToISODate(got))
		})
	}
}

func TestWholeDaysBetween(t *testing.T) {
	noon := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"Ten full days", noon, noon.AddDate(0, 0, 10), 10},
		{"Same instant", noon, noon, 0},
		{"Partial day floors to zero", noon, noon.Add(23 * time.Hour), 0},
		{"Deadline at today's midnight floors to -1", noon, DateOnly(noon), -1},
		{"Past deadline", noon, noon.AddDate(0, 0, -3), -3},
		{"Negative partial floors toward minus infinity", noon, noon.Add(-1 * time.Hour), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WholeDaysBetween(tc.from, tc.to))
		})
	}
}

func TestAddDaysFractional(t *testing.T) {
	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Fractional days accumulate through duration arithmetic instead of
	// being truncated.
	got := AddDays(base, 2.5)
	assert.Equal(t, time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC), got)

	got = AddDays(base, -0.25)
	assert.Equal(t, time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC), got)
}

func TestSameOrBefore(t *testing.T) {
	deadline := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// Equal calendar dates count as on time even late in the day.
	assert.True(t, SameOrBefore(time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC), deadline))
	assert.True(t, SameOrBefore(time.Date(2026, 9, 9, 1, 0, 0, 0, time.UTC), deadline))
	assert.False(t, SameOrBefore(time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC), deadline))
}
