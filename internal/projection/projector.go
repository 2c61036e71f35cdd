// Package projection turns the effective daily savings estimate into a
// predicted completion date, an on-track verdict, and the corrective
// recommendation against the goal deadline.
package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
)

// Projection is the outcome of projecting the remaining amount at the
// effective rate.
type Projection struct {
	CompletionDate time.Time
	Unreachable    bool
	OnTrack        bool
}

// Project computes the completion date. A non-positive rate makes the goal
// unreachable regardless of how much (or little) remains. A non-positive
// remaining amount yields a completion at or before now, which is valid
// and kept: the goal is already met.
func Project(remaining, rate decimal.Decimal, now, deadline time.Time) Projection {
	if !rate.IsPositive() {
		return Projection{Unreachable: true, OnTrack: false}
	}

	// Fractional days accumulate through duration arithmetic rather than
	// being truncated to whole days.
	days, _ := remaining.Div(rate).Float64()
	completion := dateutils.AddDays(now, days)

	return Projection{
		CompletionDate: completion,
		OnTrack:        dateutils.SameOrBefore(completion, deadline),
	}
}
