package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
)

// Recommendation carries the corrective guidance: the daily savings needed
// to hit the deadline, and the extra daily cut beyond the current rate
// when the goal is off track.
type Recommendation struct {
	RequiredDaily decimal.Decimal
	SuggestedCut  decimal.Decimal
}

// Advise computes the recommendation. With the deadline still ahead, the
// required rate spreads the remainder over the days left and the cut is
// the shortfall against the effective rate. With the deadline today or
// passed, the entire remainder is needed immediately: required keeps the
// strictly calculated value even when negative, and the cut mirrors it
// but never drops below zero.
func Advise(remaining, rate decimal.Decimal, onTrack bool, now, deadline time.Time) Recommendation {
	daysRemaining := dateutils.WholeDaysBetween(now, deadline)

	if daysRemaining > 0 {
		required := remaining.Div(decimal.NewFromInt(int64(daysRemaining)))
		cut := decimal.Zero
		if !onTrack {
			cut = decimal.Max(decimal.Zero, required.Sub(rate))
		}
		return Recommendation{RequiredDaily: required, SuggestedCut: cut}
	}

	cut := remaining
	if cut.IsNegative() {
		cut = decimal.Zero
	}
	return Recommendation{RequiredDaily: remaining, SuggestedCut: cut}
}
