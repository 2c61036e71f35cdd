// Package velocity computes the goal-specific savings rate: the amount
// saved so far spread uniformly over the days the goal has existed. This
// is an approximation of contribution velocity, not a measured one, but a
// user-declared goal balance is the strongest signal available.
package velocity

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
	"fjacquet/goalcast/internal/logging"
	"fjacquet/goalcast/internal/models"
)

// Estimate derives the goal-specific daily rate from the goal's creation
// timestamp and current balance. A missing or unparseable timestamp
// degrades to a zero signal; it never fails the request.
func Estimate(goal models.GoalSpec, now time.Time, log logging.Logger) models.VelocitySignal {
	if goal.CreatedAt == "" {
		return models.NoSignal("goal has no creation timestamp")
	}

	created, err := dateutils.ParseTimestampDate(goal.CreatedAt)
	if err != nil {
		log.WithError(err).Warn("Failed to parse goal creation timestamp")
		return models.NoSignal("unparseable goal creation timestamp")
	}

	// Goals created today floor to one active day so the division below
	// is always defined.
	daysActive := dateutils.WholeDaysBetween(created, now)
	if daysActive < 1 {
		daysActive = 1
	}

	rate := goal.Current.Div(decimal.NewFromInt(int64(daysActive)))
	return models.VelocitySignal{Rate: rate, Source: models.SourceGoalSpecific}
}
