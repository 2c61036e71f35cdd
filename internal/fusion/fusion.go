// Package fusion resolves the two velocity signals into one effective
// daily savings estimate. The priority rule is fixed for compatibility:
// a positive goal-specific rate always wins outright, a positive global
// forecast is discounted by half, and anything else yields zero.
package fusion

import (
	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/models"
)

// globalDiscount reflects that generic free cash flow is not earmarked
// for any single goal: only half of it is assumed to land here.
var globalDiscount = decimal.NewFromFloat(0.5)

// Resolve applies the priority rule to the goal-specific and global
// forecast signals.
func Resolve(specific, global models.VelocitySignal) models.VelocitySignal {
	if specific.Rate.IsPositive() {
		return models.VelocitySignal{Rate: specific.Rate, Source: models.SourceGoalSpecific}
	}
	if global.Rate.IsPositive() {
		return models.VelocitySignal{
			Rate:   global.Rate.Mul(globalDiscount),
			Source: models.SourceGlobalForecast,
		}
	}
	return models.NoSignal("no positive velocity signal")
}
