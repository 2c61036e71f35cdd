package models

import "github.com/shopspring/decimal"

// SignalSource identifies which estimator produced a velocity signal.
type SignalSource string

const (
	// SourceGoalSpecific marks a rate derived from the goal's own savings
	// history (current amount over active days).
	SourceGoalSpecific SignalSource = "goal_specific"

	// SourceGlobalForecast marks a rate derived from the seasonal net
	// cash-flow forecast over all transactions.
	SourceGlobalForecast SignalSource = "global_forecast"

	// SourceNone marks a degraded signal carrying no usable rate.
	SourceNone SignalSource = "none"
)

// VelocitySignal is the tagged outcome of one velocity estimator. A
// degraded estimate is expressed as Source == SourceNone with a Reason,
// never as an error: estimator failures shrink the signal, they do not
// fail the request.
type VelocitySignal struct {
	Rate   decimal.Decimal
	Source SignalSource
	Reason string
}

// NoSignal returns a degraded signal with the given reason.
func NoSignal(reason string) VelocitySignal {
	return VelocitySignal{Rate: decimal.Zero, Source: SourceNone, Reason: reason}
}

// Usable reports whether the signal carries a positive rate.
func (s VelocitySignal) Usable() bool {
	return s.Source != SourceNone && s.Rate.IsPositive()
}
