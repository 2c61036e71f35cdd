package models

import "github.com/shopspring/decimal"

// CompletionNever is the sentinel completion date reported when the
// effective savings rate is zero or negative.
const CompletionNever = "Never (Negative or Zero Savings)"

// PredictionResult is the sole externally observable output of the
// prediction pipeline. Numeric fields are rounded to two decimal places
// for presentation. Error is set only when the computation itself failed;
// a pessimistic but successful computation leaves it empty.
type PredictionResult struct {
	PredictedCompletionDate string  `json:"predicted_completion_date"`
	DailySavingsEstimate    float64 `json:"daily_savings_estimate"`
	RequiredDailySavings    float64 `json:"required_daily_savings"`
	OnTrack                 bool    `json:"on_track"`
	SuggestedDailyCut       float64 `json:"suggested_daily_cut"`
	Error                   string  `json:"error,omitempty"`
}

// ErrorResult builds the neutral result returned when the pipeline fails:
// zeroed numerics, off track, and a non-empty error message.
func ErrorResult(msg string) PredictionResult {
	return PredictionResult{OnTrack: false, Error: msg}
}

// Round2 converts a decimal rate to the two-decimal float used in results.
func Round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
