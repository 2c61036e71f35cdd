package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
)

// DailyNetFlow is the net cash movement for one calendar date: the sum of
// all Credits minus the sum of all Debits booked on that date.
type DailyNetFlow struct {
	Date time.Time
	Net  decimal.Decimal
}

// AggregateDaily groups transactions by calendar date and sums their signed
// amounts. The result has one point per distinct date, in chronological
// order. Dates without transactions are not synthesized; any interpolation
// is left to the forecasting model.
func AggregateDaily(records []TransactionRecord) []DailyNetFlow {
	byDate := make(map[time.Time]decimal.Decimal)
	for _, record := range records {
		day := dateutils.DateOnly(record.Date)
		byDate[day] = byDate[day].Add(record.SignedAmount())
	}

	series := make([]DailyNetFlow, 0, len(byDate))
	for date, net := range byDate {
		series = append(series, DailyNetFlow{Date: date, Net: net})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}
