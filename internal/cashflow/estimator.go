// Package cashflow derives a global daily savings rate from transaction
// history: it aggregates signed amounts into a daily net-flow series, fits
// a seasonal forecasting model, and averages the predicted net flow over
// the next 30 days. Every failure mode degrades to a zero signal; the
// estimator never fails a request.
package cashflow

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"fjacquet/goalcast/internal/logging"
	"fjacquet/goalcast/internal/models"
	"fjacquet/goalcast/internal/timeseries"
)

const (
	// MinHistoryPoints is the minimum number of distinct dates required
	// before a forecast is attempted. Below this the model is skipped
	// entirely rather than fitted degenerately.
	MinHistoryPoints = 5

	// HorizonDays is how far past the last observed date the model
	// predicts.
	HorizonDays = 30
)

// Estimator fits a fresh forecasting model per request. The zero-cost
// construction keeps no state between calls, so one Estimator may serve
// concurrent requests; the optional cache (see NewCachedEstimator) is the
// only shared structure and is itself concurrency-safe.
type Estimator struct {
	log   logging.Logger
	cfg   timeseries.Config
	cache *forecastCache
}

// NewEstimator creates an Estimator with weekly seasonality enabled and
// yearly disabled, matching the cash-flow model settings.
func NewEstimator(log logging.Logger) *Estimator {
	return &Estimator{log: log, cfg: timeseries.DefaultConfig()}
}

// NewCachedEstimator creates an Estimator that memoizes forecast rates,
// keyed strictly by a hash of the aggregated series and the request date.
// Identical inputs on the same day reuse the rate; nothing is ever shared
// between differing inputs.
func NewCachedEstimator(log logging.Logger, ttl time.Duration) *Estimator {
	return &Estimator{log: log, cfg: timeseries.DefaultConfig(), cache: newForecastCache(ttl)}
}

// Estimate produces the global forecast velocity signal for the given
// wire-level history. Malformed records, sparse history, fit failures and
// empty forecast windows all degrade to a zero signal with a reason.
func (e *Estimator) Estimate(items []models.TransactionItem, now time.Time) models.VelocitySignal {
	if len(items) == 0 {
		return models.NoSignal("no transaction history")
	}

	records, err := models.ParseHistory(items)
	if err != nil {
		e.log.WithError(err).Warn("Malformed transaction history, skipping forecast")
		return models.NoSignal("malformed transaction history")
	}

	series := models.AggregateDaily(records)
	if len(series) < MinHistoryPoints {
		e.log.Debug("Insufficient history for forecasting",
			logging.F(logging.FieldCount, len(series)))
		return models.NoSignal("insufficient history for forecasting")
	}

	if e.cache != nil {
		if signal, ok := e.cache.get(series, now); ok {
			return signal
		}
	}

	signal := e.forecast(series, now)
	if e.cache != nil {
		e.cache.put(series, now, signal)
	}
	return signal
}

func (e *Estimator) forecast(series []models.DailyNetFlow, now time.Time) models.VelocitySignal {
	points := make([]timeseries.Point, len(series))
	for i, flow := range series {
		points[i] = timeseries.Point{Date: flow.Date, Value: flow.Net.InexactFloat64()}
	}

	model, err := timeseries.Fit(points, e.cfg)
	if err != nil {
		e.log.WithError(err).Warn("Cash-flow model fit failed, skipping forecast")
		return models.NoSignal("forecast model fit failed")
	}

	// Predict HorizonDays past the last observation, but count only dates
	// strictly after wall-clock now: with stale history part or all of the
	// horizon is already in the past.
	last := series[len(series)-1].Date
	future := make([]time.Time, 0, HorizonDays)
	for i := 1; i <= HorizonDays; i++ {
		d := last.AddDate(0, 0, i)
		if d.After(now) {
			future = append(future, d)
		}
	}
	if len(future) == 0 {
		e.log.Debug("Forecast window entirely in the past")
		return models.NoSignal("history too stale to forecast")
	}

	mean := stat.Mean(model.Predict(future), nil)
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		mean = 0
	}
	if mean <= 0 {
		return models.NoSignal("forecast predicts no positive net flow")
	}

	e.log.Debug("Cash-flow forecast computed",
		logging.F(logging.FieldRate, mean),
		logging.F(logging.FieldCount, len(future)))
	return models.VelocitySignal{
		Rate:   decimal.NewFromFloat(mean),
		Source: models.SourceGlobalForecast,
	}
}
