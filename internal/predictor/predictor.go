// Package predictor orchestrates the goal-completion pipeline: it runs the
// velocity estimator and the cash-flow forecaster, fuses their signals,
// projects a completion date and derives the recommendation. Any fault
// anywhere in the pipeline is converted into an error-bearing result at
// this boundary; callers never see a raw failure.
package predictor

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
	"fjacquet/goalcast/internal/fusion"
	"fjacquet/goalcast/internal/logging"
	"fjacquet/goalcast/internal/models"
	"fjacquet/goalcast/internal/projection"
	"fjacquet/goalcast/internal/velocity"
)

// Request mirrors the prediction request wire contract.
type Request struct {
	History       []models.TransactionItem `json:"transactions"`
	GoalTarget    float64                  `json:"goal_target"`
	GoalCurrent   float64                  `json:"goal_current"`
	GoalDeadline  string                   `json:"goal_deadline"`
	GoalCreatedAt string                   `json:"goal_created_at,omitempty"`
}

// CashflowEstimator produces the global forecast velocity signal. The
// production implementation lives in the cashflow package; tests may
// substitute a stub.
type CashflowEstimator interface {
	Estimate(items []models.TransactionItem, now time.Time) models.VelocitySignal
}

// Service runs predictions. It holds no per-request state and a single
// instance is safe for concurrent use.
type Service struct {
	log      logging.Logger
	cashflow CashflowEstimator
	now      func() time.Time
}

// New creates a prediction service using the wall clock.
func New(log logging.Logger, cashflow CashflowEstimator) *Service {
	return NewWithClock(log, cashflow, time.Now)
}

// NewWithClock creates a prediction service with an injected clock so
// tests can pin "now".
func NewWithClock(log logging.Logger, cashflow CashflowEstimator, now func() time.Time) *Service {
	return &Service{log: log, cashflow: cashflow, now: now}
}

// Predict runs the full pipeline for one request. It always returns a
// well-formed result: computation failures populate the Error field
// instead of propagating.
func (s *Service) Predict(req Request) (result models.PredictionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Prediction pipeline panicked", logging.F("panic", r))
			result = models.ErrorResult(fmt.Sprintf("internal error: %v", r))
		}
	}()

	now := s.now()

	deadline, err := dateutils.ParseISODate(req.GoalDeadline)
	if err != nil {
		s.log.WithError(err).Error("Invalid goal deadline")
		return models.ErrorResult(err.Error())
	}

	goal := models.GoalSpec{
		Target:    decimal.NewFromFloat(req.GoalTarget),
		Current:   decimal.NewFromFloat(req.GoalCurrent),
		Deadline:  deadline,
		CreatedAt: req.GoalCreatedAt,
	}

	// The two estimators are independent; each degrades to a zero signal
	// on its own failures.
	specific := velocity.Estimate(goal, now, s.log)
	global := s.cashflow.Estimate(req.History, now)
	effective := fusion.Resolve(specific, global)

	s.log.Debug("Velocity signals resolved",
		logging.F(logging.FieldSource, string(effective.Source)),
		logging.F(logging.FieldRate, effective.Rate.String()))

	remaining := goal.Remaining()
	proj := projection.Project(remaining, effective.Rate, now, deadline)
	rec := projection.Advise(remaining, effective.Rate, proj.OnTrack, now, deadline)

	predicted := models.CompletionNever
	if !proj.Unreachable {
		predicted = dateutils.ToISODate(proj.CompletionDate)
	}

	return models.PredictionResult{
		PredictedCompletionDate: predicted,
		DailySavingsEstimate:    models.Round2(effective.Rate),
		RequiredDailySavings:    models.Round2(rec.RequiredDaily),
		OnTrack:                 proj.OnTrack,
		SuggestedDailyCut:       models.Round2(rec.SuggestedCut),
	}
}
