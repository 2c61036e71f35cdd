// Package timeseries implements a small additive forecasting model for
// daily series: a linear trend plus optional weekly and yearly seasonality
// expressed as Fourier harmonics. The seasonal coefficients are fitted with
// a ridge penalty so the model stays well-posed on short histories, while
// the trend is left unpenalized and reproduces linear series exactly.
package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	weeklyPeriod = 7.0
	yearlyPeriod = 365.25
)

// ErrTooFewPoints is returned when the series cannot support a fit.
var ErrTooFewPoints = errors.New("timeseries: need at least two distinct dates to fit")

// Point is one observation of the series.
type Point struct {
	Date  time.Time
	Value float64
}

// Config controls the shape of the fitted model.
type Config struct {
	WeeklySeasonality bool
	YearlySeasonality bool
	WeeklyOrder       int     // Fourier order of the weekly term
	YearlyOrder       int     // Fourier order of the yearly term
	Ridge             float64 // L2 penalty on seasonal coefficients
}

// DefaultConfig mirrors the settings used for cash-flow forecasting:
// weekly seasonality on, yearly off.
func DefaultConfig() Config {
	return Config{
		WeeklySeasonality: true,
		YearlySeasonality: false,
		WeeklyOrder:       3,
		YearlyOrder:       5,
		Ridge:             1.0,
	}
}

// Model is a fitted forecasting model. A Model is immutable after Fit and
// safe for concurrent use.
type Model struct {
	cfg    Config
	origin time.Time
	coeffs []float64
}

// Fit estimates the model coefficients from the given series. The series
// does not need to be ordered and may have gaps; time is measured in
// fractional days since the earliest observation.
func Fit(points []Point, cfg Config) (*Model, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	if cfg.Ridge <= 0 {
		cfg.Ridge = 1.0
	}

	origin := points[0].Date
	distinct := map[time.Time]struct{}{}
	for _, p := range points {
		if p.Date.Before(origin) {
			origin = p.Date
		}
		distinct[p.Date] = struct{}{}
	}
	if len(distinct) < 2 {
		return nil, ErrTooFewPoints
	}

	m := &Model{cfg: cfg, origin: origin}

	n := len(points)
	p := m.featureCount()
	x := mat.NewDense(n, p, nil)
	y := mat.NewVecDense(n, nil)
	for i, pt := range points {
		x.SetRow(i, m.features(m.elapsedDays(pt.Date)))
		y.SetVec(i, pt.Value)
	}

	// Normal equations with a ridge term on the seasonal block only:
	// (XᵀX + λD)β = Xᵀy, D = diag(0, 0, 1, ..., 1).
	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	a := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			a.SetSym(i, j, xtx.At(i, j))
		}
	}
	for j := trendTerms; j < p; j++ {
		a.SetSym(j, j, a.At(j, j)+cfg.Ridge)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, errors.New("timeseries: normal equations not positive definite")
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return nil, err
	}

	m.coeffs = make([]float64, p)
	copy(m.coeffs, beta.RawVector().Data)
	return m, nil
}

// Predict evaluates the fitted model at the given dates.
func (m *Model) Predict(dates []time.Time) []float64 {
	out := make([]float64, len(dates))
	for i, d := range dates {
		out[i] = m.at(m.elapsedDays(d))
	}
	return out
}

// trendTerms is the number of unpenalized columns (intercept and slope).
const trendTerms = 2

func (m *Model) featureCount() int {
	p := trendTerms
	if m.cfg.WeeklySeasonality {
		p += 2 * m.cfg.WeeklyOrder
	}
	if m.cfg.YearlySeasonality {
		p += 2 * m.cfg.YearlyOrder
	}
	return p
}

// features builds the regression row for a point t days after the origin.
func (m *Model) features(t float64) []float64 {
	row := make([]float64, 0, m.featureCount())
	row = append(row, 1, t)
	if m.cfg.WeeklySeasonality {
		row = appendFourier(row, t, weeklyPeriod, m.cfg.WeeklyOrder)
	}
	if m.cfg.YearlySeasonality {
		row = appendFourier(row, t, yearlyPeriod, m.cfg.YearlyOrder)
	}
	return row
}

func appendFourier(row []float64, t, period float64, order int) []float64 {
	for k := 1; k <= order; k++ {
		angle := 2 * math.Pi * float64(k) * t / period
		row = append(row, math.Sin(angle), math.Cos(angle))
	}
	return row
}

func (m *Model) at(t float64) float64 {
	var sum float64
	for i, f := range m.features(t) {
		sum += m.coeffs[i] * f
	}
	return sum
}

func (m *Model) elapsedDays(d time.Time) float64 {
	return d.Sub(m.origin).Hours() / 24
}
