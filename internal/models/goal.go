package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalSpec describes a savings goal as supplied by the caller. CreatedAt
// stays a raw string: it is optional, may carry a time-of-day and zone
// suffix, and a parse failure must degrade the goal-specific signal rather
// than fail the request.
type GoalSpec struct {
	Target    decimal.Decimal
	Current   decimal.Decimal
	Deadline  time.Time
	CreatedAt string
}

// Remaining returns target minus current. The value may be negative when
// the goal is already exceeded; callers treat that as "done" rather than
// an error.
func (g GoalSpec) Remaining() decimal.Decimal {
	return g.Target.Sub(g.Current)
}
