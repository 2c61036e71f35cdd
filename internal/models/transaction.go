// Package models defines the data types shared across the prediction
// pipeline: transaction history, goal specifications, velocity signals and
// the prediction result returned to callers.
package models

import (
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/goalcast/internal/dateutils"
	"fjacquet/goalcast/internal/parsererror"
)

// FlowType indicates the direction of a transaction.
type FlowType string

const (
	FlowCredit FlowType = "Credit"
	FlowDebit  FlowType = "Debit"
)

// ParseFlowType validates a flow type string against the known enum values.
func ParseFlowType(s string) (FlowType, error) {
	switch FlowType(s) {
	case FlowCredit:
		return FlowCredit, nil
	case FlowDebit:
		return FlowDebit, nil
	default:
		return "", &parsererror.ParseError{Field: "type", Value: s, Reason: "must be Credit or Debit"}
	}
}

// TransactionRecord is a single, already-categorized transaction.
// Records are immutable inputs owned by the caller; the core never
// mutates them.
type TransactionRecord struct {
	Date     time.Time
	Amount   decimal.Decimal
	Flow     FlowType
	Category string
}

// SignedAmount returns the amount with Credits positive and Debits negative.
func (t TransactionRecord) SignedAmount() decimal.Decimal {
	if t.Flow == FlowDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionItem is the wire-level shape of a history record as received
// over HTTP or loaded from a file, before validation.
type TransactionItem struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
}

// ParseTransaction validates a wire-level item into a TransactionRecord.
// Dates must be YYYY-MM-DD, amounts non-negative, and the flow type one of
// the enum values. Parsing fails fast; coercion of malformed input is not
// attempted.
func ParseTransaction(item TransactionItem) (TransactionRecord, error) {
	date, err := dateutils.ParseISODate(item.Date)
	if err != nil {
		return TransactionRecord{}, &parsererror.ParseError{Field: "date", Value: item.Date, Err: err}
	}

	amount := decimal.NewFromFloat(item.Amount)
	if amount.IsNegative() {
		return TransactionRecord{}, &parsererror.ParseError{Field: "amount", Value: amount.String(), Reason: "must be non-negative"}
	}

	flow, err := ParseFlowType(item.Type)
	if err != nil {
		return TransactionRecord{}, err
	}

	return TransactionRecord{
		Date:     date,
		Amount:   amount,
		Flow:     flow,
		Category: item.Category,
	}, nil
}

// ParseHistory validates a full wire-level history. The first malformed
// record aborts the parse; callers degrade to a zero global signal rather
// than guessing at partial data.
func ParseHistory(items []TransactionItem) ([]TransactionRecord, error) {
	records := make([]TransactionRecord, 0, len(items))
	for _, item := range items {
		record, err := ParseTransaction(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
