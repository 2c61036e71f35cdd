package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/goalcast/internal/parsererror"
)

func TestParseFlowType(t *testing.T) {
	tests := []struct {
		input    string
		expected FlowType
		hasError bool
	}{
		{"Credit", FlowCredit, false},
		{"Debit", FlowDebit, false},
		{"credit", "", true},
		{"Transfer", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFlowType(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		name     string
		item     TransactionItem
		hasError bool
	}{
		{"Valid credit", TransactionItem{Date: "2026-01-15", Amount: 1200, Type: "Credit", Category: "Salary"}, false},
		{"Valid debit", TransactionItem{Date: "2026-01-16", Amount: 45.5, Type: "Debit", Category: "Groceries"}, false},
		{"Zero amount", TransactionItem{Date: "2026-01-16", Amount: 0, Type: "Debit"}, false},
		{"Malformed date", TransactionItem{Date: "15/01/2026", Amount: 10, Type: "Credit"}, true},
		{"Negative amount", TransactionItem{Date: "2026-01-15", Amount: -10, Type: "Credit"}, true},
		{"Unknown flow type", TransactionItem{Date: "2026-01-15", Amount: 10, Type: "credit"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record, err := ParseTransaction(tc.item)
			if tc.hasError {
				var parseErr *parsererror.ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.item.Category, record.Category)
			assert.True(t, decimal.NewFromFloat(tc.item.Amount).Equal(record.Amount))
		})
	}
}

func TestSignedAmount(t *testing.T) {
	credit := TransactionRecord{Amount: decimal.NewFromInt(100), Flow: FlowCredit}
	debit := TransactionRecord{Amount: decimal.NewFromInt(40), Flow: FlowDebit}

	assert.True(t, decimal.NewFromInt(100).Equal(credit.SignedAmount()))
	assert.True(t, decimal.NewFromInt(-40).Equal(debit.SignedAmount()))
}

func TestParseHistoryFailsFast(t *testing.T) {
	items := []TransactionItem{
		{Date: "2026-01-15", Amount: 100, Type: "Credit"},
		{Date: "bogus", Amount: 50, Type: "Debit"},
		{Date: "2026-01-17", Amount: 25, Type: "Debit"},
	}

	records, err := ParseHistory(items)
	assert.Error(t, err)
	assert.Nil(t, records)
}
