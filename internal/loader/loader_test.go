package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/goalcast/internal/parsererror"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadHistoryCSV(t *testing.T) {
	path := writeFile(t, "history.csv", `date,amount,type,category
2026-01-10,1'200.50,Credit,Salary
2026-01-11,45.90,Debit,Groceries
2026-01-12,"CHF 30.00",Debit,Transport
`)

	items, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "2026-01-10", items[0].Date)
	assert.Equal(t, 1200.50, items[0].Amount)
	assert.Equal(t, "Credit", items[0].Type)
	assert.Equal(t, "Salary", items[0].Category)
	assert.Equal(t, 30.0, items[2].Amount)
}

func TestLoadHistoryCSVBadAmount(t *testing.T) {
	path := writeFile(t, "history.csv", `date,amount,type,category
2026-01-10,not-a-number,Credit,Salary
`)

	_, err := LoadHistory(path)
	var inputErr *parsererror.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestLoadHistoryJSON(t *testing.T) {
	path := writeFile(t, "history.json", `[
		{"date": "2026-01-10", "amount": 1200.5, "type": "Credit", "category": "Salary"},
		{"date": "2026-01-11", "amount": 45.9, "type": "Debit", "category": "Groceries"}
	]`)

	items, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 45.9, items[1].Amount)
}

func TestLoadHistoryUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "history.xml", "<history/>")

	_, err := LoadHistory(path)
	assert.Error(t, err)
}

func TestLoadHistoryMissingFile(t *testing.T) {
	_, err := LoadHistory(filepath.Join(t.TempDir(), "absent.csv"))
	var inputErr *parsererror.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestLoadGoal(t *testing.T) {
	path := writeFile(t, "goal.yaml", `target: 200000
current: 5000
deadline: "2027-09-26"
created_at: "2026-08-22T10:00:00Z"
`)

	goal, err := LoadGoal(path)
	require.NoError(t, err)

	assert.Equal(t, 200000.0, goal.Target)
	assert.Equal(t, 5000.0, goal.Current)
	assert.Equal(t, "2027-09-26", goal.Deadline)
	assert.Equal(t, "2026-08-22T10:00:00Z", goal.CreatedAt)
}

func TestLoadGoalMalformedYAML(t *testing.T) {
	path := writeFile(t, "goal.yaml", "target: [not: a: number")

	_, err := LoadGoal(path)
	assert.Error(t, err)
}
