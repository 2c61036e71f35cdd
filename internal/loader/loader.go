// Package loader reads prediction inputs from files for the CLI:
// transaction history from CSV or JSON, and goal specifications from YAML.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"fjacquet/goalcast/internal/currencyutils"
	"fjacquet/goalcast/internal/models"
	"fjacquet/goalcast/internal/parsererror"
)

// historyRow maps one CSV line. Amounts come in as strings so bank-style
// formats ("1'234.56", "CHF 12.50") parse instead of failing.
type historyRow struct {
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Type     string `csv:"type"`
	Category string `csv:"category"`
}

// GoalFile is the YAML shape of a goal specification.
type GoalFile struct {
	Target    float64 `yaml:"target"`
	Current   float64 `yaml:"current"`
	Deadline  string  `yaml:"deadline"`
	CreatedAt string  `yaml:"created_at"`
}

// LoadHistory reads transaction history from a .csv or .json file.
func LoadHistory(path string) ([]models.TransactionItem, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadHistoryCSV(path)
	case ".json":
		return loadHistoryJSON(path)
	default:
		return nil, &parsererror.InputError{Path: path, Err: fmt.Errorf("unsupported history format %q", filepath.Ext(path))}
	}
}

func loadHistoryCSV(path string) ([]models.TransactionItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &parsererror.InputError{Path: path, Err: err}
	}
	defer file.Close()

	var rows []historyRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, &parsererror.InputError{Path: path, Err: err}
	}

	items := make([]models.TransactionItem, 0, len(rows))
	for _, row := range rows {
		amount, err := currencyutils.ParseAmount(row.Amount)
		if err != nil {
			return nil, &parsererror.InputError{Path: path, Err: err}
		}
		items = append(items, models.TransactionItem{
			Date:     row.Date,
			Amount:   amount.InexactFloat64(),
			Type:     row.Type,
			Category: row.Category,
		})
	}
	return items, nil
}

func loadHistoryJSON(path string) ([]models.TransactionItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &parsererror.InputError{Path: path, Err: err}
	}

	var items []models.TransactionItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &parsererror.InputError{Path: path, Err: err}
	}
	return items, nil
}

// LoadGoal reads a goal specification from a YAML file.
func LoadGoal(path string) (GoalFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GoalFile{}, &parsererror.InputError{Path: path, Err: err}
	}

	var goal GoalFile
	if err := yaml.Unmarshal(data, &goal); err != nil {
		return GoalFile{}, &parsererror.InputError{Path: path, Err: err}
	}
	return goal, nil
}
