// Package predict implements the one-shot prediction command.
package predict

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fjacquet/goalcast/cmd/root"
	"fjacquet/goalcast/internal/cashflow"
	"fjacquet/goalcast/internal/loader"
	"fjacquet/goalcast/internal/logging"
	"fjacquet/goalcast/internal/models"
	"fjacquet/goalcast/internal/predictor"
)

var (
	historyPath string
	goalPath    string
	target      float64
	current     float64
	deadline    string
	createdAt   string
)

// Cmd represents the predict command.
var Cmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict goal completion from a history file and goal spec",
	Long: `Predict reads transaction history from a CSV or JSON file, the goal
specification from flags or a YAML file, and prints the prediction result
as JSON.`,
	RunE: predictFunc,
}

func init() {
	Cmd.Flags().StringVar(&historyPath, "history", "", "Transaction history file (.csv or .json)")
	Cmd.Flags().StringVar(&goalPath, "goal", "", "Goal specification YAML file")
	Cmd.Flags().Float64Var(&target, "target", 0, "Goal target amount")
	Cmd.Flags().Float64Var(&current, "current", 0, "Amount saved so far")
	Cmd.Flags().StringVar(&deadline, "deadline", "", "Goal deadline (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&createdAt, "created-at", "", "Goal creation timestamp (ISO-8601, optional)")
}

func predictFunc(cmd *cobra.Command, args []string) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	root.Log.Info("Running goal prediction",
		logging.F(logging.FieldCount, len(req.History)))

	svc := predictor.New(root.Log, cashflow.NewEstimator(root.Log))
	result := svc.Predict(req)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func buildRequest() (predictor.Request, error) {
	req := predictor.Request{
		GoalTarget:    target,
		GoalCurrent:   current,
		GoalDeadline:  deadline,
		GoalCreatedAt: createdAt,
	}

	if goalPath != "" {
		goal, err := loader.LoadGoal(goalPath)
		if err != nil {
			return predictor.Request{}, err
		}
		req.GoalTarget = goal.Target
		req.GoalCurrent = goal.Current
		req.GoalDeadline = goal.Deadline
		req.GoalCreatedAt = goal.CreatedAt
	}

	if req.GoalDeadline == "" {
		return predictor.Request{}, fmt.Errorf("a goal deadline is required (--deadline or --goal)")
	}

	if historyPath != "" {
		history, err := loader.LoadHistory(historyPath)
		if err != nil {
			return predictor.Request{}, err
		}
		req.History = history
	} else {
		req.History = []models.TransactionItem{}
	}

	return req, nil
}
