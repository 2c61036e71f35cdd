// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"fjacquet/goalcast/internal/config"
	"fjacquet/goalcast/internal/logging"
)

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "goalcast",
		Short: "Forecast savings-goal completion from transaction history.",
		Long: `goalcast estimates when a savings goal will be reached and whether it
is on pace for its deadline, fusing the goal's own contribution rate with
a seasonal forecast of overall net cash flow.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to goalcast!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Initialize()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)
