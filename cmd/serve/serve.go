// Package serve implements the HTTP server command.
package serve

import (
	"time"

	"github.com/spf13/cobra"

	"fjacquet/goalcast/cmd/root"
	"fjacquet/goalcast/internal/cashflow"
	"fjacquet/goalcast/internal/predictor"
	"fjacquet/goalcast/internal/server"
)

var addr string

// Cmd represents the serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the goal prediction HTTP server",
	Long: `Serve exposes POST /predict_goal_completion and GET /health. The
listen address comes from --addr, falling back to the configured
server.addr.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	cfg := root.Cfg

	listenAddr := cfg.Server.Addr
	if addr != "" {
		listenAddr = addr
	}

	estimator := cashflow.NewEstimator(root.Log)
	if cfg.Forecast.Cache.Enabled {
		ttl := time.Duration(cfg.Forecast.Cache.TTLMinutes) * time.Minute
		estimator = cashflow.NewCachedEstimator(root.Log, ttl)
	}

	svc := predictor.New(root.Log, estimator)
	srv := server.New(root.Log, svc)

	return srv.ListenAndServe(
		listenAddr,
		time.Duration(cfg.Server.ReadTimeoutSeconds)*time.Second,
		time.Duration(cfg.Server.WriteTimeoutSeconds)*time.Second,
	)
}
