package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gofault/internal/config"
	"github.com/alexiusacademia/gofault/internal/server"
	"github.com/alexiusacademia/gofault/internal/version"
	"github.com/spf13/cobra"
)

var (
	serveConfig  string
	serveEnvFile string
	serveDebug   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Start an HTTP API for fault calculations.

Endpoints:
  POST /api/v1/faults           compute one fault type
  POST /api/v1/faults/compare   compute every applicable fault type
  GET  /api/v1/faults/sweep     sweep one impedance
  GET  /healthz                 liveness check

Settings are read from the optional YAML file given by --config, then
overridden by GOFAULT_ADDR, GOFAULT_RATE and GOFAULT_BURST (a .env file
is loaded if present).

Examples:
  gofault serve
  gofault serve --config gofault.yaml
  curl -d '{"type":"lg","voltage_kv":220,"z1":0.05,"z2":0.05,"z0":0.15}' localhost:8080/api/v1/faults`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", ".env", "Path to .env file with overrides")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if serveDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(serveConfig, serveEnvFile)
	if err != nil {
		return err
	}

	logger.Info("gofault starting",
		"version", version.Version,
		"addr", cfg.Server.Addr,
		"rate_per_second", cfg.Server.RatePerSecond,
		"burst", cfg.Server.Burst,
	)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return server.Run(ctx, cfg.Server, logger)
}
