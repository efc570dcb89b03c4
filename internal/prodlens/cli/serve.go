package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/internal/prodlens/config"
	"github.com/build-flow-labs/prodlens/internal/prodlens/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis HTTP API",
	Long: `Starts the ProdLens HTTP API.

Endpoints:
  GET  /                      Service information
  GET  /api/health            Health and AI availability
  POST /api/analyze           Analyze {"appConfig": {...}, "appName": "..."}
  GET  /api/sample-analysis   Analyze the built-in sample app
  GET  /api/status/{id}       Analysis status lookup

The listener shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8000, or PRODLENS_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		settings.Addr = serveAddr
	}
	logger.Info("settings loaded", "settings", settings)

	asm, err := newAssembler(settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:           settings.Addr,
		AllowedOrigins: settings.AllowedOrigins,
		Version:        config.APIVersion,
	}, asm, logger)
	return srv.Start(ctx)
}
