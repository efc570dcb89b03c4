package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/internal/prodlens/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the analysis as MCP tools over stdio",
	Long: `Starts a Model Context Protocol server on stdin/stdout exposing:

  analyze_app       Score an app configuration (JSON or YAML)
  sample_analysis   Score the built-in sample app

Logs go to stderr so they do not interfere with the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		asm, err := newAssembler(settings)
		if err != nil {
			return err
		}

		s := mcptools.New(asm, Version, logger)
		logger.Info("mcp server starting on stdio", "ai_available", asm.AIAvailable())
		return server.ServeStdio(s)
	},
}
