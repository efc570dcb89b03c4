package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/internal/prodlens/augment"
	"github.com/build-flow-labs/prodlens/internal/prodlens/config"
	"github.com/build-flow-labs/prodlens/internal/prodlens/llm"
	"github.com/build-flow-labs/prodlens/internal/prodlens/report"
)

// Version is set at build time via ldflags.
var Version = config.APIVersion

var (
	configPath string
	verbose    bool
	logFormat  string

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// RootCmd is the prodlens command.
var RootCmd = &cobra.Command{
	Use:   "prodlens",
	Short: "Production readiness analyzer for low-code apps",
	Long: `ProdLens scores a low-code application's production readiness from its
app configuration: name, description, UI blocks, dependencies and metadata.

Every report carries five category scores (scalability, security,
testability, maintainability, performance), a weighted overall score,
risks, insights, test suggestions, a scale analysis and recommendations.

When OPENAI_API_KEY (or ANTHROPIC_API_KEY with LLM_PROVIDER=claude) is set,
test suggestions and recommendations are generated by a language model.
Without a key, or when the model fails, built-in defaults are used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd.ErrOrStderr(), logFormat, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Settings file (YAML)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(analyzeCmd)
	RootCmd.AddCommand(sampleCmd)
	RootCmd.AddCommand(mcpCmd)
	RootCmd.AddCommand(versionCmd)
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (use text or json)", format)
	}
}

// loadSettings resolves settings from --config and the environment.
func loadSettings() (config.Settings, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return s, nil
}

// newAssembler wires the report pipeline for s. A missing API key disables
// augmentation rather than failing.
func newAssembler(s config.Settings) (*report.Assembler, error) {
	client, err := llm.New(s.LLMConfig())
	switch {
	case errors.Is(err, llm.ErrNoAPIKey):
		logger.Info("no language model API key configured, AI augmentation disabled",
			"provider", string(s.LLM.Provider),
		)
		client = nil
	case err != nil:
		return nil, fmt.Errorf("creating language model client: %w", err)
	default:
		logger.Debug("AI augmentation enabled", "model", client.Model())
	}

	adapter := augment.New(client, augment.Options{
		Temperature: s.LLM.Temperature,
		Timeout:     s.LLM.Timeout,
	}, logger)
	return report.NewAssembler(s.Weights, adapter, logger), nil
}
