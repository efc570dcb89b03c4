package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/internal/prodlens/github"
)

var (
	analyzeName   string
	analyzeOutput string
	analyzeFormat string
	analyzeRepo   string
	analyzePath   string
	analyzeRef    string
	analyzeDeps   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Analyze an app configuration",
	Long: `Scores an app configuration and prints the readiness report.

The configuration is read from a JSON or YAML file (by extension), from
stdin with "-", or from a GitHub repository with --repo and --path.
GITHUB_TOKEN is used for private repositories.

Examples:
  prodlens analyze app.json
  prodlens analyze app.yaml -o json
  cat app.json | prodlens analyze - --name "Checkout"
  prodlens analyze --repo acme/shop --path prodlens.json --ref main
  prodlens analyze app.json --manifest package.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "App name to report under (default: config name)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "human", "Output format: human, json, yaml")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "Input format when reading stdin: json or yaml (default json)")
	analyzeCmd.Flags().StringVar(&analyzeRepo, "repo", "", "GitHub repository (owner/name)")
	analyzeCmd.Flags().StringVar(&analyzePath, "path", "prodlens.json", "Config path inside the repository")
	analyzeCmd.Flags().StringVar(&analyzeRef, "ref", "", "Git ref (default: repository default branch)")
	analyzeCmd.Flags().StringVar(&analyzeDeps, "manifest", "", "Merge dependencies from a package.json or requirements.txt")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(analyzeOutput); err != nil {
		return err
	}

	cfg, err := readConfig(cmd.Context(), cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if analyzeDeps != "" {
		data, err := os.ReadFile(analyzeDeps)
		if err != nil {
			return fmt.Errorf("reading manifest: %w", err)
		}
		deps, err := appconfig.ManifestDependencies(analyzeDeps, data)
		if err != nil {
			return err
		}
		cfg.MergeDependencies(deps)
		logger.Debug("merged manifest dependencies", "manifest", analyzeDeps, "count", len(deps))
	}

	name := analyzeName
	if name == "" {
		name = cfg.Name
	}
	return analyzeAndRender(cmd, cfg, name, analyzeOutput)
}

func readConfig(ctx context.Context, stdin io.Reader, args []string) (appconfig.AppConfig, error) {
	switch {
	case analyzeRepo != "" && len(args) > 0:
		return appconfig.AppConfig{}, fmt.Errorf("pass either a file or --repo, not both")

	case analyzeRepo != "":
		owner, repo, err := github.SplitRepo(analyzeRepo)
		if err != nil {
			return appconfig.AppConfig{}, err
		}
		src := github.NewSource(ctx, os.Getenv("GITHUB_TOKEN"))
		return src.Load(ctx, owner, repo, analyzePath, analyzeRef)

	case len(args) == 0:
		return appconfig.AppConfig{}, fmt.Errorf("an app config file, \"-\" or --repo is required")

	case args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return appconfig.AppConfig{}, fmt.Errorf("reading stdin: %w", err)
		}
		format := appconfig.FormatJSON
		if analyzeFormat != "" {
			format = appconfig.Format(analyzeFormat)
		}
		return appconfig.Parse(data, format)

	default:
		return appconfig.LoadFile(args[0])
	}
}

// analyzeAndRender runs the pipeline on cfg and writes the report to the
// command's stdout.
func analyzeAndRender(cmd *cobra.Command, cfg appconfig.AppConfig, name, output string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	asm, err := newAssembler(settings)
	if err != nil {
		return err
	}

	var s *spinner.Spinner
	if output == outputHuman && asm.AIAvailable() {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Asking the language model for test strategy and recommendations..."
		s.Start()
	}

	result, err := asm.Assemble(cmd.Context(), cfg, name)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return render(cmd.OutOrStdout(), result, output)
}
