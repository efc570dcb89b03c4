package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/build-flow-labs/prodlens/internal/prodlens/score"
	"github.com/build-flow-labs/prodlens/schema"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func checkOutputFormat(format string) error {
	switch format {
	case outputHuman, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use human, json or yaml)", format)
	}
}

func render(w io.Writer, r *schema.AnalysisResult, format string) error {
	switch format {
	case outputJSON:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		printReport(w, r)
		return nil
	}
}

func levelColor(level string) *color.Color {
	switch level {
	case string(schema.LevelExcellent), string(schema.LevelLow):
		return color.New(color.FgGreen, color.Bold)
	case string(schema.LevelMedium):
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func printReport(out io.Writer, r *schema.AnalysisResult) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintf(out, "PRODUCTION READINESS: %s  ", r.AppName)
	levelColor(string(score.Level(r.OverallScore))).Fprintf(out, "%d/100\n", r.OverallScore)
	fmt.Fprintf(out, "Analyzed %s\n", r.Timestamp)
	fmt.Fprintln(out, strings.Repeat("─", 60))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range schema.Categories {
		c := r.Categories[name]
		fmt.Fprintf(w, "  %s\t%d/100\t%s\n", name, c.Score, levelColor(string(c.Level)).Sprint(c.Level))
		w.Flush()
		for _, issue := range c.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		for _, s := range c.Suggestions {
			fmt.Fprintf(out, "    > %s\n", s)
		}
	}

	if len(r.Risks) > 0 {
		fmt.Fprintln(out)
		cyan.Fprintln(out, "RISKS")
		for _, risk := range r.Risks {
			fmt.Fprintf(out, "  [%s] %s (%s)\n", levelColor(risk.Severity).Sprint(risk.Severity), risk.Title, risk.Category)
			fmt.Fprintf(out, "      %s\n", risk.Description)
			fmt.Fprintf(out, "      Impact: %s\n", risk.Impact)
			fmt.Fprintf(out, "      Mitigation: %s\n", color.GreenString(risk.Mitigation))
		}
	}

	fmt.Fprintln(out)
	cyan.Fprintln(out, "INSIGHTS")
	for _, in := range r.Insights {
		fmt.Fprintf(out, "  %s: %s\n", in.Title, in.Description)
	}

	fmt.Fprintln(out)
	cyan.Fprintln(out, "TEST SUGGESTIONS")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, t := range r.TestSuggestions {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", t.Type, t.Title, t.Priority, t.EstimatedDuration)
	}
	w.Flush()

	fmt.Fprintln(out)
	cyan.Fprintf(out, "%s (%s)\n", strings.ToUpper(r.ScaleAnalysis.Title), r.ScaleAnalysis.ReadinessLevel)
	for _, b := range r.ScaleAnalysis.BreakingPoints {
		fmt.Fprintf(out, "  ! %s\n", b)
	}
	for _, rec := range r.ScaleAnalysis.Recommendations {
		fmt.Fprintf(out, "  > %s\n", rec)
	}

	fmt.Fprintln(out)
	cyan.Fprintln(out, "RECOMMENDATIONS")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(out, "  %d. [%s] %s (%s, %s)\n", i+1,
			levelColor(rec.Priority).Sprint(rec.Priority), rec.Action, rec.Category, rec.EstimatedEffort)
		fmt.Fprintf(out, "     %s\n", rec.Rationale)
	}
}
