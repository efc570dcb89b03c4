package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/appconfig"
)

var sampleOutput string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Analyze the built-in sample app",
	Long: `Runs the analysis on the built-in "E-Commerce Dashboard" sample: a React
dashboard with five components, six dependencies and 5000 expected users.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(sampleOutput); err != nil {
			return err
		}
		return analyzeAndRender(cmd, appconfig.Sample(time.Now()), appconfig.SampleAppName, sampleOutput)
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "human", "Output format: human, json, yaml")
}
