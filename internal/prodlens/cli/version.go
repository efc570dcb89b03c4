package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/build-flow-labs/prodlens/schema"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prodlens version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "prodlens v%s (report schema %s)\n", Version, schema.Version)
	},
}
