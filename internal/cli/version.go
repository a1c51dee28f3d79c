package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "commitcheck %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
		if version.IsDevBuild() {
			fmt.Fprintln(cmd.OutOrStdout(), "development build; install a release for reproducible output")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
