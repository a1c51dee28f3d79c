package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/git"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default configuration to .commitcheck/config.yml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !git.IsGitRepository() {
			return errors.NewConfigError(
				"not a git repository",
				"Run 'commitcheck init' from inside the repository you want to configure",
			)
		}

		path := config.ProjectConfigPath()
		if _, err := os.Stat(path); err == nil {
			return errors.NewConfigError(
				fmt.Sprintf("%s already exists", path),
				"Edit the existing file, or remove it and re-run init",
			)
		}

		if err := os.MkdirAll(config.ProjectConfigDir(), 0o755); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "creating config directory")
		}
		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "writing config file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
