package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered validation rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPathFlag)
		if err != nil {
			return errors.Wrap(err, errors.Configuration)
		}
		for _, name := range rules.Names() {
			marker := " "
			if name == cfg.Rule {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
