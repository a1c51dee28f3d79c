package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Show an example commit message for the configured rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rule, err := loadRule()
		if err != nil {
			return err
		}
		ex, ok := rule.(rules.Exampler)
		if !ok || ex.Example() == "" {
			return errors.RuleCapabilityMissing(rule.Name(), "an example")
		}
		fmt.Fprintln(cmd.OutOrStdout(), ex.Example())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
