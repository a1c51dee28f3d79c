package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show documentation for the configured rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rule, err := loadRule()
		if err != nil {
			return err
		}
		in, ok := rule.(rules.Informer)
		if !ok || in.Info() == "" {
			return errors.RuleCapabilityMissing(rule.Name(), "documentation")
		}
		fmt.Fprintln(cmd.OutOrStdout(), in.Info())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
