package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitcheck/commitcheck/internal/errors"
	"github.com/commitcheck/commitcheck/internal/rules"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Show the commit message schema of the configured rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rule, err := loadRule()
		if err != nil {
			return err
		}
		sd, ok := rule.(rules.SchemaDescriber)
		if !ok || sd.Schema() == "" {
			return errors.RuleCapabilityMissing(rule.Name(), "a schema")
		}
		fmt.Fprintln(cmd.OutOrStdout(), sd.Schema())
		return nil
	},
}

var schemaPatternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Show the regular expression enforced by the configured rule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, rule, err := loadRule()
		if err != nil {
			return err
		}
		src := rule.SchemaPattern()
		if src == "" {
			return errors.RuleCapabilityMissing(rule.Name(), "a schema pattern")
		}
		fmt.Fprintln(cmd.OutOrStdout(), src)
		return nil
	},
}

func init() {
	schemaCmd.AddCommand(schemaPatternCmd)
	rootCmd.AddCommand(schemaCmd)
}
