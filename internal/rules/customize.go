package rules

import (
	"regexp"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
)

func init() {
	Register("customize", NewCustomize)
}

// Customize is a rule whose grammar comes entirely from the customize
// section of the configuration. It demonstrates the registry's
// pluggability: the engine treats it exactly like the built-in rule.
type Customize struct {
	cfg config.CustomizeConfig
}

// NewCustomize builds the customize rule from configuration. Selecting the
// rule without a customize section is a configuration error.
func NewCustomize(cfg *config.Configuration) (Rule, error) {
	if cfg.Customize.IsZero() {
		return nil, errors.NewConfigError(
			"the customize rule requires a 'customize' section in the configuration",
			"Add a customize section with at least schema_pattern",
			"See 'commitcheck schema' output of the conventional rule for the expected shape",
		)
	}
	return &Customize{cfg: cfg.Customize}, nil
}

// Name implements Rule.
func (c *Customize) Name() string { return "customize" }

// SchemaPattern implements Rule. An empty schema_pattern means the rule only
// enforces the non-empty check.
func (c *Customize) SchemaPattern() string { return c.cfg.SchemaPattern }

// ValidateCommitMessage implements Rule with the canonical algorithm.
func (c *Customize) ValidateCommitMessage(message string, pattern *regexp.Regexp, allowAbort bool, allowedPrefixes []string, maxMessageLength int) Outcome {
	return Validate(message, pattern, allowAbort, allowedPrefixes, maxMessageLength)
}

// FormatFailureReport implements Rule.
func (c *Customize) FormatFailureReport(failures []Failure) string {
	return FormatReport(failures, "configured", c.cfg.SchemaPattern)
}

// Example implements Exampler when configured; callers check for "".
func (c *Customize) Example() string { return c.cfg.Example }

// Schema implements SchemaDescriber when configured; callers check for "".
func (c *Customize) Schema() string { return c.cfg.Schema }

// Info implements Informer when configured; callers check for "".
func (c *Customize) Info() string { return c.cfg.Info }
