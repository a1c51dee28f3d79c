package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Commitcheck Configuration
# See 'commitcheck check -h' for flags that override these settings per run.

rule: conventional              # Rule defining a valid message: conventional | customize
allow_abort: false              # Treat an empty message (aborted commit) as valid
encoding: utf-8                 # Text encoding of commit message files

# Literal prefixes exempt from pattern and length checks.
# Covers messages git generates itself.
allowed_prefixes:
  - Merge
  - Revert
  - Pull request
  - fixup!
  - squash!
  - amend!

# Grammar for the 'customize' rule (only used when rule: customize).
# customize:
#   schema_pattern: "(feature|bugfix):(\\s.*)"
#   schema: "<type>: <body>"
#   example: "feature: add dark mode"
#   info: "We use a home-grown commit convention, see CONTRIBUTING.md."
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"rule":        "conventional",
		"allow_abort": false,
		"encoding":    "utf-8",
		// allowed_prefixes: prefixes of messages git writes on its own
		// (merges, reverts, autosquash markers). Exempt from validation
		// because the user never typed them.
		"allowed_prefixes": []string{
			"Merge",
			"Revert",
			"Pull request",
			"fixup!",
			"squash!",
			"amend!",
		},
	}
}
