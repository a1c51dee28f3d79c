package rules

import (
	"sort"

	"github.com/commitcheck/commitcheck/internal/config"
	"github.com/commitcheck/commitcheck/internal/errors"
)

// Factory builds a Rule from the loaded configuration. Rules that need no
// configuration ignore the argument.
type Factory func(cfg *config.Configuration) (Rule, error)

var registry = map[string]Factory{}

// Register adds a rule factory under a name. Later registrations replace
// earlier ones, so embedders can override the built-ins.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Resolve returns the rule selected by cfg.Rule, constructed against cfg.
// An unregistered name is a configuration error.
func Resolve(cfg *config.Configuration) (Rule, error) {
	factory, ok := registry[cfg.Rule]
	if !ok {
		return nil, errors.UnknownRule(cfg.Rule, Names())
	}
	return factory(cfg)
}

// Names returns the registered rule names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
