package filter

import (
	"go.uber.org/fx"

	"bootsplash/internal/config"
)

// Module provides the fx dependency injection options for the filter package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) (Filter, error) {
		v, err := ParseVerbosity(cfg.Verbosity)
		if err != nil {
			return nil, err
		}

		rules, err := DefaultRules()
		if err != nil {
			return nil, err
		}

		return New(rules, v), nil
	}),
)
