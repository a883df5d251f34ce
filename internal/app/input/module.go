package input

import (
	"go.uber.org/fx"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// Module provides the verbosity key watcher; discovery failures leave it inert
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log logger.Logger) (Watcher, error) {
		if !cfg.Input.Enabled {
			return NewInert(), nil
		}

		w, err := Discover(cfg.Input.Dir, cfg.Input.Pattern, OpenDevice, log)
		if errors.Is(err, errors.ErrInvalidInputPattern) {
			return nil, err
		}

		if err != nil {
			log.WithComponent("INPUT").Warn().Err(err).Msg("Verbosity keys unavailable")
		}

		return w, nil
	}),
)
