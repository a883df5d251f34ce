package logs

import (
	"go.uber.org/fx"

	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// Module provides the fx dependency injection options for the logs package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log logger.Logger) Opener {
		return NewOpener(cfg.Logs.MaxPerPoll, log)
	}),
)
