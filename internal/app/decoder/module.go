package decoder

import (
	"go.uber.org/fx"

	"bootsplash/internal/config"
)

// Module provides the fx dependency injection options for the decoder package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) Decoder {
		return NewDecoder(cfg.Decoder.Format)
	}),
)
