package engine

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the engine package
var Module = fx.Options(
	fx.Provide(
		NewClock,
		NewEngine,
	),
)
