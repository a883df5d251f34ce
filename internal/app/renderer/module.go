package renderer

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the renderer package
var Module = fx.Options(
	fx.Provide(NewTerminal),
)
