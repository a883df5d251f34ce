package shutdown

import "go.uber.org/fx"

// Module provides the fx dependency injection options for the shutdown package
var Module = fx.Options(
	fx.Provide(New),
)
