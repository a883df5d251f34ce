package animation

import "go.uber.org/fx"

// Module provides the animation loader and the session descriptor
var Module = fx.Options(
	fx.Provide(
		NewLoader,
		func(l Loader) (*Descriptor, error) {
			return l.Load()
		},
	),
)
