package app

import (
	"go.uber.org/fx"

	"bootsplash/internal/app/animation"
	"bootsplash/internal/app/cli"
	"bootsplash/internal/app/decoder"
	"bootsplash/internal/app/engine"
	"bootsplash/internal/app/filter"
	"bootsplash/internal/app/input"
	"bootsplash/internal/app/logs"
	"bootsplash/internal/app/monitor"
	"bootsplash/internal/app/renderer"
	"bootsplash/internal/app/shutdown"
)

var Module = fx.Options(
	animation.Module,
	decoder.Module,
	renderer.Module,
	logs.Module,
	filter.Module,
	input.Module,
	shutdown.Module,
	monitor.Module,
	engine.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
