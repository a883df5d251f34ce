package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"bootsplash/internal/app"
	"bootsplash/internal/app/cli"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp contains the main application logic and returns the exit code
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun '%s help' for usage.\n", err, config.AppName)
		return cli.ExitUsage
	}

	if opts.Type != cli.CommandRun {
		return cli.Print(os.Stdout, opts)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	opts.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	application := createApp(cfg, opts)
	application.Run()

	return cli.ExitOK
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// logOutput returns where application logs go; stdout belongs to the renderer
func logOutput(opts *cli.Options) io.Writer {
	if opts.Quiet {
		return io.Discard
	}

	return os.Stderr
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.StopTimeout(config.ShutdownTimeout),
		fx.Supply(cfg, opts),
		fx.Provide(func() logger.Logger {
			return logger.New(cfg, logOutput(opts))
		}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
