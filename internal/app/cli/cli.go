//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"bootsplash/internal/app/engine"
	"bootsplash/internal/app/shutdown"
	"bootsplash/internal/config/logger"
)

const appDesc = "boot animation player with a diagnostic log console"

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute(ctx context.Context) (int, error)
}

// cli runs the playback session for the parsed options
type cli struct {
	out    io.Writer
	opts   *Options
	engine engine.Engine
	exit   shutdown.Signal
	log    logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(opts *Options, engine engine.Engine, exit shutdown.Signal, log logger.Logger) CLI {
	return &cli{
		out:    os.Stdout,
		opts:   opts,
		engine: engine,
		exit:   exit,
		log:    log.WithComponent("CLI"),
	}
}

// Execute starts the exit watchers and plays until the session ends
func (c *cli) Execute(ctx context.Context) (int, error) {
	if c.opts.Type != CommandRun {
		return Print(c.out, c.opts), nil
	}

	if err := c.exit.Start(); err != nil {
		c.log.Error().Err(err).Msg("Failed to watch for exit requests")
		return ExitError, err
	}
	defer c.exit.Close()

	if err := c.engine.Run(ctx); err != nil {
		c.log.Error().Err(err).Msg("Playback failed")
		return ExitError, err
	}

	return ExitOK, nil
}

// Print writes help or version output for informational commands and returns the exit code
func Print(w io.Writer, opts *Options) int {
	switch opts.Type {
	case CommandHelp:
		fmt.Fprint(w, RenderHelp())
	case CommandVersion:
		fmt.Fprintln(w, RenderTitle())
	default:
		return ExitUsage
	}

	return ExitOK
}
