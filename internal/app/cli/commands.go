package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type      CommandType
	Archives  []string
	Verbosity string
	NoInput   bool
	Quiet     bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidArguments, err)
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if result.Verbosity != "" && !config.IsVerbosityName(result.Verbosity) {
		return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidVerbosity, result.Verbosity)
	}

	return result, nil
}

// Apply overrides the configuration with the parsed flags
func (o *Options) Apply(cfg *config.Config) {
	if len(o.Archives) > 0 {
		cfg.Archive.Paths = o.Archives
	}

	if o.Verbosity != "" {
		cfg.Verbosity = o.Verbosity
	}

	if o.NoInput {
		cfg.Input.Enabled = false
	}
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: appDesc,
		Long: `Bootsplash plays the boot animation on the display while the system starts
and can switch to a diagnostic console fed from the platform log devices.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().StringSliceVarP(&result.Archives, "archive", "a", nil, "Animation archive paths, tried in order")
	cmd.Flags().StringVar(&result.Verbosity, "verbosity", "", "Initial verbosity (silent, bootloop, fatal, error, warn, info, debug, verbose)")
	cmd.Flags().BoolVar(&result.NoInput, "no-input", false, "Ignore the volume keys")
	cmd.Flags().BoolVarP(&result.Quiet, "quiet", "q", false, "Discard application logs")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
