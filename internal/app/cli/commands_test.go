package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name              string
		args              []string
		expectedType      CommandType
		expectedArchives  []string
		expectedVerbosity string
		expectedNoInput   bool
		expectedQuiet     bool
	}{
		{
			name:         "no args",
			args:         []string{},
			expectedType: CommandRun,
		},
		{
			name:             "archive flag",
			args:             []string{"--archive", "/tmp/a.zip"},
			expectedType:     CommandRun,
			expectedArchives: []string{"/tmp/a.zip"},
		},
		{
			name:             "archive list",
			args:             []string{"-a", "/tmp/a.zip,/tmp/b.zip"},
			expectedType:     CommandRun,
			expectedArchives: []string{"/tmp/a.zip", "/tmp/b.zip"},
		},
		{
			name:              "verbosity flag",
			args:              []string{"--verbosity=bootloop"},
			expectedType:      CommandRun,
			expectedVerbosity: "bootloop",
		},
		{
			name:            "no input and quiet",
			args:            []string{"--no-input", "-q"},
			expectedType:    CommandRun,
			expectedNoInput: true,
			expectedQuiet:   true,
		},
		{
			name:         "version flag",
			args:         []string{"--version"},
			expectedType: CommandVersion,
		},
		{
			name:         "version short flag",
			args:         []string{"-v"},
			expectedType: CommandVersion,
		},
		{
			name:         "version command",
			args:         []string{"version"},
			expectedType: CommandVersion,
		},
		{
			name:         "help flag",
			args:         []string{"--help"},
			expectedType: CommandHelp,
		},
		{
			name:         "help command",
			args:         []string{"help"},
			expectedType: CommandHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, result.Type)
			assert.Equal(t, tt.expectedArchives, result.Archives)
			assert.Equal(t, tt.expectedVerbosity, result.Verbosity)
			assert.Equal(t, tt.expectedNoInput, result.NoInput)
			assert.Equal(t, tt.expectedQuiet, result.Quiet)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "unexpected argument", args: []string{"play"}},
		{name: "version with argument", args: []string{"version", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			assert.ErrorIs(t, err, errors.ErrInvalidArguments)
			assert.Nil(t, result)
		})
	}
}

func Test_Parse_InvalidVerbosity(t *testing.T) {
	result, err := Parse([]string{"--verbosity", "loud"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidVerbosity)
	assert.Nil(t, result)
}

func Test_Options_Apply(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		validate func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "empty options keep config",
			opts: Options{},
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{config.DataArchivePath, config.SystemArchivePath}, cfg.Archive.Paths)
				assert.Equal(t, config.DefaultVerbosity, cfg.Verbosity)
				assert.True(t, cfg.Input.Enabled)
			},
		},
		{
			name: "overrides",
			opts: Options{Archives: []string{"/tmp/a.zip"}, Verbosity: "warn", NoInput: true},
			validate: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{"/tmp/a.zip"}, cfg.Archive.Paths)
				assert.Equal(t, "warn", cfg.Verbosity)
				assert.False(t, cfg.Input.Enabled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.opts.Apply(cfg)
			tt.validate(t, cfg)
		})
	}
}
