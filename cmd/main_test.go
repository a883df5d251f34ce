package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"

	"bootsplash/internal/app/cli"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "testdata/missing.yaml")

	cfg, err := loadConfig()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, config.TextFPS, cfg.Text.FPS)
}

func Test_RunApp_InformationalCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedCode int
	}{
		{name: "version", args: []string{"version"}, expectedCode: cli.ExitOK},
		{name: "help", args: []string{"--help"}, expectedCode: cli.ExitOK},
		{name: "unknown flag", args: []string{"--bogus"}, expectedCode: cli.ExitUsage},
		{name: "invalid verbosity", args: []string{"--verbosity", "loud"}, expectedCode: cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, runApp(tt.args))
		})
	}
}

func Test_LogOutput(t *testing.T) {
	assert.Equal(t, io.Discard, logOutput(&cli.Options{Quiet: true}))
	assert.Equal(t, os.Stderr, logOutput(&cli.Options{}))
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name  string
		level string
		quiet bool
	}{
		{name: "info level", level: logger.InfoLevel},
		{name: "debug level quiet", level: logger.DebugLevel, quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Input.Enabled = false
			cfg.Archive.Paths = []string{t.TempDir() + "/missing.zip"}

			application := createApp(cfg, &cli.Options{Quiet: tt.quiet})
			assert.NotNil(t, application)
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		expectedType interface{}
	}{
		{name: "Debug level returns console logger", level: logger.DebugLevel, expectedType: &fxevent.ConsoleLogger{}},
		{name: "Info level returns nop logger", level: logger.InfoLevel, expectedType: fxevent.NopLogger},
		{name: "Error level returns nop logger", level: logger.ErrorLevel, expectedType: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			result := createFxLogger(cfg)()

			assert.NotNil(t, result)
			assert.IsType(t, tt.expectedType, result)
		})
	}
}
