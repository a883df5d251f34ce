package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bootsplash/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Archive struct {
		Paths       []string `yaml:"paths" mapstructure:"paths"`
		Description string   `yaml:"description" mapstructure:"description"`
	} `yaml:"archive" mapstructure:"archive"`
	Display struct {
		Width  int `yaml:"width" mapstructure:"width"`
		Height int `yaml:"height" mapstructure:"height"`
	} `yaml:"display" mapstructure:"display"`
	Console struct {
		GlyphWidth  int `yaml:"glyph_width" mapstructure:"glyph_width"`
		GlyphHeight int `yaml:"glyph_height" mapstructure:"glyph_height"`
	} `yaml:"console" mapstructure:"console"`
	Logs struct {
		Devices    []string `yaml:"devices" mapstructure:"devices"`
		MaxPerPoll int      `yaml:"max_per_poll" mapstructure:"max_per_poll"`
	} `yaml:"logs" mapstructure:"logs"`
	Input struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		Dir     string `yaml:"dir" mapstructure:"dir"`
		Pattern string `yaml:"pattern" mapstructure:"pattern"`
	} `yaml:"input" mapstructure:"input"`
	Text struct {
		FPS int `yaml:"fps" mapstructure:"fps"`
	} `yaml:"text" mapstructure:"text"`
	Decoder struct {
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"decoder" mapstructure:"decoder"`
	Exit struct {
		File    string `yaml:"file" mapstructure:"file"`
		Signals bool   `yaml:"signals" mapstructure:"signals"`
	} `yaml:"exit" mapstructure:"exit"`
	Verbosity string `yaml:"verbosity" mapstructure:"verbosity"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Archive.Paths = []string{DataArchivePath, SystemArchivePath}
	cfg.Archive.Description = DescriptionFile

	cfg.Console.GlyphWidth = GlyphWidth
	cfg.Console.GlyphHeight = GlyphHeight

	cfg.Logs.Devices = []string{MainLogDevice, SystemLogDevice}
	cfg.Logs.MaxPerPoll = MaxEntriesPerPoll

	cfg.Input.Enabled = true
	cfg.Input.Dir = InputDir
	cfg.Input.Pattern = InputPattern

	cfg.Text.FPS = TextFPS
	cfg.Decoder.Format = PixelFormatRGBA8888

	cfg.Exit.File = ExitFile
	cfg.Exit.Signals = true

	cfg.Verbosity = DefaultVerbosity

	return cfg
}

// Load loads the configuration from file and environment, falling back to defaults
func Load() (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	data, err := os.ReadFile(configPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// configPath returns the config file location, honoring the environment override
func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	return ConfigFile
}

// setDefaults registers every key so environment overrides apply during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("archive.paths", cfg.Archive.Paths)
	v.SetDefault("archive.description", cfg.Archive.Description)
	v.SetDefault("display.width", cfg.Display.Width)
	v.SetDefault("display.height", cfg.Display.Height)
	v.SetDefault("console.glyph_width", cfg.Console.GlyphWidth)
	v.SetDefault("console.glyph_height", cfg.Console.GlyphHeight)
	v.SetDefault("logs.devices", cfg.Logs.Devices)
	v.SetDefault("logs.max_per_poll", cfg.Logs.MaxPerPoll)
	v.SetDefault("input.enabled", cfg.Input.Enabled)
	v.SetDefault("input.dir", cfg.Input.Dir)
	v.SetDefault("input.pattern", cfg.Input.Pattern)
	v.SetDefault("text.fps", cfg.Text.FPS)
	v.SetDefault("decoder.format", cfg.Decoder.Format)
	v.SetDefault("exit.file", cfg.Exit.File)
	v.SetDefault("exit.signals", cfg.Exit.Signals)
	v.SetDefault("verbosity", cfg.Verbosity)
}

// normalize trims and lowercases enumerated string settings
func (c *Config) normalize() {
	c.Verbosity = strings.ToLower(strings.TrimSpace(c.Verbosity))
	c.Decoder.Format = strings.ToLower(strings.TrimSpace(c.Decoder.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateArchive(); err != nil {
		return err
	}

	if err := c.validateConsole(); err != nil {
		return err
	}

	if err := c.validateLogs(); err != nil {
		return err
	}

	if err := c.validatePlayback(); err != nil {
		return err
	}

	return nil
}

// validateArchive validates archive settings
func (c *Config) validateArchive() error {
	if len(c.Archive.Paths) == 0 {
		return errors.ErrInvalidArchivePaths
	}

	if c.Archive.Description == "" {
		c.Archive.Description = DescriptionFile
	}

	return nil
}

// validateConsole validates glyph cell settings
func (c *Config) validateConsole() error {
	if c.Console.GlyphWidth <= 0 || c.Console.GlyphHeight <= 0 {
		return errors.ErrInvalidGlyphSize
	}

	return nil
}

// validateLogs validates log device settings
func (c *Config) validateLogs() error {
	if c.Logs.MaxPerPoll <= 0 {
		return errors.ErrInvalidMaxPerPoll
	}

	return nil
}

// validatePlayback validates text pacing, pixel format and verbosity
func (c *Config) validatePlayback() error {
	if c.Text.FPS <= 0 {
		return errors.ErrInvalidTextFPS
	}

	switch c.Decoder.Format {
	case PixelFormatRGBA8888, PixelFormatRGB565:
	default:
		return fmt.Errorf("%w: '%s' (must be '%s' or '%s')", errors.ErrInvalidPixelFormat, c.Decoder.Format, PixelFormatRGBA8888, PixelFormatRGB565)
	}

	if !IsVerbosityName(c.Verbosity) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidVerbosity, c.Verbosity)
	}

	return nil
}

// IsVerbosityName reports whether name is an accepted verbosity setting
func IsVerbosityName(name string) bool {
	switch strings.ToLower(name) {
	case "silent", "bootloop", "fatal", "error", "warn", "info", "debug", "verbose":
		return true
	default:
		return false
	}
}
