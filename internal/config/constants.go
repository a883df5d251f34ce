package config

import "time"

// app constants
const (
	AppName = "bootsplash"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	ConfigFile    = "bootsplash.yaml"
	EnvFile       = ".env"
	EnvPrefix     = "BOOTSPLASH"
	EnvConfigPath = "BOOTSPLASH_CONFIG"

	Version = "0.3.0"
)

// archive constants
const (
	DataArchivePath   = "/data/local/bootanimation.zip"
	SystemArchivePath = "/system/media/bootanimation.zip"
	DescriptionFile   = "desc.txt"
)

// console constants
const (
	GlyphWidth  = 10
	GlyphHeight = 18
)

// log device constants
const (
	MainLogDevice   = "/dev/log/main"
	SystemLogDevice = "/dev/log/system"

	MaxEntriesPerPoll = 256
)

// input constants
const (
	InputDir     = "/dev/input"
	InputPattern = "event*"
)

// playback constants
const (
	DefaultVerbosity = "silent"

	TextFPS     = 12
	FallbackFPS = 12

	PixelFormatRGBA8888 = "rgba8888"
	PixelFormatRGB565   = "rgb565"
)

// shutdown constants
const (
	ExitFile = "/run/bootsplash/exit"

	ShutdownTimeout = 5 * time.Second
)
