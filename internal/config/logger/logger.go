package logger

//go:generate mockgen -source=logger.go -destination=logger_mock.go -package=logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"bootsplash/internal/config"
)

// Accepted logging.level and logging.format values
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"

	ConsoleFormat = "console"
	JSONFormat    = "json"

	TimeFormat = "15:04:05.000"
)

// Logger interface for application logging
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	WithComponent(name string) Logger
}

// AppLogger is the zerolog backed Logger
type AppLogger struct {
	log zerolog.Logger
}

// New creates a logger writing to out, or to stderr when out is nil.
// The renderer owns stdout, so logs never go there.
func New(cfg *config.Config, out io.Writer) Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if out == nil {
		out = os.Stderr
	}

	if cfg.Logging.Format != JSONFormat {
		out = newConsoleWriter(out)
	}

	return &AppLogger{
		log: zerolog.New(out).
			Level(parseLevel(cfg.Logging.Level)).
			With().
			Timestamp().
			Str("version", config.Version).
			Logger(),
	}
}

// Debug returns a debug level event
func (l *AppLogger) Debug() *zerolog.Event {
	return l.log.Debug()
}

// Info returns an info level event
func (l *AppLogger) Info() *zerolog.Event {
	return l.log.Info()
}

// Warn returns a warn level event
func (l *AppLogger) Warn() *zerolog.Event {
	return l.log.Warn()
}

// Error returns an error level event
func (l *AppLogger) Error() *zerolog.Event {
	return l.log.Error()
}

// WithComponent tags every event with a component name
func (l *AppLogger) WithComponent(name string) Logger {
	return &AppLogger{
		log: l.log.With().Str("component", name).Logger(),
	}
}

// newConsoleWriter prints "[COMPONENT]" before the message; colors are
// disabled unless out is a terminal, as boot consoles are often serial lines
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    !isTerminal(out),
		TimeFormat: TimeFormat,
		FormatFieldName: func(i interface{}) string {
			if s, ok := i.(string); ok && s == "component" {
				return ""
			}

			return fmt.Sprintf("%s=", i)
		},
		FormatPrepare: func(m map[string]interface{}) error {
			if component, ok := m["component"].(string); ok {
				m["component"] = fmt.Sprintf("[%s]", component)
			}

			return nil
		},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"component",
			zerolog.MessageFieldName,
		},
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// parseLevel maps a configured level name to zerolog, falling back to info
func parseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}
