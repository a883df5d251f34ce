package input

//go:generate mockgen -source=input.go -destination=input_mock.go -package=input

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config/logger"
)

// Event is a verbosity request from the hardware buttons
type Event int

const (
	EventNone Event = iota
	EventIncrease
	EventDecrease
)

// String returns the event name used in logs
func (e Event) String() string {
	switch e {
	case EventIncrease:
		return "increase"
	case EventDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// Watcher samples the volume keys once per frame
type Watcher interface {
	Poll() Event
	Active() bool
	Close() error
}

// watcher implements the Watcher interface; a nil device means inert
type watcher struct {
	device Device
	log    logger.Logger
}

// NewInert returns a watcher that never reports events
func NewInert() Watcher {
	return &watcher{}
}

// Discover enumerates dir for device names matching pattern and keeps the
// first one exposing both volume keys. Finding none yields an inert watcher
// together with ErrNoInputDevice.
func Discover(dir, pattern string, open Opener, log logger.Logger) (Watcher, error) {
	log = log.WithComponent("INPUT")

	g, err := glob.Compile(pattern)
	if err != nil {
		return NewInert(), fmt.Errorf("%w: '%s': %w", errors.ErrInvalidInputPattern, pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return NewInert(), fmt.Errorf("%w: %w", errors.ErrNoInputDevice, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !g.Match(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		dev, err := open(path)
		if err != nil {
			log.Debug().Err(err).Msgf("Skipping input device '%s'", path)
			continue
		}

		ok, err := dev.HasKeys(KeyVolumeUp, KeyVolumeDown)
		if err != nil || !ok {
			if err != nil {
				log.Debug().Err(err).Msgf("Skipping input device '%s'", path)
			}

			closeDevice(dev, log)

			continue
		}

		log.Info().Msgf("Using '%s' for verbosity keys", path)

		return &watcher{device: dev, log: log}, nil
	}

	return NewInert(), fmt.Errorf("%w in %s", errors.ErrNoInputDevice, dir)
}

// Active reports whether a device is attached
func (w *watcher) Active() bool {
	return w.device != nil
}

// Poll reads at most one event and maps volume key presses to verbosity requests.
// A read failure other than would-block detaches the device for good.
func (w *watcher) Poll() Event {
	if w.device == nil {
		return EventNone
	}

	ev, err := w.device.ReadEvent()
	if errors.Is(err, errWouldBlock) {
		return EventNone
	}

	if err != nil {
		w.log.Warn().Err(err).Msgf("Input device '%s' failed, verbosity keys disabled", w.device.Path())
		closeDevice(w.device, w.log)
		w.device = nil

		return EventNone
	}

	if ev.Type != EvKey || ev.Value != keyDown {
		return EventNone
	}

	switch ev.Code {
	case KeyVolumeUp:
		return EventIncrease
	case KeyVolumeDown:
		return EventDecrease
	default:
		return EventNone
	}
}

// Close releases the device
func (w *watcher) Close() error {
	if w.device == nil {
		return nil
	}

	err := w.device.Close()
	w.device = nil

	return err
}

func closeDevice(dev Device, log logger.Logger) {
	if err := dev.Close(); err != nil {
		log.Debug().Err(err).Msgf("Failed to close input device '%s'", dev.Path())
	}
}
