package logs

//go:generate mockgen -source=device.go -destination=device_mock.go -package=logs

import (
	"fmt"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config/logger"
)

// Device is one non-blocking log source
type Device interface {
	ID() int
	Path() string
	// Read returns the next record or errors.ErrWouldBlock when nothing is pending
	Read() (Entry, error)
	Close() error
}

// Opener opens the configured log devices behind a multiplexer
type Opener interface {
	Open(paths []string) (Multiplexer, error)
}

// opener implements the Opener interface
type opener struct {
	maxPerPoll int
	open       func(id int, path string) (Device, error)
	log        logger.Logger
}

// NewOpener creates an Opener for the host's logger devices
func NewOpener(maxPerPoll int, log logger.Logger) Opener {
	return &opener{
		maxPerPoll: maxPerPoll,
		open:       openDevice,
		log:        log.WithComponent("LOGS"),
	}
}

// Open opens every path it can and skips the rest; opening none is an error
func (o *opener) Open(paths []string) (Multiplexer, error) {
	devices := make([]Device, 0, len(paths))

	for _, path := range paths {
		dev, err := o.open(len(devices), path)
		if err != nil {
			o.log.Warn().Err(err).Msgf("Skipping log device '%s'", path)
			continue
		}

		o.log.Debug().Msgf("Opened log device '%s'", path)

		devices = append(devices, dev)
	}

	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: tried %d path(s)", errors.ErrNoLogDevices, len(paths))
	}

	return NewMultiplexer(devices, o.maxPerPoll), nil
}
