package logs

//go:generate mockgen -source=multiplexer.go -destination=multiplexer_mock.go -package=logs

import (
	"fmt"

	"bootsplash/internal/app/errors"
)

// ErrWouldBlock is returned by Device.Read when no record is pending
var ErrWouldBlock = errors.ErrWouldBlock

// Multiplexer merges several log devices into one time-ordered feed
type Multiplexer interface {
	// Poll drains every device that has data and returns entries oldest first
	Poll() ([]Entry, error)
	Devices() int
	Close() error
}

type slot struct {
	entry  Entry
	filled bool
}

// multiplexer implements the Multiplexer interface
type multiplexer struct {
	devices    []Device
	slots      []slot
	maxPerPoll int
	err        error
}

// NewMultiplexer creates a Multiplexer over a fixed set of devices
func NewMultiplexer(devices []Device, maxPerPoll int) Multiplexer {
	return &multiplexer{
		devices:    devices,
		slots:      make([]slot, len(devices)),
		maxPerPoll: maxPerPoll,
	}
}

// Devices returns the number of merged devices
func (m *multiplexer) Devices() int {
	return len(m.devices)
}

// Poll runs a k-way merge across the devices until every slot is empty.
// Slots left filled by the maxPerPoll bound carry over to the next call.
// A hard read error is sticky: every later call returns it again.
func (m *multiplexer) Poll() ([]Entry, error) {
	if m.err != nil {
		return nil, m.err
	}

	drained := make([]bool, len(m.devices))

	var out []Entry

	for m.maxPerPoll <= 0 || len(out) < m.maxPerPoll {
		if err := m.refill(drained); err != nil {
			m.err = err
			return out, err
		}

		idx := m.oldest()
		if idx < 0 {
			break
		}

		out = append(out, m.slots[idx].entry)
		m.slots[idx] = slot{}
	}

	return out, nil
}

// refill issues one read for every empty slot whose device has not reported would-block in this poll
func (m *multiplexer) refill(drained []bool) error {
	for i, dev := range m.devices {
		if m.slots[i].filled || drained[i] {
			continue
		}

		entry, err := dev.Read()
		if errors.Is(err, errors.ErrWouldBlock) {
			drained[i] = true
			continue
		}

		if err != nil {
			return fmt.Errorf("log device %s: %w", dev.Path(), err)
		}

		entry.Device = dev.ID()
		m.slots[i] = slot{entry: entry, filled: true}
	}

	return nil
}

// oldest returns the filled slot with the smallest timestamp, lower index on ties, or -1
func (m *multiplexer) oldest() int {
	idx := -1

	for i := range m.slots {
		if !m.slots[i].filled {
			continue
		}

		if idx < 0 || m.slots[i].entry.Before(m.slots[idx].entry) {
			idx = i
		}
	}

	return idx
}

// Close closes every device and reports the first failure
func (m *multiplexer) Close() error {
	var first error

	for _, dev := range m.devices {
		if err := dev.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
