package input

//go:generate mockgen -source=device.go -destination=device_mock.go -package=input

import "bootsplash/internal/app/errors"

// Linux input event constants
const (
	EvKey          uint16 = 0x01
	KeyVolumeDown  uint16 = 114
	KeyVolumeUp    uint16 = 115
	KeyMax                = 0x2ff
	keyBitmapBytes        = KeyMax/8 + 1
	keyDown        int32  = 1
)

// RawEvent is one decoded input_event record
type RawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device is an opened input device
type Device interface {
	Path() string
	// HasKeys reports whether the device advertises every key code
	HasKeys(codes ...uint16) (bool, error)
	// ReadEvent returns the next pending event or errors.ErrWouldBlock
	ReadEvent() (RawEvent, error)
	Close() error
}

// Opener opens an input device node by path
type Opener func(path string) (Device, error)

// bitSet reports whether bit n is set in a little-endian capability bitmap
func bitSet(bitmap []byte, n uint16) bool {
	i := int(n / 8)
	if i >= len(bitmap) {
		return false
	}

	return bitmap[i]&(1<<(n%8)) != 0
}

var errWouldBlock = errors.ErrWouldBlock
