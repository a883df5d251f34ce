//go:build linux

package input

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// evdevDevice is a /dev/input/event* node opened non-blocking
type evdevDevice struct {
	path string
	fd   int
	buf  []byte
}

// eventSize is sizeof(struct input_event): a timeval followed by type, code and value
var eventSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

// OpenDevice opens an evdev node for non-blocking reads
func OpenDevice(path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &evdevDevice{path: path, fd: fd, buf: make([]byte, eventSize)}, nil
}

// Path returns the device node path
func (d *evdevDevice) Path() string {
	return d.path
}

// HasKeys queries EVIOCGBIT(EV_KEY) and checks every code
func (d *evdevDevice) HasKeys(codes ...uint16) (bool, error) {
	bitmap := make([]byte, keyBitmapBytes)

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), eviocgbit(EvKey, len(bitmap)), uintptr(unsafe.Pointer(&bitmap[0])))
	if errno != 0 {
		return false, fmt.Errorf("query keys of %s: %w", d.path, errno)
	}

	for _, code := range codes {
		if !bitSet(bitmap, code) {
			return false, nil
		}
	}

	return true, nil
}

// ReadEvent reads at most one input_event without blocking
func (d *evdevDevice) ReadEvent() (RawEvent, error) {
	n, err := unix.Read(d.fd, d.buf)

	switch {
	case err == unix.EAGAIN || err == unix.EINTR:
		return RawEvent{}, errWouldBlock
	case err != nil:
		return RawEvent{}, fmt.Errorf("read %s: %w", d.path, err)
	case n != eventSize:
		return RawEvent{}, fmt.Errorf("read %s: short event (%d bytes)", d.path, n)
	}

	return decodeEvent(d.buf), nil
}

// Close releases the file descriptor
func (d *evdevDevice) Close() error {
	if d.fd < 0 {
		return nil
	}

	err := unix.Close(d.fd)
	d.fd = -1

	return err
}

// decodeEvent reads type, code and value following the timeval
func decodeEvent(buf []byte) RawEvent {
	off := len(buf) - 8

	return RawEvent{
		Type:  binary.NativeEndian.Uint16(buf[off : off+2]),
		Code:  binary.NativeEndian.Uint16(buf[off+2 : off+4]),
		Value: int32(binary.NativeEndian.Uint32(buf[off+4 : off+8])),
	}
}

// eviocgbit builds the EVIOCGBIT(ev, len) ioctl request number
func eviocgbit(ev uint16, length int) uintptr {
	const (
		iocRead   = 2
		dirShift  = 30
		sizeShift = 16
		typeShift = 8
	)

	return uintptr(uint32(iocRead)<<dirShift | uint32(length)<<sizeShift | uint32('E')<<typeShift | uint32(0x20+ev))
}
