//go:build linux

package logs

import (
	"fmt"

	"golang.org/x/sys/unix"

	"bootsplash/internal/app/errors"
)

// charDevice reads logger records from a character device opened non-blocking
type charDevice struct {
	id   int
	path string
	fd   int
	buf  []byte
}

func openDevice(id int, path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &charDevice{
		id:   id,
		path: path,
		fd:   fd,
		buf:  make([]byte, MaxRecordSize),
	}, nil
}

// ID returns the index the device was opened with
func (d *charDevice) ID() int {
	return d.id
}

// Path returns the device path
func (d *charDevice) Path() string {
	return d.path
}

// Read performs one non-blocking read of a single record
func (d *charDevice) Read() (Entry, error) {
	n, err := unix.Read(d.fd, d.buf)

	switch {
	case err == unix.EAGAIN || err == unix.EINTR:
		return Entry{}, errors.ErrWouldBlock
	case err != nil:
		return Entry{}, fmt.Errorf("read %s: %w", d.path, err)
	case n <= 0:
		return Entry{}, fmt.Errorf("read %s: %w", d.path, errors.ErrUnexpectedEOF)
	}

	entry, err := DecodeRecord(d.buf[:n])
	if err != nil {
		return Entry{}, fmt.Errorf("read %s: %w", d.path, err)
	}

	return entry, nil
}

// Close releases the file descriptor
func (d *charDevice) Close() error {
	if d.fd < 0 {
		return nil
	}

	err := unix.Close(d.fd)
	d.fd = -1

	return err
}
