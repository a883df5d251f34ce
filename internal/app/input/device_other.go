//go:build !linux

package input

import (
	"fmt"

	"bootsplash/internal/app/errors"
)

// OpenDevice is unavailable off Linux
func OpenDevice(path string) (Device, error) {
	return nil, fmt.Errorf("%w: input device %s", errors.ErrUnsupportedHost, path)
}
