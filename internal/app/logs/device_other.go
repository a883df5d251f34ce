//go:build !linux

package logs

import (
	"fmt"

	"bootsplash/internal/app/errors"
)

func openDevice(_ int, path string) (Device, error) {
	return nil, fmt.Errorf("%w: log device %s", errors.ErrUnsupportedHost, path)
}
