package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidArchivePaths = errors.New("at least one archive path is required")
	ErrInvalidGlyphSize    = errors.New("glyph width and height must be positive")
	ErrInvalidTextFPS      = errors.New("text fps must be positive")
	ErrInvalidMaxPerPoll   = errors.New("logs max_per_poll must be positive")
	ErrInvalidInputPattern = errors.New("invalid input device pattern")
	ErrInvalidPixelFormat  = errors.New("invalid decoder pixel format")
	ErrInvalidVerbosity    = errors.New("invalid verbosity")
	ErrInvalidFilterRule   = errors.New("invalid filter rule")

	ErrArchiveNotFound    = errors.New("animation archive not found")
	ErrDescriptionMissing = errors.New("animation description missing from archive")
	ErrMissingHeader      = errors.New("animation description has no size line")
	ErrEntryNotFound      = errors.New("archive entry not found")

	ErrWouldBlock      = errors.New("read would block")
	ErrUnexpectedEOF   = errors.New("unexpected end of log stream")
	ErrMalformedRecord = errors.New("malformed log record")
	ErrNoLogDevices    = errors.New("no log device could be opened")

	ErrNoInputDevice   = errors.New("no input device with volume keys")
	ErrUnsupportedHost = errors.New("operation not supported on this platform")

	ErrDecodeFailed  = errors.New("failed to decode image")
	ErrPresentFailed = errors.New("failed to present frame")

	ErrInvalidArguments = errors.New("invalid command line arguments")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
