package logs

import (
	"fmt"
	"strings"
)

// Priority is a log entry's priority ordinal
type Priority uint8

// Priority values as written by the platform logger
const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

// Entry is one decoded log record
type Entry struct {
	Device   int
	Sec      int32
	Nsec     int32
	PID      int32
	TID      int32
	Priority Priority
	Tag      string
	Message  string
}

// Before reports whether e sorts before other by (sec, nsec)
func (e Entry) Before(other Entry) bool {
	if e.Sec != other.Sec {
		return e.Sec < other.Sec
	}

	return e.Nsec < other.Nsec
}

// String formats the entry the way the console shows it
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

// String returns the lowercase priority name
func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityFatal:
		return "fatal"
	case PrioritySilent:
		return "silent"
	case PriorityDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParsePriority converts a priority name into a Priority
func ParsePriority(name string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verbose":
		return PriorityVerbose, true
	case "debug":
		return PriorityDebug, true
	case "info":
		return PriorityInfo, true
	case "warn":
		return PriorityWarn, true
	case "error":
		return PriorityError, true
	case "fatal":
		return PriorityFatal, true
	case "silent":
		return PrioritySilent, true
	default:
		return PriorityUnknown, false
	}
}
