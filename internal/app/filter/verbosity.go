package filter

import (
	"fmt"
	"strings"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/app/logs"
)

// Kind selects which rule set the filter applies
type Kind int

const (
	KindSilent Kind = iota
	KindBootLoopOnly
	KindThreshold
)

// Verbosity names accepted by ParseVerbosity besides priority names
const (
	SilentName   = "silent"
	BootLoopName = "bootloop"
)

// Verbosity is the operator-adjustable log cutoff
type Verbosity struct {
	Kind  Kind
	Level logs.Priority
}

// Silent shows no diagnostics
func Silent() Verbosity {
	return Verbosity{Kind: KindSilent}
}

// BootLoopOnly shows only the fixed boot diagnostics rule set
func BootLoopOnly() Verbosity {
	return Verbosity{Kind: KindBootLoopOnly}
}

// Threshold shows every entry at or above level
func Threshold(level logs.Priority) Verbosity {
	return Verbosity{Kind: KindThreshold, Level: level}
}

// ladder is the order the volume keys walk through, quietest first
var ladder = []Verbosity{
	Silent(),
	BootLoopOnly(),
	Threshold(logs.PriorityFatal),
	Threshold(logs.PriorityError),
	Threshold(logs.PriorityWarn),
	Threshold(logs.PriorityInfo),
	Threshold(logs.PriorityDebug),
	Threshold(logs.PriorityVerbose),
}

// Increase returns the next more verbose setting, clamped at the top
func (v Verbosity) Increase() Verbosity {
	i := v.step()
	if i < len(ladder)-1 {
		i++
	}

	return ladder[i]
}

// Decrease returns the next quieter setting, clamped at Silent
func (v Verbosity) Decrease() Verbosity {
	i := v.step()
	if i > 0 {
		i--
	}

	return ladder[i]
}

func (v Verbosity) step() int {
	for i, candidate := range ladder {
		if candidate == v {
			return i
		}
	}

	// Levels off the ladder sit between their neighbours
	if v.Kind == KindThreshold {
		for i := len(ladder) - 1; i >= 0; i-- {
			if ladder[i].Kind == KindThreshold && ladder[i].Level >= v.Level {
				return i
			}
		}

		return 2
	}

	return 0
}

// IsSilent reports whether no diagnostics are shown
func (v Verbosity) IsSilent() bool {
	return v.Kind == KindSilent
}

// String returns the name accepted by ParseVerbosity
func (v Verbosity) String() string {
	switch v.Kind {
	case KindSilent:
		return SilentName
	case KindBootLoopOnly:
		return BootLoopName
	default:
		return v.Level.String()
	}
}

// ParseVerbosity converts a config or flag value into a Verbosity
func ParseVerbosity(name string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SilentName, "":
		return Silent(), nil
	case BootLoopName:
		return BootLoopOnly(), nil
	}

	level, ok := logs.ParsePriority(name)
	if !ok || level == logs.PrioritySilent {
		return Verbosity{}, fmt.Errorf("%w: '%s'", errors.ErrInvalidVerbosity, name)
	}

	return Threshold(level), nil
}
