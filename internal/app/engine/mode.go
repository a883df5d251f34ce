package engine

import (
	"context"

	"github.com/looplab/fsm"

	"bootsplash/internal/app/filter"
	"bootsplash/internal/config/logger"
)

// DisplayMode is what the screen shows for a verbosity
type DisplayMode int

const (
	ModeAnimation DisplayMode = iota
	ModeAnnotatedAnimation
	ModeVerboseText
)

// FSM states
const (
	StateAnimation = "animation"
	StateVerbose   = "verbose"
	StateStopped   = "stopped"
)

// FSM events
const (
	EventAnimate = "animate"
	EventVerbose = "verbose"
	EventStop    = "stop"
)

// ModeFor maps a verbosity to its display mode
func ModeFor(v filter.Verbosity) DisplayMode {
	switch v.Kind {
	case filter.KindBootLoopOnly:
		return ModeAnnotatedAnimation
	case filter.KindThreshold:
		return ModeVerboseText
	default:
		return ModeAnimation
	}
}

// String returns the mode name
func (m DisplayMode) String() string {
	switch m {
	case ModeAnnotatedAnimation:
		return "annotated"
	case ModeVerboseText:
		return "text"
	default:
		return "animation"
	}
}

// stateFor returns the loop state a verbosity runs in
func stateFor(v filter.Verbosity) string {
	if v.IsSilent() {
		return StateAnimation
	}

	return StateVerbose
}

// eventFor returns the event that enters state
func eventFor(state string) string {
	switch state {
	case StateAnimation:
		return EventAnimate
	case StateVerbose:
		return EventVerbose
	default:
		return EventStop
	}
}

// newModeFSM creates the playback state machine
func newModeFSM(initial string, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: EventAnimate, Src: []string{StateVerbose}, Dst: StateAnimation},
			{Name: EventVerbose, Src: []string{StateAnimation}, Dst: StateVerbose},
			{Name: EventStop, Src: []string{StateAnimation, StateVerbose}, Dst: StateStopped},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("STATE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}
