package filter

import (
	"strings"

	"bootsplash/internal/app/logs"
)

// Outcome is the decision taken for one entry
type Outcome int

const (
	OutcomeIgnore Outcome = iota
	OutcomePrint
	OutcomeReplace
	OutcomeCount
)

// bootLoopLimit is the number of runtime starts tolerated before the banner shows
const bootLoopLimit = 1

// Sink receives the lines a filter emits
type Sink interface {
	AppendLine(text string)
	ReplaceLastLine(text string)
}

// Filter classifies merged log entries for the diagnostic console
type Filter interface {
	Process(entry logs.Entry, sink Sink) Outcome
	Verbosity() Verbosity
	SetVerbosity(v Verbosity)
	BootLoops() int
}

// filter implements the Filter interface
type filter struct {
	rules     RuleSet
	verbosity Verbosity
	bootLoops int
}

// New creates a Filter with the given rule table and starting verbosity
func New(rules RuleSet, v Verbosity) Filter {
	return &filter{rules: rules, verbosity: v}
}

// Verbosity returns the active verbosity
func (f *filter) Verbosity() Verbosity {
	return f.verbosity
}

// SetVerbosity switches the rule set used for subsequent entries
func (f *filter) SetVerbosity(v Verbosity) {
	f.verbosity = v
}

// BootLoops returns how many runtime starts have been counted
func (f *filter) BootLoops() int {
	return f.bootLoops
}

// Process classifies the entry, applies it to the sink and, once a boot loop
// has been detected, appends the warning banner after the entry's own output
func (f *filter) Process(entry logs.Entry, sink Sink) Outcome {
	if f.verbosity.IsSilent() {
		return OutcomeIgnore
	}

	bannerDue := f.bootLoops > bootLoopLimit

	outcome := f.classify(entry)

	switch outcome {
	case OutcomePrint:
		sink.AppendLine(Format(entry))
	case OutcomeReplace:
		sink.ReplaceLastLine(Format(entry))
	case OutcomeCount:
		f.bootLoops++
	}

	if bannerDue {
		for _, line := range f.rules.Banner {
			sink.AppendLine(line)
		}
	}

	return outcome
}

func (f *filter) classify(entry logs.Entry) Outcome {
	switch f.verbosity.Kind {
	case KindBootLoopOnly:
		rule, ok := f.rules.match(entry, ActionPrint, ActionReplace, ActionCount)
		if !ok {
			return OutcomeIgnore
		}

		return outcomeOf(rule.Action)
	case KindThreshold:
		if _, ok := f.rules.match(entry, ActionCount); ok {
			return OutcomeCount
		}

		if entry.Priority < f.verbosity.Level {
			return OutcomeIgnore
		}

		if _, ok := f.rules.match(entry, ActionReplace); ok {
			return OutcomeReplace
		}

		return OutcomePrint
	default:
		return OutcomeIgnore
	}
}

func outcomeOf(a Action) Outcome {
	switch a {
	case ActionPrint:
		return OutcomePrint
	case ActionReplace:
		return OutcomeReplace
	case ActionCount:
		return OutcomeCount
	default:
		return OutcomeIgnore
	}
}

// Format renders an entry as a single "tag: message" console line
func Format(entry logs.Entry) string {
	msg := strings.TrimRight(entry.Message, "\r\n")
	entry.Message = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(msg)

	return entry.String()
}

// String returns the outcome name used in logs
func (o Outcome) String() string {
	switch o {
	case OutcomePrint:
		return "print"
	case OutcomeReplace:
		return "replace"
	case OutcomeCount:
		return "count"
	default:
		return "ignore"
	}
}
