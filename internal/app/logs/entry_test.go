package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Entry_Before(t *testing.T) {
	tests := []struct {
		name     string
		a        Entry
		b        Entry
		expected bool
	}{
		{name: "Smaller seconds", a: Entry{Sec: 1, Nsec: 900}, b: Entry{Sec: 2, Nsec: 0}, expected: true},
		{name: "Larger seconds", a: Entry{Sec: 3, Nsec: 0}, b: Entry{Sec: 2, Nsec: 999}, expected: false},
		{name: "Same seconds smaller nanos", a: Entry{Sec: 2, Nsec: 1}, b: Entry{Sec: 2, Nsec: 2}, expected: true},
		{name: "Equal timestamps", a: Entry{Sec: 2, Nsec: 2}, b: Entry{Sec: 2, Nsec: 2}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Before(tt.b))
		})
	}
}

func Test_Entry_String(t *testing.T) {
	e := Entry{Tag: "Zygote", Message: "Preloading classes"}

	assert.Equal(t, "Zygote: Preloading classes", e.String())
}

func Test_ParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		ok       bool
	}{
		{name: "Verbose", input: "verbose", expected: PriorityVerbose, ok: true},
		{name: "Mixed case with spaces", input: " Warn ", expected: PriorityWarn, ok: true},
		{name: "Fatal", input: "fatal", expected: PriorityFatal, ok: true},
		{name: "Unknown name", input: "loud", expected: PriorityUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParsePriority(tt.input)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func Test_Priority_String(t *testing.T) {
	assert.Equal(t, "info", PriorityInfo.String())
	assert.Equal(t, "error", PriorityError.String())
	assert.Equal(t, "unknown", Priority(42).String())
}

func Test_Priority_Ordering(t *testing.T) {
	assert.Less(t, PriorityVerbose, PriorityDebug)
	assert.Less(t, PriorityInfo, PriorityWarn)
	assert.Less(t, PriorityFatal, PrioritySilent)
}
