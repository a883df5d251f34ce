package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Descriptor_Valid(t *testing.T) {
	tests := []struct {
		name     string
		d        Descriptor
		expected bool
	}{
		{name: "Valid", d: Descriptor{Width: 1, Height: 1, FPS: 1}, expected: true},
		{name: "Zero size", d: Descriptor{FPS: 30}, expected: false},
		{name: "Zero fps", d: Descriptor{Width: 480, Height: 800}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.d.Valid())
		})
	}
}

func Test_Descriptor_FrameInterval(t *testing.T) {
	d := &Descriptor{FPS: 30}
	assert.Equal(t, 33333333*time.Nanosecond, d.FrameInterval())

	d.FPS = 0
	assert.Equal(t, time.Duration(0), d.FrameInterval())
}

func Test_Descriptor_Normalize(t *testing.T) {
	d := &Descriptor{Parts: []Part{
		{PlayCount: 0, Path: "a"},
		{PlayCount: 2, Path: "b"},
		{PlayCount: 0, Path: "c"},
		{PlayCount: 0, Path: "d"},
	}}

	clamped := d.Normalize()

	assert.Equal(t, []int{0, 2}, clamped)
	assert.Equal(t, 1, d.Parts[0].PlayCount)
	assert.Equal(t, 2, d.Parts[1].PlayCount)
	assert.Equal(t, 1, d.Parts[2].PlayCount)
	assert.True(t, d.Parts[3].Infinite())
}

func Test_Descriptor_FrameCount(t *testing.T) {
	d := &Descriptor{Parts: []Part{
		{Frames: make([]Frame, 3)},
		{Frames: make([]Frame, 2)},
	}}

	assert.Equal(t, 5, d.FrameCount())
}
