package animation

import (
	"time"

	"bootsplash/internal/app/decoder"
)

// Frame is one still image of a part
type Frame struct {
	Name  string
	Data  []byte
	Image *decoder.Image
}

// Part is a group of frames played PlayCount times with Pause frames between repetitions
type Part struct {
	PlayCount int
	Pause     int
	Path      string
	Frames    []Frame
}

// Infinite reports whether the part loops until the session ends
func (p Part) Infinite() bool {
	return p.PlayCount == 0
}

// Descriptor is the parsed animation: canvas size, rate and ordered parts
type Descriptor struct {
	Width  int
	Height int
	FPS    int
	Parts  []Part
}

// Valid reports whether the descriptor has a usable canvas and frame rate
func (d *Descriptor) Valid() bool {
	return d.Width > 0 && d.Height > 0 && d.FPS > 0
}

// FrameInterval returns the time budget of one frame
func (d *Descriptor) FrameInterval() time.Duration {
	if d.FPS <= 0 {
		return 0
	}

	return time.Second / time.Duration(d.FPS)
}

// FrameCount returns the number of frames across all parts
func (d *Descriptor) FrameCount() int {
	n := 0
	for _, p := range d.Parts {
		n += len(p.Frames)
	}

	return n
}

// Normalize clamps every infinite part except the last one to a single play
// and returns the indices it changed
func (d *Descriptor) Normalize() []int {
	var clamped []int

	for i := 0; i < len(d.Parts)-1; i++ {
		if d.Parts[i].Infinite() {
			d.Parts[i].PlayCount = 1
			clamped = append(clamped, i)
		}
	}

	return clamped
}
