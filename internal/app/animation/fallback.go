package animation

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/harmonica"

	"bootsplash/internal/app/decoder"
	"bootsplash/internal/config"
)

const (
	fallbackPath   = "android"
	fallbackWidth  = 240
	fallbackHeight = 60
	fallbackFrames = 24

	// Logo bar geometry
	logoInset  = 6
	shineWidth = 48

	// Spring parameters for the shine sweep
	shineAngularFrequency = 6.0
	shineDampingRatio     = 1.0

	logoLevel  = 0x38
	shineLevel = 0xd0
)

// Fallback synthesizes the built-in logo animation: a bar with a shine
// sweeping across it, one infinite part, frames already decoded
func Fallback(format string) *Descriptor {
	positions := ShinePositions(fallbackFrames)

	frames := make([]Frame, 0, len(positions))
	for i, pos := range positions {
		x := int(pos*float64(fallbackWidth+2*shineWidth)) - shineWidth

		frames = append(frames, Frame{
			Name:  fmt.Sprintf("%03d.png", i),
			Image: decoder.Convert(drawLogo(x), format),
		})
	}

	return &Descriptor{
		Width:  fallbackWidth,
		Height: fallbackHeight,
		FPS:    config.FallbackFPS,
		Parts: []Part{{
			PlayCount: 0,
			Pause:     0,
			Path:      fallbackPath,
			Frames:    frames,
		}},
	}
}

// ShinePositions eases the shine from 0 to 1 over n frames with a critically damped spring
func ShinePositions(n int) []float64 {
	spring := harmonica.NewSpring(harmonica.FPS(config.FallbackFPS), shineAngularFrequency, shineDampingRatio)

	positions := make([]float64, n)

	var pos, vel float64
	for i := range positions {
		positions[i] = pos
		pos, vel = spring.Update(pos, vel, 1.0)
	}

	return positions
}

// drawLogo renders the logo bar with the shine band centred on shineX
func drawLogo(shineX int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fallbackWidth, fallbackHeight))

	for y := logoInset; y < fallbackHeight-logoInset; y++ {
		for x := logoInset; x < fallbackWidth-logoInset; x++ {
			level := logoLevel

			if d := abs(x - shineX); d < shineWidth/2 {
				level += (shineLevel - logoLevel) * (shineWidth/2 - d) / (shineWidth / 2)
			}

			v := uint8(level)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 0xff})
		}
	}

	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
