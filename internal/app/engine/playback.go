package engine

import (
	"context"
	"time"

	"bootsplash/internal/app/animation"
	"bootsplash/internal/app/decoder"
)

// playAnimation plays the parts from the saved position. Every inner
// iteration checks for exit and verbosity changes first.
func (e *engine) playAnimation(ctx context.Context) loopResult {
	interval := e.desc.FrameInterval()
	width, height := e.renderer.Size()
	x := (width - e.desc.Width) / 2
	y := (height - e.desc.Height) / 2

	for e.pos.part < len(e.desc.Parts) {
		part := &e.desc.Parts[e.pos.part]

		for part.Infinite() || e.pos.rep < part.PlayCount {
			if len(part.Frames) == 0 {
				if e.exitRequested(ctx) {
					return resultExit
				}

				if e.pollInput() {
					return resultSwitch
				}

				e.clock.Sleep(ctx, interval)
			}

			for e.pos.frame < len(part.Frames) {
				if e.exitRequested(ctx) {
					return resultExit
				}

				if e.pollInput() {
					return resultSwitch
				}

				img := e.frameImage(part, e.pos.frame)
				e.pos.frame++

				waitSlot(ctx, e.clock, &e.lastFrame, interval)

				if img != nil {
					if err := e.showFrame(img, x, y); err != nil {
						e.log.Error().Err(err).Msg("Presentation failed, stopping playback")
						return resultFailed
					}

					e.stats.frames++
				}
			}

			if len(part.Frames) > 0 {
				pace(ctx, e.clock, e.lastFrame, interval)
			}

			e.pos.frame = 0
			e.pos.rep++

			if part.Pause > 0 {
				e.clock.Sleep(ctx, time.Duration(part.Pause)*interval)
			}
		}

		e.releaseCache()
		e.pos = position{part: e.pos.part + 1}
	}

	return resultFinished
}

// frameImage returns the decoded frame, or nil when it cannot be decoded.
// Parts played more than once keep their decoded frames until the part ends.
func (e *engine) frameImage(part *animation.Part, index int) *decoder.Image {
	frame := part.Frames[index]
	if frame.Image != nil {
		return frame.Image
	}

	cached := part.PlayCount != 1
	if cached {
		if img, ok := e.cache[index]; ok {
			return img
		}
	}

	img, err := e.decoder.Decode(frame.Data)
	if err != nil {
		e.log.Warn().Err(err).Msgf("Skipping frame '%s/%s'", part.Path, frame.Name)
		img = nil
	}

	if cached {
		if e.cache == nil {
			e.cache = make(map[int]*decoder.Image, len(part.Frames))
		}

		e.cache[index] = img
	}

	return img
}

func (e *engine) releaseCache() {
	e.cache = nil
}

func (e *engine) showFrame(img *decoder.Image, x, y int) error {
	if err := e.renderer.Clear(); err != nil {
		return err
	}

	if err := e.renderer.DrawImage(img, x, y); err != nil {
		e.log.Warn().Err(err).Msg("Failed to draw frame")
	}

	return e.renderer.Present()
}
