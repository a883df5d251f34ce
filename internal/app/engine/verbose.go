package engine

import (
	"context"
	"iter"
	"slices"

	"bootsplash/internal/app/decoder"
)

// playVerbose shows the diagnostic console paced at the text frame rate
func (e *engine) playVerbose(ctx context.Context) loopResult {
	e.openLogs()

	for {
		if e.exitRequested(ctx) {
			return resultExit
		}

		if e.pollInput() {
			return resultSwitch
		}

		if e.mux != nil {
			entries, err := e.mux.Poll()
			for _, entry := range entries {
				e.filter.Process(entry, e.console)
			}

			if err != nil {
				e.log.Error().Err(err).Msg("Log devices failed, stopping playback")
				return resultFailed
			}
		}

		waitSlot(ctx, e.clock, &e.lastText, e.textInterval)

		if err := e.showConsole(ModeFor(e.filter.Verbosity())); err != nil {
			e.log.Error().Err(err).Msg("Presentation failed, stopping playback")
			return resultFailed
		}

		e.stats.frames++
	}
}

// openLogs opens the log devices the first time the console is shown; they
// stay open until teardown. Without devices the console stays empty.
func (e *engine) openLogs() {
	if e.logsOpen {
		return
	}

	e.logsOpen = true

	mux, err := e.opener.Open(e.logPaths)
	if err != nil {
		e.log.Warn().Err(err).Msg("Diagnostic console has no log source")
		return
	}

	e.log.Debug().Msgf("Reading %d log devices", mux.Devices())
	e.mux = mux
}

func (e *engine) showConsole(mode DisplayMode) error {
	if err := e.renderer.Clear(); err != nil {
		return err
	}

	rows := e.console.Snapshot()

	if mode == ModeAnnotatedAnimation {
		if header := e.headerImage(); header != nil {
			width, _ := e.renderer.Size()

			if err := e.renderer.DrawImage(header, (width-header.Width)/2, 0); err != nil {
				e.log.Warn().Err(err).Msg("Failed to draw header image")
			}

			rows = belowHeader(rows, e.console.Rows(), headerRows(header.Height, e.glyphHeight))
		}
	}

	if err := e.renderer.DrawConsole(rows); err != nil {
		return err
	}

	return e.renderer.Present()
}

// headerImage returns the first frame of the animation that decodes
func (e *engine) headerImage() *decoder.Image {
	if e.headerSet {
		return e.header
	}

	e.headerSet = true

	for _, part := range e.desc.Parts {
		for _, frame := range part.Frames {
			if frame.Image != nil {
				e.header = frame.Image
				return e.header
			}

			if img, err := e.decoder.Decode(frame.Data); err == nil {
				e.header = img
				return e.header
			}
		}
	}

	return nil
}

func headerRows(imageHeight, glyphHeight int) int {
	if glyphHeight <= 0 {
		return 0
	}

	return (imageHeight + glyphHeight - 1) / glyphHeight
}

// belowHeader yields skip blank rows followed by the newest total-skip console rows
func belowHeader(rows iter.Seq[string], total, skip int) iter.Seq[string] {
	skip = min(max(skip, 0), total)

	return func(yield func(string) bool) {
		for range skip {
			if !yield("") {
				return
			}
		}

		all := slices.Collect(rows)
		keep := min(total-skip, len(all))

		for _, row := range all[len(all)-keep:] {
			if !yield(row) {
				return
			}
		}
	}
}
