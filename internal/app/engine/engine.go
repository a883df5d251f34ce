package engine

//go:generate mockgen -source=engine.go -destination=engine_mock.go -package=engine

import (
	"context"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/fx"

	"bootsplash/internal/app/animation"
	"bootsplash/internal/app/console"
	"bootsplash/internal/app/decoder"
	"bootsplash/internal/app/filter"
	"bootsplash/internal/app/input"
	"bootsplash/internal/app/logs"
	"bootsplash/internal/app/monitor"
	"bootsplash/internal/app/renderer"
	"bootsplash/internal/app/shutdown"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// summaryTimeout bounds the resource sample taken at teardown
const summaryTimeout = 500 * time.Millisecond

// loopResult tells the outer loop why a mode loop returned
type loopResult int

const (
	resultExit loopResult = iota
	resultSwitch
	resultFinished
	resultFailed
)

// Engine plays the boot splash until exit is requested
type Engine interface {
	Run(ctx context.Context) error
}

// Params contains dependencies for creating the engine
type Params struct {
	fx.In

	Config     *config.Config
	Descriptor *animation.Descriptor
	Renderer   renderer.Renderer
	Decoder    decoder.Decoder
	Filter     filter.Filter
	Opener     logs.Opener
	Input      input.Watcher
	Exit       shutdown.Signal
	Monitor    monitor.Monitor
	Clock      Clock
	Logger     logger.Logger
}

// position is where the animation loop resumes
type position struct {
	part  int
	rep   int
	frame int
}

// sessionStats are reported once at teardown
type sessionStats struct {
	frames   int
	switches int
}

type engine struct {
	desc     *animation.Descriptor
	renderer renderer.Renderer
	decoder  decoder.Decoder
	filter   filter.Filter
	opener   logs.Opener
	input    input.Watcher
	exit     shutdown.Signal
	monitor  monitor.Monitor
	clock    Clock
	log      logger.Logger

	logPaths     []string
	textInterval time.Duration
	glyphHeight  int
	console      *console.Console
	fsm          *fsm.FSM

	pos       position
	cache     map[int]*decoder.Image
	lastFrame time.Time
	lastText  time.Time

	mux       logs.Multiplexer
	logsOpen  bool
	header    *decoder.Image
	headerSet bool

	stats sessionStats
}

// NewEngine creates the playback engine
func NewEngine(p Params) Engine {
	width, height := p.Renderer.Size()

	return &engine{
		desc:         p.Descriptor,
		renderer:     p.Renderer,
		decoder:      p.Decoder,
		filter:       p.Filter,
		opener:       p.Opener,
		input:        p.Input,
		exit:         p.Exit,
		monitor:      p.Monitor,
		clock:        p.Clock,
		log:          p.Logger.WithComponent("ENGINE"),
		logPaths:     p.Config.Logs.Devices,
		textInterval: time.Second / time.Duration(p.Config.Text.FPS),
		glyphHeight:  p.Config.Console.GlyphHeight,
		console:      console.NewForViewport(width, height, p.Config.Console.GlyphWidth, p.Config.Console.GlyphHeight),
	}
}

// Run drives the mode loops until exit, a failure or the end of a finite
// animation, then tears everything down. Session failures are logged, not returned.
func (e *engine) Run(ctx context.Context) error {
	start := e.clock.Now()
	e.fsm = newModeFSM(stateFor(e.filter.Verbosity()), e.log)

	e.log.Info().Msgf("Playing %dx%d at %d fps, %d parts, %d frames, verbosity %s",
		e.desc.Width, e.desc.Height, e.desc.FPS, len(e.desc.Parts), e.desc.FrameCount(), e.filter.Verbosity())

	defer e.teardown(ctx, start)

	for !e.exitRequested(ctx) {
		if err := e.enter(ctx, stateFor(e.filter.Verbosity())); err != nil {
			e.log.Error().Err(err).Msg("Failed to switch display mode")
			return nil
		}

		var result loopResult

		switch e.fsm.Current() {
		case StateAnimation:
			result = e.playAnimation(ctx)
		default:
			result = e.playVerbose(ctx)
		}

		if result != resultSwitch {
			if result == resultFinished {
				e.log.Info().Msg("Animation finished")
			}

			return nil
		}
	}

	return nil
}

// enter moves the FSM into state if it is not already there
func (e *engine) enter(ctx context.Context, state string) error {
	if e.fsm.Current() == state {
		return nil
	}

	if err := e.fsm.Event(ctx, eventFor(state)); err != nil {
		return err
	}

	e.stats.switches++

	return nil
}

func (e *engine) exitRequested(ctx context.Context) bool {
	return e.exit.Requested() || ctx.Err() != nil
}

// pollInput samples the volume keys and reports whether the verbosity changed
func (e *engine) pollInput() bool {
	current := e.filter.Verbosity()

	var next filter.Verbosity

	switch e.input.Poll() {
	case input.EventIncrease:
		next = current.Increase()
	case input.EventDecrease:
		next = current.Decrease()
	default:
		return false
	}

	if next == current {
		return false
	}

	e.filter.SetVerbosity(next)
	e.log.Info().Msgf("Verbosity %s → %s (%s)", current, next, ModeFor(next))

	return true
}

// teardown releases every resource the session acquired and logs the summary
func (e *engine) teardown(ctx context.Context, start time.Time) {
	if e.fsm.Can(EventStop) {
		if err := e.fsm.Event(ctx, EventStop); err != nil {
			e.log.Debug().Err(err).Msg("Failed to stop state machine")
		}
	}

	e.releaseCache()

	if e.mux != nil {
		if err := e.mux.Close(); err != nil {
			e.log.Warn().Err(err).Msg("Failed to close log devices")
		}

		e.mux = nil
	}

	if err := e.input.Close(); err != nil {
		e.log.Warn().Err(err).Msg("Failed to close input device")
	}

	if err := e.renderer.Close(); err != nil {
		e.log.Warn().Err(err).Msg("Failed to close renderer")
	}

	e.logSummary(ctx, e.clock.Now().Sub(start))
}

func (e *engine) logSummary(ctx context.Context, elapsed time.Duration) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), summaryTimeout)
	defer cancel()

	stats, err := e.monitor.Sample(ctx)
	if err != nil {
		e.log.Debug().Err(err).Msg("Failed to sample process stats")
	}

	e.log.Info().Msgf("Session ended after %s: %d frames, %d mode switches, %d boot loops, cpu %.1f%%, rss %.1f MB, %d threads",
		elapsed.Round(time.Millisecond), e.stats.frames, e.stats.switches, e.filter.BootLoops(), stats.CPU, stats.MEM, stats.Threads)
}
