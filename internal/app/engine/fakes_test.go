package engine

import (
	"context"
	"iter"
	"slices"
	"time"

	"bootsplash/internal/app/console"
	"bootsplash/internal/app/decoder"
	"bootsplash/internal/app/input"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type drawnImage struct {
	img  *decoder.Image
	x, y int
}

type fakeRenderer struct {
	width, height int
	clock         *fakeClock
	work          time.Duration
	failAt        int
	onPresent     func(n int)

	presents    int
	presentedAt []time.Time
	drawn       []drawnImage
	consoles [][]string
	closed   bool
}

func (r *fakeRenderer) Size() (int, int) {
	return r.width, r.height
}

func (r *fakeRenderer) Clear() error {
	return nil
}

func (r *fakeRenderer) DrawImage(img *decoder.Image, x, y int) error {
	r.drawn = append(r.drawn, drawnImage{img: img, x: x, y: y})
	return nil
}

func (r *fakeRenderer) DrawConsole(rows iter.Seq[string]) error {
	var lines []string
	for row := range rows {
		lines = append(lines, console.Trim(row))
	}

	r.consoles = append(r.consoles, lines)

	return nil
}

func (r *fakeRenderer) Present() error {
	r.presents++

	if r.clock != nil {
		r.presentedAt = append(r.presentedAt, r.clock.Now())
	}

	if r.clock != nil {
		r.clock.advance(r.work)
	}

	if r.failAt > 0 && r.presents == r.failAt {
		return context.DeadlineExceeded
	}

	if r.onPresent != nil {
		r.onPresent(r.presents)
	}

	return nil
}

func (r *fakeRenderer) Close() error {
	r.closed = true
	return nil
}

// framesAt returns the images drawn at the given y offset
func (r *fakeRenderer) framesAt(y int) []*decoder.Image {
	var out []*decoder.Image
	for _, d := range r.drawn {
		if d.y == y {
			out = append(out, d.img)
		}
	}

	return out
}

func (r *fakeRenderer) lastConsole() []string {
	if len(r.consoles) == 0 {
		return nil
	}

	return r.consoles[len(r.consoles)-1]
}

// slowDecoder charges a per-frame decode cost to the clock
type slowDecoder struct {
	clock  *fakeClock
	cost   map[string]time.Duration
	images map[string]*decoder.Image
	calls  int
}

func (d *slowDecoder) Decode(data []byte) (*decoder.Image, error) {
	d.calls++
	d.clock.advance(d.cost[string(data)])

	return d.images[string(data)], nil
}

func (d *slowDecoder) Format() string {
	return decoder.FormatRGBA8888
}

type fakeWatcher struct {
	events []input.Event
	polls  int
	closed bool
}

func (w *fakeWatcher) Poll() input.Event {
	w.polls++

	if len(w.events) == 0 {
		return input.EventNone
	}

	ev := w.events[0]
	w.events = w.events[1:]

	return ev
}

func (w *fakeWatcher) Active() bool {
	return true
}

func (w *fakeWatcher) Close() error {
	w.closed = true
	return nil
}

type fakeSignal struct {
	requested bool
}

func (s *fakeSignal) Requested() bool {
	return s.requested
}

func (s *fakeSignal) Request(string) {
	s.requested = true
}

func (s *fakeSignal) Start() error {
	return nil
}

func (s *fakeSignal) Close() {}

func nonEmpty(lines []string) []string {
	return slices.DeleteFunc(slices.Clone(lines), func(s string) bool { return s == "" })
}
