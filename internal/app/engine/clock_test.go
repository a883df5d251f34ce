package engine

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_pace(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected []time.Duration
	}{
		{name: "sleeps the remainder", elapsed: 30 * time.Millisecond, expected: []time.Duration{70 * time.Millisecond}},
		{name: "on time", elapsed: 100 * time.Millisecond, expected: nil},
		{name: "late", elapsed: 250 * time.Millisecond, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			start := clock.Now()
			clock.advance(tt.elapsed)

			pace(context.Background(), clock, start, 100*time.Millisecond)

			assert.Equal(t, tt.expected, clock.sleeps)
		})
	}
}

func Test_waitSlot(t *testing.T) {
	const interval = 100 * time.Millisecond

	clock := newFakeClock()

	var last time.Time

	waitSlot(context.Background(), clock, &last, interval)
	assert.Empty(t, clock.sleeps, "first slot starts immediately")
	assert.Equal(t, clock.Now(), last)

	clock.advance(40 * time.Millisecond)
	waitSlot(context.Background(), clock, &last, interval)
	assert.Equal(t, []time.Duration{60 * time.Millisecond}, clock.sleeps)
	assert.Equal(t, clock.Now(), last)

	clock.advance(150 * time.Millisecond)
	waitSlot(context.Background(), clock, &last, interval)
	assert.Len(t, clock.sleeps, 1, "late slot does not wait")
}

func Test_RealClock_Sleep(t *testing.T) {
	clock := NewClock()

	start := clock.Now()
	clock.Sleep(context.Background(), 10*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	start = clock.Now()
	clock.Sleep(context.Background(), 0)
	clock.Sleep(context.Background(), -time.Second)
	assert.Less(t, time.Since(start), time.Second)
}

func Test_RealClock_SleepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	NewClock().Sleep(ctx, time.Minute)

	assert.Less(t, time.Since(start), time.Second)
}

func Test_belowHeader(t *testing.T) {
	rows := slices.Values([]string{"a", "b", "c", "d"})

	tests := []struct {
		name     string
		skip     int
		expected []string
	}{
		{name: "no header", skip: 0, expected: []string{"a", "b", "c", "d"}},
		{name: "keeps the newest rows", skip: 2, expected: []string{"", "", "c", "d"}},
		{name: "header taller than console", skip: 9, expected: []string{"", "", "", ""}},
		{name: "negative skip", skip: -1, expected: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slices.Collect(belowHeader(rows, 4, tt.skip)))
		})
	}
}

func Test_headerRows(t *testing.T) {
	assert.Equal(t, 0, headerRows(0, 18))
	assert.Equal(t, 1, headerRows(18, 18))
	assert.Equal(t, 2, headerRows(20, 18))
	assert.Equal(t, 0, headerRows(20, 0))
}
