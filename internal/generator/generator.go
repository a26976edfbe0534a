// Package generator builds synthetic input-event timestamp streams.
package generator

import (
	"math/rand"
	"time"

	"github.com/pollhz/pollhz/internal/hz"
)

// Stream describes one synthetic device-event stream.
type Stream struct {
	Class  hz.DeviceClass
	RateHz float64
	// Jitter is the fraction of the nominal interval by which each delta
	// may deviate, in [0, 1).
	Jitter float64
}

// Generator produces randomized event timestamp sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator for the given seed; seed 0 selects the current
// time so repeated runs differ.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Events returns millisecond timestamps covering the duration at the
// stream's rate, with per-interval jitter applied. Timestamps are
// strictly increasing; deltas are clamped to at least 1ms so every event
// stays measurable.
func (g *Generator) Events(s Stream, duration time.Duration) []uint64 {
	if s.RateHz <= 0 || duration <= 0 {
		return nil
	}
	interval := 1000.0 / s.RateHz
	limit := float64(duration.Milliseconds())
	var out []uint64
	t := 0.0
	for {
		delta := interval
		if s.Jitter > 0 {
			delta *= 1 + s.Jitter*(2*g.rnd.Float64()-1)
		}
		if delta < 1 {
			delta = 1
		}
		t += delta
		if t > limit {
			return out
		}
		ts := uint64(t)
		if n := len(out); n > 0 && ts <= out[n-1] {
			ts = out[n-1] + 1
		}
		out = append(out, ts)
	}
}
