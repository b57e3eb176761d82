// SPDX-License-Identifier: MIT
// Package: stencilkit/bench
//
// timeit.go — repeat×number timing and its summary.

package bench

import (
	"math"
	"time"

	"github.com/katalvlaran/stencilkit/results"
)

// Defaults match IPython's %timeit -r 7 -n 1.
const (
	DefaultRepeat = 7
	DefaultNumber = 1
)

// Option customizes Timeit.
type Option func(*config)

type config struct {
	repeat int
	number int
	now    func() time.Time
}

// WithRepeat sets the number of timed rounds. Panics if r < 1.
func WithRepeat(r int) Option {
	if r < 1 {
		panic("bench: WithRepeat(r<1)")
	}

	return func(c *config) { c.repeat = r }
}

// WithNumber sets the loops per round. Panics if n < 1.
func WithNumber(n int) Option {
	if n < 1 {
		panic("bench: WithNumber(n<1)")
	}

	return func(c *config) { c.number = n }
}

// WithTimer replaces time.Now, mainly for tests. Panics on nil.
func WithTimer(now func() time.Time) Option {
	if now == nil {
		panic("bench: WithTimer(nil)")
	}

	return func(c *config) { c.now = now }
}

// Run holds the raw measurements of a Timeit call.
type Run struct {
	Repeat int
	Number int
	// PerLoop holds one per-loop duration (seconds) per round.
	PerLoop []float64
}

// Timing summarizes the run.
func (r Run) Timing() results.Timing {
	if len(r.PerLoop) == 0 {
		return results.Timing{}
	}
	var sum float64
	for _, v := range r.PerLoop {
		sum += v
	}
	mean := sum / float64(len(r.PerLoop))
	var sq float64
	for _, v := range r.PerLoop {
		sq += (v - mean) * (v - mean)
	}

	return results.Timing{Average: mean, Stdev: math.Sqrt(sq / float64(len(r.PerLoop)))}
}

// Best returns the fastest per-loop time.
func (r Run) Best() float64 {
	best := math.Inf(1)
	for _, v := range r.PerLoop {
		best = math.Min(best, v)
	}

	return best
}

// Timeit calls fn repeat×number times and returns the measurements.
//
// Complexity: repeat*number calls of fn.
func Timeit(fn func(), opts ...Option) Run {
	cfg := config{repeat: DefaultRepeat, number: DefaultNumber, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	run := Run{Repeat: cfg.repeat, Number: cfg.number, PerLoop: make([]float64, cfg.repeat)}
	var r, n int
	for r = 0; r < cfg.repeat; r++ {
		start := cfg.now()
		for n = 0; n < cfg.number; n++ {
			fn()
		}
		run.PerLoop[r] = cfg.now().Sub(start).Seconds() / float64(cfg.number)
	}

	return run
}
