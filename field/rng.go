// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// rng.go — the explicit pseudo-random Source behind the Random pattern.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequence of fields, call after call.
//   - Encapsulation: the caller owns the Source; nothing is process-wide.
//   - Concurrency: math/rand.Rand is NOT goroutine-safe, so Source guards it
//     with a mutex and hands out whole blocks under one lock acquisition.
//     Reproducibility still requires a deterministic call order.

package field

import (
	"math"
	"math/rand"
	"sync"
)

// DefaultSeed is the seed used when no Source is supplied.
const DefaultSeed int64 = 1337

// Source is a seeded, mutex-protected uniform generator.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed (used verbatim).
//
// Complexity: O(1).
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// fillSigned writes len(dst) values uniform in [-1, 1) into dst, in order,
// under a single lock so that concurrent callers never interleave draws.
// Under Float32 the unit draw is rounded first, then scaled in float32.
//
// Complexity: O(len(dst)).
func (s *Source) fillSigned(dst []float64, dtype DType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		i int
		u float64
	)
	for i = range dst {
		u = s.rng.Float64()
		if dtype == Float32 {
			u32 := float32(u)
			if u32 >= 1 {
				// float32 rounding may reach 1; keep the interval half-open
				u32 = math.Nextafter32(1, 0)
			}
			dst[i] = float64(2*u32 - 1)
			continue
		}
		dst[i] = 2*u - 1
	}
}
