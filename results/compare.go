// SPDX-License-Identifier: MIT
// Package: stencilkit/results
//
// compare.go — speed-up phrasing between two timings.

package results

import (
	"fmt"
	"strings"
)

// CompareMode selects how Compare phrases a speed-up.
type CompareMode int

const (
	// Faster reports how many times faster a is than b ("~3.4").
	Faster CompareMode = iota
	// FasterPercent reports by how many percent a is faster than b ("~42%").
	FasterPercent
)

// String returns "faster" or "faster-%".
func (m CompareMode) String() string {
	switch m {
	case Faster:
		return "faster"
	case FasterPercent:
		return "faster-%"
	default:
		return fmt.Sprintf("CompareMode(%d)", int(m))
	}
}

// ParseCompareMode accepts "faster" and "faster-%".
func ParseCompareMode(s string) (CompareMode, error) {
	switch strings.TrimSpace(s) {
	case "faster":
		return Faster, nil
	case "faster-%", "faster-percent":
		return FasterPercent, nil
	default:
		return 0, resultsErrorf("ParseCompareMode", ErrInvalidArgument, "%q", s)
	}
}

// Infinity is returned when a is zero.
const Infinity = "∞"

// Compare phrases how much faster timing a is than timing b.
//
//   - Faster: b/a, with no decimals above 10 and one decimal otherwise.
//   - FasterPercent: (b-a)/a*100 without decimals; requires a <= b.
//
// A zero a yields Infinity.
func Compare(a, b float64, mode CompareMode) (string, error) {
	const method = "Compare"
	switch mode {
	case Faster:
		if a == 0 {
			return Infinity, nil
		}
		res := b / a
		if res > 10 {
			return fmt.Sprintf("~%.0f", res), nil
		}
		return fmt.Sprintf("~%.1f", res), nil
	case FasterPercent:
		if a > b {
			return "", resultsErrorf(method, ErrInvalidArgument, "a=%g > b=%g", a, b)
		}
		if a == 0 {
			return Infinity, nil
		}
		return fmt.Sprintf("~%.0f%%", (b-a)/a*100), nil
	default:
		return "", resultsErrorf(method, ErrInvalidArgument, "mode=%d", int(mode))
	}
}
