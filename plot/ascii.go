// SPDX-License-Identifier: MIT
// Package: stencilkit/plot
//
// ascii.go — terminal rendering of a slice.

package plot

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/stencilkit/matrix"
)

// asciiRamp maps [-1, 1] onto ten glyphs, darkest first.
const asciiRamp = " .:-=+*#%@"

// ASCII writes slice as one line of glyphs per row, with values clamped to
// [-1, 1]. Row 0 is printed first. NaN prints as '?'.
func ASCII(w io.Writer, slice *matrix.Dense) error {
	if slice == nil {
		return fmt.Errorf("ASCII: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	last := len(asciiRamp) - 1
	var i, j int
	for i = 0; i < slice.Rows(); i++ {
		row, err := slice.Row(i)
		if err != nil {
			return fmt.Errorf("ASCII: %w", err)
		}
		for j = range row {
			v := row[j]
			if math.IsNaN(v) {
				bw.WriteByte('?')
				continue
			}
			v = math.Max(-1, math.Min(1, v))
			idx := int(math.Round((v + 1) / 2 * float64(last)))
			bw.WriteByte(asciiRamp[idx])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
