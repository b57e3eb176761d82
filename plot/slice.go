// SPDX-License-Identifier: MIT
// Package: stencilkit/plot
//
// slice.go — canonical Z-slice extraction.

package plot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/matrix"
)

// ErrSliceOutOfRange indicates a Z level outside [0, NZ).
var ErrSliceOutOfRange = errors.New("plot: slice index out of range")

// Slice returns the (Y,X) plane at Z=k of f, where f is stored in the given
// axis order. The result has NY rows and NX columns.
//
// Complexity: O(NZ*NY*NX) for the canonical permutation.
func Slice(f *field.Field, order field.AxisOrder, k int) (*matrix.Dense, error) {
	canon, err := field.Canonical(f, order)
	if err != nil {
		return nil, fmt.Errorf("Slice: %w", err)
	}
	shape := canon.Shape()
	if k < 0 || k >= shape[0] {
		return nil, fmt.Errorf("Slice: k=%d nz=%d: %w", k, shape[0], ErrSliceOutOfRange)
	}

	ny, nx := shape[1], shape[2]
	vals := canon.Values()
	return matrix.NewDenseFrom(ny, nx, vals[k*ny*nx:(k+1)*ny*nx])
}
