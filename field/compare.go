// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// compare.go — logical equality checks between fields.

package field

import "math"

// Equal reports whether f and g have the same shape and bit-identical values
// at every logical index. Layout and dtype are ignored.
//
// Complexity: O(n).
func (f *Field) Equal(g *Field) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.shape != g.shape {
		return false
	}
	var i, j, k int
	for i = 0; i < f.shape[0]; i++ {
		for j = 0; j < f.shape[1]; j++ {
			for k = 0; k < f.shape[2]; k++ {
				if math.Float64bits(f.data[f.offset(i, j, k)]) != math.Float64bits(g.data[g.offset(i, j, k)]) {
					return false
				}
			}
		}
	}

	return true
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Shapes must match (ErrBadShape otherwise). NaNs never compare close.
//
// Complexity: O(n).
func AllClose(a, b *Field, rtol, atol float64) (bool, error) {
	if a == nil || b == nil {
		return false, fieldErrorf("AllClose", ErrNilField, "")
	}
	if a.shape != b.shape {
		return false, fieldErrorf("AllClose", ErrBadShape, "%v vs %v", a.shape, b.shape)
	}
	var (
		i, j, k int
		x, y    float64
	)
	for i = 0; i < a.shape[0]; i++ {
		for j = 0; j < a.shape[1]; j++ {
			for k = 0; k < a.shape[2]; k++ {
				x = a.data[a.offset(i, j, k)]
				y = b.data[b.offset(i, j, k)]
				if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
					return false, nil
				}
			}
		}
	}

	return true, nil
}
