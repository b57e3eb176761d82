// SPDX-License-Identifier: MIT
// Package: matrix
//
// ops.go — clamp, tolerance comparison and range scan.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

const (
	opClip     = "Clip"
	opAllClose = "AllClose"
	opMinMax   = "MinMax"
)

// Clip copies m clamping each entry into [lo, hi] (both finite).
// If lo > hi, they are swapped. NaN entries are left as NaN.
// Time: O(r*c). Space: O(r*c).
func Clip(m Matrix, lo, hi float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opClip, ErrNilMatrix)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	src, err := asDense(opClip, m)
	if err != nil {
		return nil, err
	}
	out, _ := NewDense(src.r, src.c)
	for idx, v := range src.data {
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		out.data[idx] = v
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalized to their absolute values.
// Time: O(r*c). Space: O(1) on the Dense fast path.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}
	da, err := asDense(opAllClose, a)
	if err != nil {
		return false, err
	}
	db, err := asDense(opAllClose, b)
	if err != nil {
		return false, err
	}
	for idx := range da.data {
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil
		}
	}

	return true, nil
}

// MinMax returns the smallest and largest finite entries of m.
// Returns ErrNaNInf when m holds no finite value.
func MinMax(m Matrix) (lo, hi float64, err error) {
	if m == nil {
		return 0, 0, matrixErrorf(opMinMax, ErrNilMatrix)
	}
	d, err := asDense(opMinMax, m)
	if err != nil {
		return 0, 0, err
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0, matrixErrorf(opMinMax, ErrNaNInf)
	}

	return lo, hi, nil
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(tag string, m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
