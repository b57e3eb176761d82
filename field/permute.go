// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// permute.go — axis permutation and layout re-materialization.
//
// All helpers return a freshly allocated field; inputs are never aliased.

package field

// Permute returns a copy of f whose dimension d is input dimension axes[d]
// (the usual array transpose convention). Layout and dtype are preserved.
// Returns ErrBadAxes unless axes is a permutation of {0,1,2}.
//
// Complexity: O(n).
func Permute(f *Field, axes [3]int) (*Field, error) {
	if f == nil {
		return nil, fieldErrorf("Permute", ErrNilField, "")
	}
	if !validAxes(axes) {
		return nil, fieldErrorf("Permute", ErrBadAxes, "axes=%v", axes)
	}

	return permute(f, axes, f.layout), nil
}

// Canonical returns f, assumed to be in the given axis order, permuted back
// to (Z,Y,X). Layout and dtype are preserved.
func Canonical(f *Field, order AxisOrder) (*Field, error) {
	if f == nil {
		return nil, fieldErrorf("Canonical", ErrNilField, "")
	}
	if !order.Valid() {
		return nil, fieldErrorf("Canonical", ErrUnknownAxisOrder, "axis_order=%d", int(order))
	}

	return permute(f, order.Inverse(), f.layout), nil
}

// AsLayout returns a copy of f stored in layout l. Shape, logical indexing
// and values are unchanged; only the strides differ.
//
// Complexity: O(n).
func (f *Field) AsLayout(l Layout) (*Field, error) {
	if f == nil {
		return nil, fieldErrorf("AsLayout", ErrNilField, "")
	}
	if !l.Valid() {
		return nil, fieldErrorf("AsLayout", ErrUnknownLayout, "layout=%d", int(l))
	}
	if l == f.layout {
		return f.Clone(), nil
	}

	return permute(f, [3]int{0, 1, 2}, l), nil
}

// permute materializes f transposed by axes into a new field with layout.
// Callers have validated axes and layout.
func permute(f *Field, axes [3]int, layout Layout) *Field {
	var shape [3]int
	for d := range shape {
		shape[d] = f.shape[axes[d]]
	}
	out := newField(shape, layout, f.dtype)

	// Input stride seen from each output dimension.
	var src [3]int
	for d := range src {
		src[d] = f.strides[axes[d]]
	}

	var a, b, c int
	for a = 0; a < shape[0]; a++ {
		for b = 0; b < shape[1]; b++ {
			ip := a*src[0] + b*src[1]
			op := a*out.strides[0] + b*out.strides[1]
			for c = 0; c < shape[2]; c++ {
				out.data[op+c*out.strides[2]] = f.data[ip+c*src[2]]
			}
		}
	}

	return out
}
