// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// field.go — the Field type: a dense 3D float array with explicit strides.
//
// Storage model:
//   • data holds shape[0]*shape[1]*shape[2] values in physical order.
//   • strides[d] is the element distance between neighbours on dimension d.
//     RowMajor:    strides = {s1*s2, s2, 1}
//     ColumnMajor: strides = {1, s0, s0*s1}
//   • Logical access (At/Set) is layout-independent.

package field

import "fmt"

// Field is a dense 3D array. The zero value is not usable; construct fields
// with Initialize, New or the permutation helpers.
type Field struct {
	shape   [3]int
	strides [3]int
	layout  Layout
	dtype   DType
	data    []float64
}

// New returns a zero-filled field of the given shape, layout and dtype.
// Stage 1 (Validate): positive extents and known enums.
// Stage 2 (Prepare): compute strides and allocate.
// Complexity: O(n0*n1*n2) time and memory.
func New(shape [3]int, layout Layout, dtype DType) (*Field, error) {
	if shape[0] <= 0 || shape[1] <= 0 || shape[2] <= 0 {
		return nil, fieldErrorf("New", ErrBadShape, "shape=%v", shape)
	}
	if !layout.Valid() {
		return nil, fieldErrorf("New", ErrUnknownLayout, "layout=%d", int(layout))
	}
	if !dtype.Valid() {
		return nil, fieldErrorf("New", ErrUnknownDType, "dtype=%d", int(dtype))
	}

	return newField(shape, layout, dtype), nil
}

// newField allocates without validation; callers guarantee the invariants.
func newField(shape [3]int, layout Layout, dtype DType) *Field {
	return &Field{
		shape:   shape,
		strides: stridesFor(shape, layout),
		layout:  layout,
		dtype:   dtype,
		data:    make([]float64, shape[0]*shape[1]*shape[2]),
	}
}

// stridesFor computes element strides for shape under layout.
func stridesFor(shape [3]int, layout Layout) [3]int {
	if layout == ColumnMajor {
		return [3]int{1, shape[0], shape[0] * shape[1]}
	}

	return [3]int{shape[1] * shape[2], shape[2], 1}
}

// Shape returns the extents of the three dimensions.
func (f *Field) Shape() [3]int { return f.shape }

// Strides returns the element strides of the three dimensions.
func (f *Field) Strides() [3]int { return f.strides }

// Layout returns the physical memory layout.
func (f *Field) Layout() Layout { return f.layout }

// DType returns the element precision.
func (f *Field) DType() DType { return f.dtype }

// Len returns the number of elements.
func (f *Field) Len() int { return len(f.data) }

// offset maps a logical index to a physical position. No bounds checks.
func (f *Field) offset(i, j, k int) int {
	return i*f.strides[0] + j*f.strides[1] + k*f.strides[2]
}

// inBounds reports whether (i,j,k) addresses an element.
func (f *Field) inBounds(i, j, k int) bool {
	return i >= 0 && i < f.shape[0] &&
		j >= 0 && j < f.shape[1] &&
		k >= 0 && k < f.shape[2]
}

// At returns the value at logical index (i,j,k).
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(1).
func (f *Field) At(i, j, k int) (float64, error) {
	if f == nil {
		return 0, fieldErrorf("At", ErrNilField, "")
	}
	if !f.inBounds(i, j, k) {
		return 0, fieldErrorf("At", ErrOutOfRange, "(%d,%d,%d) shape=%v", i, j, k, f.shape)
	}

	return f.data[f.offset(i, j, k)], nil
}

// Set stores v at logical index (i,j,k), rounded to the field's dtype.
// Complexity: O(1).
func (f *Field) Set(i, j, k int, v float64) error {
	if f == nil {
		return fieldErrorf("Set", ErrNilField, "")
	}
	if !f.inBounds(i, j, k) {
		return fieldErrorf("Set", ErrOutOfRange, "(%d,%d,%d) shape=%v", i, j, k, f.shape)
	}
	f.data[f.offset(i, j, k)] = f.dtype.round(v)

	return nil
}

// Data returns a copy of the backing storage in physical order.
// For a ColumnMajor field the first dimension varies fastest.
// Complexity: O(n).
func (f *Field) Data() []float64 {
	out := make([]float64, len(f.data))
	copy(out, f.data)

	return out
}

// Values returns a copy of the elements in logical row-major order,
// independent of the physical layout.
// Complexity: O(n).
func (f *Field) Values() []float64 {
	if f.layout == RowMajor {
		return f.Data()
	}
	out := make([]float64, len(f.data))
	var i, j, k, p int
	for i = 0; i < f.shape[0]; i++ {
		for j = 0; j < f.shape[1]; j++ {
			for k = 0; k < f.shape[2]; k++ {
				out[p] = f.data[f.offset(i, j, k)]
				p++
			}
		}
	}

	return out
}

// Clone returns a deep copy with the same shape, layout and dtype.
// Complexity: O(n).
func (f *Field) Clone() *Field {
	return &Field{
		shape:   f.shape,
		strides: f.strides,
		layout:  f.layout,
		dtype:   f.dtype,
		data:    f.Data(),
	}
}

// String summarizes the field without dumping its values.
func (f *Field) String() string {
	return fmt.Sprintf("Field(shape=%v, layout=%s, dtype=%s)", f.shape, f.layout, f.dtype)
}

// FromValues builds a field of the given shape from values listed in
// logical row-major order, storing them in layout and rounding to dtype.
// Returns ErrBadShape when len(values) does not match the shape.
//
// Complexity: O(n).
func FromValues(shape [3]int, layout Layout, dtype DType, values []float64) (*Field, error) {
	f, err := New(shape, layout, dtype)
	if err != nil {
		return nil, err
	}
	if len(values) != len(f.data) {
		return nil, fieldErrorf("FromValues", ErrBadShape, "len=%d shape=%v", len(values), shape)
	}
	var i, j, k, p int
	for i = 0; i < shape[0]; i++ {
		for j = 0; j < shape[1]; j++ {
			for k = 0; k < shape[2]; k++ {
				f.data[f.offset(i, j, k)] = dtype.round(values[p])
				p++
			}
		}
	}

	return f, nil
}
