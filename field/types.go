// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// types.go — closed enumerations for pattern, axis order, layout and dtype.
//
// Each enum has a Valid method, a String method with the conventional
// spelling, and a Parse function used at the config/CLI boundary.
// The zero value of every enum is the package default.

package field

import (
	"strconv"
	"strings"
)

// Pattern selects the fill rule applied to the interior of a new field.
type Pattern int

const (
	// Random fills the interior with values uniform in [-1, 1).
	Random Pattern = iota

	// HorizontalBars sets every other row of the upper interior half to 1.
	HorizontalBars

	// VerticalBars sets every other column of the left interior half to 1.
	VerticalBars

	// Square sets a centred block of half-extent NY/4 × NX/4 to 1, ignoring the halo.
	Square
)

var patternNames = [...]string{
	Random:         "random",
	HorizontalBars: "horizontal-bars",
	VerticalBars:   "vertical-bars",
	Square:         "square",
}

// Valid reports whether p is one of the four known patterns.
func (p Pattern) Valid() bool { return p >= Random && p <= Square }

// String returns the dashed lower-case name, e.g. "horizontal-bars".
func (p Pattern) String() string {
	if !p.Valid() {
		return "Pattern(" + strconv.Itoa(int(p)) + ")"
	}

	return patternNames[p]
}

// ParsePattern maps a name such as "vertical-bars" to its Pattern.
// Matching is case-insensitive. Unknown names return ErrUnknownPattern.
func ParsePattern(s string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range patternNames {
		if name == key {
			return Pattern(i), nil
		}
	}

	return 0, fieldErrorf("ParsePattern", ErrUnknownPattern, "%q", s)
}

// AxisOrder describes how the axes of a returned field map onto the logical
// (Z,Y,X) axes. The name lists the logical axis of each dimension, slowest
// first in row-major terms: XYZ means dimension 0 is X, 1 is Y, 2 is Z.
type AxisOrder int

const (
	ZYX AxisOrder = iota // canonical
	XZY
	YXZ
	XYZ
	ZXY
	YZX
)

var axisOrderNames = [...]string{
	ZYX: "ZYX",
	XZY: "XZY",
	YXZ: "YXZ",
	XYZ: "XYZ",
	ZXY: "ZXY",
	YZX: "YZX",
}

// axisTable holds, per order, the canonical axis placed at each output
// dimension (0=Z, 1=Y, 2=X).
var axisTable = [...][3]int{
	ZYX: {0, 1, 2},
	XZY: {2, 0, 1},
	YXZ: {1, 2, 0},
	XYZ: {2, 1, 0},
	ZXY: {0, 2, 1},
	YZX: {1, 0, 2},
}

// Valid reports whether o is one of the six known orders.
func (o AxisOrder) Valid() bool { return o >= ZYX && o <= YZX }

// String returns the three-letter name, e.g. "XZY".
func (o AxisOrder) String() string {
	if !o.Valid() {
		return "AxisOrder(" + strconv.Itoa(int(o)) + ")"
	}

	return axisOrderNames[o]
}

// Axes returns the permutation that takes a canonical (Z,Y,X) field to this
// order: output dimension d is canonical axis Axes()[d].
// Invalid orders return the identity; callers validate first.
func (o AxisOrder) Axes() [3]int {
	if !o.Valid() {
		return [3]int{0, 1, 2}
	}

	return axisTable[o]
}

// Inverse returns the permutation that takes a field in this order back to
// canonical (Z,Y,X).
func (o AxisOrder) Inverse() [3]int {
	return invertAxes(o.Axes())
}

// ParseAxisOrder maps a name such as "xzy" to its AxisOrder.
func ParseAxisOrder(s string) (AxisOrder, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for i, name := range axisOrderNames {
		if name == key {
			return AxisOrder(i), nil
		}
	}

	return 0, fieldErrorf("ParseAxisOrder", ErrUnknownAxisOrder, "%q", s)
}

// Layout is the physical stride order of a field's storage.
type Layout int

const (
	// RowMajor stores the last dimension contiguously ("C" order).
	RowMajor Layout = iota

	// ColumnMajor stores the first dimension contiguously ("F" order).
	ColumnMajor
)

// Valid reports whether l is RowMajor or ColumnMajor.
func (l Layout) Valid() bool { return l == RowMajor || l == ColumnMajor }

// String returns "C" or "F".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "C"
	case ColumnMajor:
		return "F"
	default:
		return "Layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLayout accepts "C", "row-major", "F" or "column-major".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "row-major", "rowmajor":
		return RowMajor, nil
	case "f", "column-major", "colmajor", "columnmajor":
		return ColumnMajor, nil
	default:
		return 0, fieldErrorf("ParseLayout", ErrUnknownLayout, "%q", s)
	}
}

// DType is the element precision of a field.
type DType int

const (
	// Float64 stores double-precision values.
	Float64 DType = iota

	// Float32 rounds every stored value through float32.
	Float32
)

// Valid reports whether d is Float64 or Float32.
func (d DType) Valid() bool { return d == Float64 || d == Float32 }

// String returns "float64" or "float32".
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "DType(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDType accepts "float64"/"f64"/"double" and "float32"/"f32"/"single".
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float64", "f64", "double":
		return Float64, nil
	case "float32", "f32", "single":
		return Float32, nil
	default:
		return 0, fieldErrorf("ParseDType", ErrUnknownDType, "%q", s)
	}
}

// round applies the dtype's precision to v.
func (d DType) round(v float64) float64 {
	if d == Float32 {
		return float64(float32(v))
	}

	return v
}

// invertAxes returns inv such that inv[axes[d]] = d.
func invertAxes(axes [3]int) [3]int {
	var inv [3]int
	for d, a := range axes {
		inv[a] = d
	}

	return inv
}

// validAxes reports whether axes is a permutation of {0,1,2}.
func validAxes(axes [3]int) bool {
	var seen [3]bool
	for _, a := range axes {
		if a < 0 || a > 2 || seen[a] {
			return false
		}
		seen[a] = true
	}

	return true
}
