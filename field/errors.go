// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// errors.go — sentinel errors for the field package.
//
// Error policy:
//   • Every validation failure is an ErrInvalidArgument. Narrower sentinels
//     wrap it, so errors.Is(err, ErrInvalidArgument) holds for all of them
//     and callers may still branch on the precise cause.
//   • Implementations attach method context with fieldErrorf; sentinels are
//     never rebuilt from formatted strings.
//   • Algorithms MUST NOT panic on user input. Option constructors (WithX)
//     panic on programmer error only (nil Source).

package field

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error class reported by this package.
var ErrInvalidArgument = errors.New("field: invalid argument")

var (
	// ErrBadShape indicates a non-positive extent (NZ, NY or NX <= 0).
	ErrBadShape = fmt.Errorf("%w: extents must be > 0", ErrInvalidArgument)

	// ErrBadHalo indicates a halo width outside 0 <= h < NX/2, h < NY/2.
	ErrBadHalo = fmt.Errorf("%w: invalid halo width", ErrInvalidArgument)

	// ErrUnknownPattern indicates a Pattern value outside the closed set.
	ErrUnknownPattern = fmt.Errorf("%w: unknown pattern", ErrInvalidArgument)

	// ErrUnknownAxisOrder indicates an AxisOrder value outside the closed set.
	ErrUnknownAxisOrder = fmt.Errorf("%w: unknown axis order", ErrInvalidArgument)

	// ErrUnknownLayout indicates a Layout value other than RowMajor/ColumnMajor.
	ErrUnknownLayout = fmt.Errorf("%w: unknown memory layout", ErrInvalidArgument)

	// ErrUnknownDType indicates a DType value other than Float64/Float32.
	ErrUnknownDType = fmt.Errorf("%w: unknown element type", ErrInvalidArgument)

	// ErrBadAxes indicates that an axes argument is not a permutation of {0,1,2}.
	ErrBadAxes = fmt.Errorf("%w: axes must be a permutation of 0,1,2", ErrInvalidArgument)

	// ErrOutOfRange indicates a logical index outside the field's shape.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrNilField indicates a nil *Field receiver or argument.
	ErrNilField = fmt.Errorf("%w: nil field", ErrInvalidArgument)
)

// fieldErrorf wraps err with the method name and a formatted detail, e.g.
// "Initialize: halo=3 nx=6 ny=6: field: invalid argument: invalid halo width".
//
// Complexity: O(len(format) + Σlen(args)).
func fieldErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
