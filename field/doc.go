// Package field builds synthetic 3D fields for validating and benchmarking
// stencil codes.
//
// 🚀 What is a field?
//
//	A dense NZ×NY×NX array of floating-point values. Internally every field is
//	generated in canonical (Z,Y,X) order, then permuted to the requested logical
//	axis order and re-materialized in the requested memory layout.
//
// ✨ Key features:
//
//   - four fill patterns: Random, HorizontalBars, VerticalBars, Square
//   - six axis orders: ZYX, XZY, YXZ, XYZ, ZXY, YZX
//   - row-major ("C") or column-major ("F") physical layout
//   - float64 or float32 element precision
//   - explicit, seedable random Source (no hidden global state)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stencilkit/field"
//
//	src := field.NewSource(field.DefaultSeed)
//	f, err := field.Initialize(64, 128, 128,
//		field.WithPattern(field.Square),
//		field.WithHalo(2),
//		field.WithAxisOrder(field.XYZ),
//		field.WithLayout(field.ColumnMajor),
//		field.WithSource(src),
//	)
//	if errors.Is(err, field.ErrInvalidArgument) {
//		// fix the arguments and retry
//	}
//
// Halo:
//
//	The halo is a border of width h on the Y and X axes (never Z). Patterns
//	are applied to the interior [h, NY-h) × [h, NX-h); Square ignores it.
//	The width must satisfy 0 <= h < NX/2 and h < NY/2 (integer division).
//
// Reproducibility:
//
//	Random draws come from a Source. Two Sources with the same seed produce
//	identical sequences of fields when called in the same order. A Source is
//	safe for concurrent use; each Initialize call draws its block atomically.
package field
