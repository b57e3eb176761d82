// Package stencil is the reference workload timed by the benchmark tooling:
// a 4th-order diffusion on a 3D field with periodic boundaries.
//
// ⚙️ Usage:
//
//	f, _ := field.Initialize(32, 128, 128, field.WithPattern(field.Square), field.WithHalo(2))
//	out, err := stencil.Diffuse(f, 1.0/64, 2, 64)
//
// The field must be in canonical (Z,Y,X) order; any layout and dtype is
// accepted and preserved. Computation runs in float64 on a row-major Grid;
// the result is rounded to the input's dtype once at the end.
//
// Halo policy:
//
//   - Diffuse needs halo >= 2, since the second Laplacian reads one cell
//     beyond the first one's extended range.
//   - Periodic exchange needs the interior to be at least as wide as the halo.
package stencil
