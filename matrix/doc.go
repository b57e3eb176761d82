// Package matrix provides the small dense 2D matrix used to carry field
// slices between the field package and the plotting/reporting layers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Clip and AllClose helpers with a flat-slice fast path.
//   - MinMax for fitting colour maps to the data.
//
// All functions return sentinel errors (see errors.go) and never panic on
// user input.
package matrix
