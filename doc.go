// Package stencilkit is the toolbox around a stencil-computation course
// project: it builds the test fields that stencil kernels consume, shows
// them, times a reference kernel and keeps the timings comparable across
// machines.
//
// 🚀 What is in the box?
//
//	• field/    — 3D fields in any of six axis orders, C or Fortran layout,
//	              float64 or float32, filled with random, bar or square patterns
//	• plot/     — Z-slice extraction, PNG heat maps (gonum/plot), ASCII preview
//	• fieldio/  — HDF5 export of a field
//	• stencil/  — periodic halo exchange and 4th-order diffusion on a grid
//	• bench/    — %timeit-style repeat×number timing
//	• results/  — CSV timing log: save, filter, summarize, compare
//	• matrix/   — the dense 2D container used for slices
//	• cmd/stencilkit — cobra CLI tying the above to a viper config file
//
// Quick example:
//
//	f, _ := field.Initialize(32, 64, 64,
//		field.WithPattern(field.Square),
//		field.WithAxisOrder(field.XZY),
//		field.WithLayout(field.ColumnMajor))
//	_ = plot.SaveFile("in.png", f, field.XZY, 0)
//
// A field initialized with the same seed holds the same logical values in
// every axis order and layout, so kernels written for different memory
// orders can be checked against each other with field.Equal.
//
//	go install github.com/katalvlaran/stencilkit/cmd/stencilkit@latest
package stencilkit
