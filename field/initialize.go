// SPDX-License-Identifier: MIT
// Package: stencilkit/field
//
// initialize.go — pattern generation + axis permutation + layout enforcement.
//
// Contract:
//   • Initialize(nz, ny, nx, opts...) validates every argument before any
//     allocation and returns (nil, err) on failure; err wraps
//     ErrInvalidArgument and names the offending argument.
//   • Patterns are generated in canonical (Z,Y,X) order, then the axes are
//     permuted and the result is materialized in the requested layout.
//   • Only the Random pattern advances the Source.
//
// Validation order (first failure wins):
//   shape -> halo -> pattern -> axis order -> layout -> dtype.

package field

// MethodInitialize is the error context prefix for Initialize.
const MethodInitialize = "Initialize"

// Initialize returns a new nz×ny×nx field filled according to opts.
//
// Patterns (h = halo, all Z levels):
//   - Random:         [h, ny-h) × [h, nx-h) uniform in [-1, 1)
//   - HorizontalBars: rows h, h+2, ... < ny/2-h; columns [h, nx-h); value 1
//   - VerticalBars:   rows [h, ny-h); columns h, h+2, ... < nx/2-h; value 1
//   - Square:         rows [ny/2-ny/4, ny/2+ny/4) × cols [nx/2-nx/4, nx/2+nx/4); value 1
//
// The returned shape is the canonical (nz, ny, nx) permuted by the axis order.
//
// Random draws come from the WithSource/WithSeed stream. Without either, each
// call starts a fresh NewSource(DefaultSeed), so two default calls return the
// same values. Pass one shared Source to get a sequence of distinct fields.
//
// Complexity: O(nz*ny*nx) time and memory.
func Initialize(nz, ny, nx int, opts ...Option) (*Field, error) {
	cfg := newConfig(opts...)

	if err := validateInit(nz, ny, nx, cfg); err != nil {
		return nil, err
	}

	canon := newField([3]int{nz, ny, nx}, RowMajor, cfg.dtype)
	fillPattern(canon, cfg)

	if cfg.order == ZYX && cfg.layout == RowMajor {
		return canon, nil
	}

	return permute(canon, cfg.order.Axes(), cfg.layout), nil
}

// validateInit checks every argument against its domain.
func validateInit(nz, ny, nx int, cfg config) error {
	if nz <= 0 || ny <= 0 || nx <= 0 {
		return fieldErrorf(MethodInitialize, ErrBadShape, "nz=%d ny=%d nx=%d", nz, ny, nx)
	}
	if cfg.halo < 0 || cfg.halo >= nx/2 || cfg.halo >= ny/2 {
		return fieldErrorf(MethodInitialize, ErrBadHalo, "halo=%d nx=%d ny=%d", cfg.halo, nx, ny)
	}
	if !cfg.pattern.Valid() {
		return fieldErrorf(MethodInitialize, ErrUnknownPattern, "pattern=%d", int(cfg.pattern))
	}
	if !cfg.order.Valid() {
		return fieldErrorf(MethodInitialize, ErrUnknownAxisOrder, "axis_order=%d", int(cfg.order))
	}
	if !cfg.layout.Valid() {
		return fieldErrorf(MethodInitialize, ErrUnknownLayout, "layout=%d", int(cfg.layout))
	}
	if !cfg.dtype.Valid() {
		return fieldErrorf(MethodInitialize, ErrUnknownDType, "dtype=%d", int(cfg.dtype))
	}

	return nil
}

// fillPattern writes cfg.pattern into a canonical, row-major field.
func fillPattern(f *Field, cfg config) {
	nz, ny, nx := f.shape[0], f.shape[1], f.shape[2]
	h := cfg.halo

	switch cfg.pattern {
	case Random:
		rows, cols := ny-2*h, nx-2*h
		block := make([]float64, nz*rows*cols)
		cfg.src.fillSigned(block, cfg.dtype)
		var z, y, p int
		for z = 0; z < nz; z++ {
			for y = 0; y < rows; y++ {
				base := f.offset(z, y+h, h)
				copy(f.data[base:base+cols], block[p:p+cols])
				p += cols
			}
		}
	case HorizontalBars:
		// rows stop at ny/2-h, not ny-h: only the upper half carries bars
		fillBox(f, h, ny/2-h, 2, h, nx-h, 1)
	case VerticalBars:
		fillBox(f, h, ny-h, 1, h, nx/2-h, 2)
	case Square:
		fillBox(f, ny/2-ny/4, ny/2+ny/4, 1, nx/2-nx/4, nx/2+nx/4, 1)
	}
}

// fillBox sets f[:, y0:y1:ystep, x0:x1:xstep] = 1 on a row-major field.
// Empty ranges are a no-op.
func fillBox(f *Field, y0, y1, ystep, x0, x1, xstep int) {
	var z, y, x int
	for z = 0; z < f.shape[0]; z++ {
		for y = y0; y < y1; y += ystep {
			for x = x0; x < x1; x += xstep {
				f.data[f.offset(z, y, x)] = 1
			}
		}
	}
}
