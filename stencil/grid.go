// SPDX-License-Identifier: MIT
// Package: stencilkit/stencil
//
// grid.go — flat row-major working storage and the stencil kernels.

package stencil

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stencilkit/field"
)

var (
	// ErrBadHalo indicates a halo too small for the kernel or too wide for the grid.
	ErrBadHalo = errors.New("stencil: invalid halo width")

	// ErrShapeMismatch indicates grids of different shapes passed together.
	ErrShapeMismatch = errors.New("stencil: shape mismatch")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("stencil: iterations must be > 0")

	// ErrBadExtend indicates an extend outside [0, halo].
	ErrBadExtend = errors.New("stencil: invalid extend")
)

// Grid is a canonical (Z,Y,X) row-major float64 buffer.
type Grid struct {
	NZ, NY, NX int
	Data       []float64
}

// NewGrid returns a zero grid.
func NewGrid(nz, ny, nx int) *Grid {
	return &Grid{NZ: nz, NY: ny, NX: nx, Data: make([]float64, nz*ny*nx)}
}

// FromField copies a canonical field into a Grid.
func FromField(f *field.Field) *Grid {
	s := f.Shape()
	return &Grid{NZ: s[0], NY: s[1], NX: s[2], Data: f.Values()}
}

// Field converts g back into a field with the given layout and dtype.
func (g *Grid) Field(layout field.Layout, dtype field.DType) (*field.Field, error) {
	return field.FromValues([3]int{g.NZ, g.NY, g.NX}, layout, dtype, g.Data)
}

// idx returns the flat position of (z,y,x).
func (g *Grid) idx(z, y, x int) int { return (z*g.NY+y)*g.NX + x }

// At returns the value at (z,y,x) without bounds checks.
func (g *Grid) At(z, y, x int) float64 { return g.Data[g.idx(z, y, x)] }

func (g *Grid) sameShape(o *Grid) bool {
	return g.NZ == o.NZ && g.NY == o.NY && g.NX == o.NX
}

// checkHalo validates that halo leaves an interior at least halo wide.
func (g *Grid) checkHalo(method string, halo, min int) error {
	if halo < min || g.NY-2*halo < halo || g.NX-2*halo < halo {
		return fmt.Errorf("%s: halo=%d ny=%d nx=%d: %w", method, halo, g.NY, g.NX, ErrBadHalo)
	}

	return nil
}

// UpdateHalo fills the halo of g by periodic copy from the opposite side of
// the interior. Y edges are copied first without corners, then X edges over
// the full height, which fills the corners.
//
// Complexity: O(NZ * halo * (NY+NX)).
func UpdateHalo(g *Grid, halo int) error {
	if err := g.checkHalo("UpdateHalo", halo, 0); err != nil {
		return err
	}
	if halo == 0 {
		return nil
	}
	ny, nx, h := g.NY, g.NX, halo
	var z, y, x int
	for z = 0; z < g.NZ; z++ {
		for y = 0; y < h; y++ {
			for x = h; x < nx-h; x++ {
				// bottom halo <- top of interior, top halo <- bottom of interior
				g.Data[g.idx(z, y, x)] = g.Data[g.idx(z, ny-2*h+y, x)]
				g.Data[g.idx(z, ny-h+y, x)] = g.Data[g.idx(z, h+y, x)]
			}
		}
		for y = 0; y < ny; y++ {
			for x = 0; x < h; x++ {
				g.Data[g.idx(z, y, x)] = g.Data[g.idx(z, y, nx-2*h+x)]
				g.Data[g.idx(z, y, nx-h+x)] = g.Data[g.idx(z, y, h+x)]
			}
		}
	}

	return nil
}

// Laplacian writes the 5-point Laplacian of in into out over
// [halo-extend, N-halo+extend) on Y and X, for every Z level. Cells of out
// outside that range are left untouched.
//
// Complexity: O(NZ*NY*NX).
func Laplacian(in, out *Grid, halo, extend int) error {
	if !in.sameShape(out) {
		return fmt.Errorf("Laplacian: %w", ErrShapeMismatch)
	}
	if extend < 0 || extend > halo-1 {
		return fmt.Errorf("Laplacian: extend=%d halo=%d: %w", extend, halo, ErrBadExtend)
	}
	if err := in.checkHalo("Laplacian", halo, 1); err != nil {
		return err
	}
	lo := halo - extend
	yhi, xhi := in.NY-halo+extend, in.NX-halo+extend
	nx := in.NX
	var z, y, x, p int
	for z = 0; z < in.NZ; z++ {
		for y = lo; y < yhi; y++ {
			for x = lo; x < xhi; x++ {
				p = in.idx(z, y, x)
				out.Data[p] = -4*in.Data[p] +
					in.Data[p-1] + in.Data[p+1] +
					in.Data[p-nx] + in.Data[p+nx]
			}
		}
	}

	return nil
}

// MinDiffusionHalo is the smallest halo Diffuse accepts.
const MinDiffusionHalo = 2

// Diffuse applies iters steps of out = in - alpha * lap(lap(in)) with a
// periodic halo refresh before each step, and returns a new field in the
// input's layout and dtype. f must be in canonical (Z,Y,X) order.
//
// Complexity: O(iters * NZ*NY*NX).
func Diffuse(f *field.Field, alpha float64, halo, iters int) (*field.Field, error) {
	if f == nil {
		return nil, fmt.Errorf("Diffuse: %w", field.ErrNilField)
	}
	if iters <= 0 {
		return nil, fmt.Errorf("Diffuse: iters=%d: %w", iters, ErrBadIterations)
	}
	in := FromField(f)
	if err := in.checkHalo("Diffuse", halo, MinDiffusionHalo); err != nil {
		return nil, err
	}
	out := NewGrid(in.NZ, in.NY, in.NX)
	copy(out.Data, in.Data)
	tmp := NewGrid(in.NZ, in.NY, in.NX)

	for n := 0; n < iters; n++ {
		if err := step(in, tmp, out, alpha, halo); err != nil {
			return nil, err
		}
		if n < iters-1 {
			in, out = out, in
		}
	}
	if err := UpdateHalo(out, halo); err != nil {
		return nil, err
	}

	return out.Field(f.Layout(), f.DType())
}

// step performs one diffusion update from in into out using tmp as scratch.
func step(in, tmp, out *Grid, alpha float64, halo int) error {
	if err := UpdateHalo(in, halo); err != nil {
		return err
	}
	if err := Laplacian(in, tmp, halo, 1); err != nil {
		return err
	}
	if err := Laplacian(tmp, out, halo, 0); err != nil {
		return err
	}
	var z, y, x, p int
	for z = 0; z < in.NZ; z++ {
		for y = halo; y < in.NY-halo; y++ {
			for x = halo; x < in.NX-halo; x++ {
				p = in.idx(z, y, x)
				out.Data[p] = in.Data[p] - alpha*out.Data[p]
			}
		}
	}

	return nil
}
