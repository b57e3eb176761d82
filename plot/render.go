// SPDX-License-Identifier: MIT
// Package: stencilkit/plot
//
// render.go — heat-map rendering of a field slice to PNG.
//
// Defaults: 7in × 5in at 100 dpi, colour scale fixed to [-1, 1], row 0 drawn
// at the top (image origin), colour bar on the right. Values outside the
// colour range are clipped before drawing.

package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/matrix"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrSliceTooSmall indicates a slice with fewer than 2 rows or columns,
// which cannot be drawn as a heat map.
var ErrSliceTooSmall = errors.New("plot: slice must be at least 2x2")

// Option customizes Render.
type Option func(*config)

type config struct {
	title      string
	vmin, vmax float64
	width      vg.Length
	height     vg.Length
	dpi        int
	colors     int
	autoRange  bool
}

const (
	defaultVMin   = -1.0
	defaultVMax   = 1.0
	defaultDPI    = 100
	defaultColors = 64
	colorBarWidth = 1 * vg.Inch
)

func newConfig(opts ...Option) config {
	cfg := config{
		vmin:   defaultVMin,
		vmax:   defaultVMax,
		width:  7 * vg.Inch,
		height: 5 * vg.Inch,
		dpi:    defaultDPI,
		colors: defaultColors,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithRange sets the colour scale limits. Panics unless vmin < vmax.
func WithRange(vmin, vmax float64) Option {
	if !(vmin < vmax) {
		panic("plot: WithRange requires vmin < vmax")
	}

	return func(c *config) { c.vmin, c.vmax = vmin, vmax }
}

// WithAutoRange fits the colour scale to the finite extrema of the slice.
// A constant slice keeps the configured range.
func WithAutoRange() Option {
	return func(c *config) { c.autoRange = true }
}

// WithDPI sets the output resolution. Panics if dpi <= 0.
func WithDPI(dpi int) Option {
	if dpi <= 0 {
		panic("plot: WithDPI(dpi<=0)")
	}

	return func(c *config) { c.dpi = dpi }
}

// sliceGrid adapts a Dense slice to plotter.GridXYZ (c = column/X, r = row/Y).
type sliceGrid struct{ m *matrix.Dense }

func (g sliceGrid) Dims() (c, r int) { return g.m.Cols(), g.m.Rows() }

func (g sliceGrid) Z(c, r int) float64 {
	v, _ := g.m.At(r, c)
	return v
}

func (g sliceGrid) X(c int) float64 { return float64(c) }

func (g sliceGrid) Y(r int) float64 { return float64(r) }

// RenderSlice writes slice as a PNG heat map to w.
func RenderSlice(w io.Writer, slice *matrix.Dense, opts ...Option) error {
	if slice == nil {
		return fmt.Errorf("RenderSlice: %w", matrix.ErrNilMatrix)
	}
	if slice.Rows() < 2 || slice.Cols() < 2 {
		return fmt.Errorf("RenderSlice: %dx%d: %w", slice.Rows(), slice.Cols(), ErrSliceTooSmall)
	}
	cfg := newConfig(opts...)
	if cfg.autoRange {
		if lo, hi, err := matrix.MinMax(slice); err == nil && lo < hi {
			cfg.vmin, cfg.vmax = lo, hi
		}
	}

	clipped, err := matrix.Clip(slice, cfg.vmin, cfg.vmax)
	if err != nil {
		return fmt.Errorf("RenderSlice: %w", err)
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(cfg.vmin)
	cmap.SetMax(cfg.vmax)

	heat := plotter.NewHeatMap(sliceGrid{m: clipped}, cmap.Palette(cfg.colors))
	heat.Min, heat.Max = cfg.vmin, cfg.vmax

	p := gplot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = gplot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(heat)

	bar := gplot.New()
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: cfg.colors})

	img := vgimg.NewWith(vgimg.UseWH(cfg.width, cfg.height), vgimg.UseDPI(cfg.dpi))
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -colorBarWidth, 0, 0))
	bar.Draw(draw.Crop(dc, cfg.width-colorBarWidth, 0, 0, 0))

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("RenderSlice: write png: %w", err)
	}

	return nil
}

// Render extracts the Z=k slice of f (stored in order) and writes it to w.
func Render(w io.Writer, f *field.Field, order field.AxisOrder, k int, opts ...Option) error {
	slice, err := Slice(f, order, k)
	if err != nil {
		return err
	}

	return RenderSlice(w, slice, opts...)
}

// SaveFile renders the Z=k slice of f to a PNG file at path. The file is
// only touched once the image has been rendered, so a failed call leaves an
// existing file intact.
func SaveFile(path string, f *field.Field, order field.AxisOrder, k int, opts ...Option) error {
	var buf bytes.Buffer
	if err := Render(&buf, f, order, k, opts...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	return nil
}
