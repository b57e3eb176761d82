package plot_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/katalvlaran/stencilkit/matrix"
	"github.com/katalvlaran/stencilkit/plot"
	"github.com/stretchr/testify/require"
)

// TestSliceUndoesAxisOrder checks that the slice of a permuted field equals
// the slice of the canonical one.
func TestSliceUndoesAxisOrder(t *testing.T) {
	canon, err := field.Initialize(3, 6, 8, field.WithSeed(1), field.WithHalo(1))
	require.NoError(t, err)
	want, err := plot.Slice(canon, field.ZYX, 2)
	require.NoError(t, err)
	require.Equal(t, 6, want.Rows())
	require.Equal(t, 8, want.Cols())

	for _, order := range []field.AxisOrder{field.XZY, field.YXZ, field.XYZ, field.ZXY, field.YZX} {
		f, err := field.Initialize(3, 6, 8, field.WithSeed(1), field.WithHalo(1),
			field.WithAxisOrder(order), field.WithLayout(field.ColumnMajor))
		require.NoError(t, err)
		got, err := plot.Slice(f, order, 2)
		require.NoError(t, err)
		ok, err := matrix.AllClose(want, got, 0, 0)
		require.NoError(t, err)
		require.True(t, ok, "order=%s", order)
	}
}

// TestSliceValues pins the square pattern on one level.
func TestSliceValues(t *testing.T) {
	f, err := field.Initialize(2, 4, 4, field.WithPattern(field.Square))
	require.NoError(t, err)
	s, err := plot.Slice(f, field.ZYX, 1)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0, 0]\n[0, 1, 1, 0]\n[0, 1, 1, 0]\n[0, 0, 0, 0]\n", s.String())
}

// TestSliceOutOfRange rejects Z levels outside the field.
func TestSliceOutOfRange(t *testing.T) {
	f, err := field.Initialize(2, 4, 4)
	require.NoError(t, err)
	_, err = plot.Slice(f, field.ZYX, 2)
	require.ErrorIs(t, err, plot.ErrSliceOutOfRange)
	_, err = plot.Slice(f, field.AxisOrder(99), 0)
	require.ErrorIs(t, err, field.ErrUnknownAxisOrder)
}

// TestASCII checks glyph mapping of the extremes and zero.
func TestASCII(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{-1, 0, 1, -5, 5, 0})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, plot.ASCII(&buf, m))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, " +@", lines[0])
	require.Equal(t, " @+", lines[1])
}

// TestRenderPNG decodes the produced image and checks its size.
func TestRenderPNG(t *testing.T) {
	f, err := field.Initialize(2, 16, 16, field.WithPattern(field.HorizontalBars), field.WithHalo(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, plot.Render(&buf, f, field.ZYX, 0, plot.WithTitle("bars")))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 700, img.Bounds().Dx())
	require.Equal(t, 500, img.Bounds().Dy())

	path := filepath.Join(t.TempDir(), "slice.png")
	require.NoError(t, plot.SaveFile(path, f, field.ZYX, 1, plot.WithDPI(50)))
}

// TestRenderAutoRange fits the colour scale to the data.
func TestRenderAutoRange(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{0, 2, 4, 6, 8, 10})
	require.NoError(t, err)

	var fixed, fitted bytes.Buffer
	require.NoError(t, plot.RenderSlice(&fixed, m))
	require.NoError(t, plot.RenderSlice(&fitted, m, plot.WithAutoRange()))
	require.NotEqual(t, fixed.Bytes(), fitted.Bytes())

	flat, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, plot.RenderSlice(&bytes.Buffer{}, flat, plot.WithAutoRange()))
}

// TestRenderTooSmall rejects degenerate slices.
func TestRenderTooSmall(t *testing.T) {
	m, err := matrix.NewDense(1, 5)
	require.NoError(t, err)
	require.ErrorIs(t, plot.RenderSlice(&bytes.Buffer{}, m), plot.ErrSliceTooSmall)
	require.Panics(t, func() { plot.WithRange(1, 1) })
}

// TestSaveFileKeepsFileOnError leaves an existing image untouched when the
// slice index is invalid.
func TestSaveFileKeepsFileOnError(t *testing.T) {
	f, err := field.Initialize(2, 8, 8, field.WithPattern(field.Square))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "slice.png")
	require.NoError(t, plot.SaveFile(path, f, field.ZYX, 0))
	good, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, good)

	require.ErrorIs(t, plot.SaveFile(path, f, field.ZYX, 99), plot.ErrSliceOutOfRange)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, good, after)
}
