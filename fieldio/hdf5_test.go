package fieldio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/stretchr/testify/require"
)

func TestDatasetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"in_field", "/in_field"},
		{"/in_field", "/in_field"},
		{"out/", "/out"},
	}
	for _, tc := range cases {
		got, err := datasetPath(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
	_, err := datasetPath("//")
	require.ErrorIs(t, err, ErrEmptyName)
}

// TestFlattenFollowsLogicalOrder checks that layout does not change the export.
func TestFlattenFollowsLogicalOrder(t *testing.T) {
	c, err := field.Initialize(2, 6, 6, field.WithSeed(7))
	require.NoError(t, err)
	fo, err := c.AsLayout(field.ColumnMajor)
	require.NoError(t, err)

	require.Equal(t, Flatten(c), Flatten(fo))
	require.NotEqual(t, c.Data(), fo.Data())
}

func TestWriteHDF5(t *testing.T) {
	dir := t.TempDir()
	for _, dt := range []field.DType{field.Float64, field.Float32} {
		f, err := field.Initialize(3, 8, 10, field.WithDType(dt), field.WithAxisOrder(field.XZY))
		require.NoError(t, err)

		path := filepath.Join(dir, dt.String()+".h5")
		require.NoError(t, WriteHDF5(path, f, "in_field"))

		st, err := os.Stat(path)
		require.NoError(t, err)
		require.Greater(t, st.Size(), int64(3*8*10*4))
	}
}

func TestWriteHDF5Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.h5")
	require.ErrorIs(t, WriteHDF5(path, nil, "f"), field.ErrNilField)

	f, err := field.Initialize(1, 4, 4)
	require.NoError(t, err)
	require.ErrorIs(t, WriteHDF5(path, f, ""), ErrEmptyName)
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
