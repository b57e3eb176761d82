// SPDX-License-Identifier: MIT
// Package: stencilkit/fieldio
//
// hdf5.go — dataset export through github.com/scigolib/hdf5.

package fieldio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stencilkit/field"
	"github.com/scigolib/hdf5"
)

// ErrEmptyName indicates a dataset name with no characters besides "/".
var ErrEmptyName = errors.New("fieldio: empty dataset name")

// Flatten returns the logical row-major contents of f, i.e. the order in
// which WriteHDF5 stores them.
func Flatten(f *field.Field) []float64 {
	return f.Values()
}

// datasetPath prefixes name with "/" when needed.
func datasetPath(name string) (string, error) {
	trimmed := strings.Trim(name, "/")
	if trimmed == "" {
		return "", ErrEmptyName
	}

	return "/" + trimmed, nil
}

// WriteHDF5 creates (or truncates) path and writes f as a single 3D dataset
// called name. Float32 fields are stored as 32-bit floats.
func WriteHDF5(path string, f *field.Field, name string) (err error) {
	if f == nil {
		return fmt.Errorf("WriteHDF5: %w", field.ErrNilField)
	}
	dsPath, err := datasetPath(name)
	if err != nil {
		return fmt.Errorf("WriteHDF5: %q: %w", name, err)
	}

	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	if err != nil {
		return fmt.Errorf("WriteHDF5: create %s: %w", path, err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteHDF5: close %s: %w", path, cerr)
		}
	}()

	s := f.Shape()
	dims := []uint64{uint64(s[0]), uint64(s[1]), uint64(s[2])}
	values := Flatten(f)

	switch f.DType() {
	case field.Float32:
		ds, err := fw.CreateDataset(dsPath, hdf5.Float32, dims)
		if err != nil {
			return fmt.Errorf("WriteHDF5: dataset %s: %w", dsPath, err)
		}
		buf := make([]float32, len(values))
		for i, v := range values {
			buf[i] = float32(v)
		}
		if err = ds.Write(buf); err != nil {
			return fmt.Errorf("WriteHDF5: write %s: %w", dsPath, err)
		}
	default:
		ds, err := fw.CreateDataset(dsPath, hdf5.Float64, dims)
		if err != nil {
			return fmt.Errorf("WriteHDF5: dataset %s: %w", dsPath, err)
		}
		if err = ds.Write(values); err != nil {
			return fmt.Errorf("WriteHDF5: write %s: %w", dsPath, err)
		}
	}

	return nil
}
