// Package fieldio exports fields to HDF5 so they can be opened by h5py and
// the other tools of the course pipeline.
//
// ⚙️ Usage:
//
//	f, _ := field.Initialize(4, 32, 32, field.WithAxisOrder(field.XYZ))
//	err := fieldio.WriteHDF5("field.h5", f, "in_field")
//
// The dataset holds the logical row-major contents of the field in the
// field's own axis order, so a Fortran-ordered field is written in the same
// index space as a C-ordered one.
package fieldio
