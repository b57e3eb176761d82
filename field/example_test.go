package field_test

import (
	"fmt"

	"github.com/katalvlaran/stencilkit/field"
)

// ExampleInitialize builds a square pattern and reads a few points.
func ExampleInitialize() {
	f, err := field.Initialize(4, 6, 6, field.WithPattern(field.Square))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	centre, _ := f.At(0, 2, 2)
	corner, _ := f.At(0, 0, 0)
	fmt.Println(f.Shape(), centre, corner)
	// Output:
	// [4 6 6] 1 0
}

// ExampleInitialize_axisOrder shows the shape permutation of XZY.
func ExampleInitialize_axisOrder() {
	f, _ := field.Initialize(2, 8, 10,
		field.WithPattern(field.VerticalBars),
		field.WithAxisOrder(field.XZY),
		field.WithLayout(field.ColumnMajor),
	)
	fmt.Println(f.Shape(), f.Layout(), f.Strides())
	// Output:
	// [10 2 8] F [1 10 20]
}

// ExampleInitialize_invalidHalo shows the error for an oversized halo.
func ExampleInitialize_invalidHalo() {
	_, err := field.Initialize(2, 6, 6, field.WithHalo(3))
	fmt.Println(err)
	// Output:
	// Initialize: halo=3 nx=6 ny=6: field: invalid argument: invalid halo width
}
