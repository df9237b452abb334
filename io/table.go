package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/cspline/math/mat"
)

// ReadNodes reads the x and y values of a spline's nodes from the given
// columns of a text table. No ordering checks are done here;
// interpolate.NewSpline reports those.
func ReadNodes(file string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(file, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("reading nodes from %s: %w", file, err)
	}
	return cols[0], cols[1], nil
}

// ReadSystem reads a tridiagonal system stored one matrix row per line. The
// columns are given in the order sub-diagonal, diagonal, super-diagonal,
// right-hand side. The sub-diagonal element of the first row and the
// super-diagonal element of the last row are outside the matrix and are
// ignored.
func ReadSystem(file string, colIdxs [4]int) (*mat.Tridiagonal, []float64, error) {
	cols, err := table.ReadTable(file, colIdxs[:], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("reading system from %s: %w", file, err)
	}
	sub, diag, super, rhs := cols[0], cols[1], cols[2], cols[3]

	n := len(diag)
	if n < 2 {
		// Let the matrix constructor report the size problem.
		_, err := mat.NewTridiagonal(nil, diag, nil)
		return nil, nil, fmt.Errorf("reading system from %s: %w", file, err)
	}

	tri, err := mat.NewTridiagonal(sub[1:], diag, super[:n-1])
	if err != nil {
		return nil, nil, fmt.Errorf("reading system from %s: %w", file, err)
	}
	return tri, rhs, nil
}
