/*mat contains routines for factoring and solving tridiagonal linear systems.

The kernel is split the same way as a dense LU solver: Factorize produces
an LUFactors instance, and Forward/Backward perform the two triangular
substitutions. Solve chains all of them for callers that don't need to
manage the factors themselves. No pivoting is performed, so these routines
are only appropriate for systems which are diagonally dominant or otherwise
known to have non-zero pivots, such as the systems produced by spline
construction.

Errors returned by this package are always *numerr.Error values.

A small dense Matrix type is also provided for expanding a tridiagonal
system into full storage and computing residuals.
*/
package mat

import (
	"fmt"
)

// Matrix represents a dense matrix of float64 values stored in row-major
// order.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// At returns the element at row i and column j.
func (m *Matrix) At(i, j int) float64 { return m.Vals[i*m.Width+j] }

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Height != m1.Height || out.Width != m2.Width {
		panic("out matrix has the wrong dimensions.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*out.Width + j
			for k := 0; k < m1.Width; k++ {
				out.Vals[outIdx] += m1.Vals[off+k] * m2.Vals[k*m2.Width+j]
			}
		}
	}

	return out
}

// MultVector computes m * xs.
func (m *Matrix) MultVector(xs []float64) []float64 {
	if len(xs) != m.Width {
		panic(fmt.Sprintf(
			"len(xs) = %d, but matrix has width %d.", len(xs), m.Width,
		))
	}

	out := make([]float64, m.Height)
	for i := range out {
		off := i * m.Width
		sum := 0.0
		for j, x := range xs {
			sum += m.Vals[off+j] * x
		}
		out[i] = sum
	}
	return out
}
