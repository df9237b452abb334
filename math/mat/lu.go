package mat

import (
	"github.com/phil-mansfield/cspline/math/numerr"
)

// LUFactors contains the LU decomposition of a tridiagonal matrix. L is
// lower bidiagonal with diagonal Alpha and sub-diagonal Beta, and U is unit
// upper bidiagonal with super-diagonal Gamma. Beta is always a copy of the
// original sub-diagonal.
//
// Exporting this type allows calling routines to better manage their memory
// consumption and to prevent recomputing the same decomposition many times.
type LUFactors struct {
	Beta, Alpha, Gamma []float64
}

// NewLUFactors creates an LUFactors instance for an n x n matrix.
func NewLUFactors(n int) *LUFactors {
	if n < 2 {
		panic("n must be at least 2.")
	}
	return &LUFactors{
		Beta:  make([]float64, n-1),
		Alpha: make([]float64, n),
		Gamma: make([]float64, n-1),
	}
}

// Size returns n for the factors of an n x n matrix.
func (luf *LUFactors) Size() int { return len(luf.Alpha) }

// Factorize computes the LU decomposition of the tridiagonal matrix with
// sub-diagonal v, diagonal u, and super-diagonal w.
func Factorize(v, u, w []float64) (*LUFactors, error) {
	if err := checkBands("mat.Factorize", v, u, w); err != nil {
		return nil, err
	}

	luf := NewLUFactors(len(u))
	if err := factorize(v, u, w, luf); err != nil {
		return nil, err
	}
	return luf, nil
}

// FactorizeAt stores the LU decomposition of the given tridiagonal matrix
// at the specified location. luf must have been created with the same size
// as the matrix.
func FactorizeAt(v, u, w []float64, luf *LUFactors) error {
	if err := checkBands("mat.FactorizeAt", v, u, w); err != nil {
		return err
	}
	if len(luf.Alpha) != len(u) || len(luf.Beta) != len(v) ||
		len(luf.Gamma) != len(w) {

		return numerr.New(numerr.RelativeSizeMismatch, "mat.FactorizeAt",
			"factors have size %d but matrix has size %d",
			len(luf.Alpha), len(u))
	}
	return factorize(v, u, w, luf)
}

// factorize performs the elimination. Each step only depends on the
// previous pivot.
func factorize(v, u, w []float64, luf *LUFactors) error {
	alpha, gamma := luf.Alpha, luf.Gamma
	copy(luf.Beta, v)

	alpha[0] = u[0]
	for i := 1; i < len(u); i++ {
		if alpha[i-1] == 0 {
			return numerr.New(numerr.SingularPivot, "mat.Factorize",
				"pivot alpha[%d] is zero", i-1)
		}
		gamma[i-1] = w[i-1] / alpha[i-1]
		alpha[i] = u[i] - v[i-1]*gamma[i-1]
	}

	return nil
}

// SolveVector solves M * xs = rs for xs, where M is the matrix represented
// by luf.
func (luf *LUFactors) SolveVector(rs []float64) ([]float64, error) {
	return Solve(luf.Beta, luf.Alpha, luf.Gamma, rs)
}

// SolveVectorAt solves M * xs = rs for xs and writes the result to xs.
//
// rs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVectorAt(rs, xs []float64) error {
	return SolveAt(luf.Beta, luf.Alpha, luf.Gamma, rs, xs)
}

// Determinant computes the determinant of the matrix represented by the
// given LU decomposition.
func (luf *LUFactors) Determinant() float64 {
	d := 1.0
	for _, a := range luf.Alpha {
		d *= a
	}
	return d
}
