package mat

import (
	"math"

	"github.com/phil-mansfield/cspline/math/numerr"
)

// Tridiagonal is an n x n matrix whose only non-zero entries are on the
// main diagonal and the two diagonals adjacent to it.
//
// | Diag0  Super0                      |
// | Sub0   Diag1  Super1               |
// |        ..     ..     ..            |
// |               Sub(n-2)  Diag(n-1)  |
type Tridiagonal struct {
	Sub, Diag, Super []float64
}

// NewTridiagonal creates a Tridiagonal matrix from its sub-diagonal v,
// diagonal u, and super-diagonal w. The input slices are copied.
func NewTridiagonal(v, u, w []float64) (*Tridiagonal, error) {
	if err := checkBands("mat.NewTridiagonal", v, u, w); err != nil {
		return nil, err
	}

	t := &Tridiagonal{
		Sub:   make([]float64, len(v)),
		Diag:  make([]float64, len(u)),
		Super: make([]float64, len(w)),
	}
	copy(t.Sub, v)
	copy(t.Diag, u)
	copy(t.Super, w)
	return t, nil
}

// checkBands verifies that v, u, and w describe a tridiagonal matrix of
// size at least 2.
func checkBands(op string, v, u, w []float64) error {
	if len(u) < 2 {
		return numerr.New(numerr.BelowMinimumSize, op,
			"diagonal has %d elements, need at least 2", len(u))
	} else if len(v) != len(w) {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"sub-diagonal has %d elements but super-diagonal has %d",
			len(v), len(w))
	} else if len(u) != len(v)+1 {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"diagonal has %d elements but off-diagonals have %d",
			len(u), len(v))
	}
	return nil
}

// Size returns n for an n x n matrix.
func (t *Tridiagonal) Size() int { return len(t.Diag) }

// Dense expands t into full storage.
func (t *Tridiagonal) Dense() *Matrix {
	n := t.Size()
	m := NewMatrix(make([]float64, n*n), n, n)
	for i := 0; i < n; i++ {
		m.Vals[i*n+i] = t.Diag[i]
		if i > 0 {
			m.Vals[i*n+i-1] = t.Sub[i-1]
		}
		if i < n-1 {
			m.Vals[i*n+i+1] = t.Super[i]
		}
	}
	return m
}

// MultVector computes t * xs.
func (t *Tridiagonal) MultVector(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	if err := t.MultVectorAt(xs, out); err != nil {
		return nil, err
	}
	return out, nil
}

// MultVectorAt computes t * xs and writes the result to out.
func (t *Tridiagonal) MultVectorAt(xs, out []float64) error {
	n := t.Size()
	if len(xs) != n || len(out) != n {
		return numerr.New(numerr.RelativeSizeMismatch,
			"mat.Tridiagonal.MultVectorAt",
			"matrix has size %d but len(xs) = %d and len(out) = %d",
			n, len(xs), len(out))
	}

	for i := 0; i < n; i++ {
		sum := t.Diag[i] * xs[i]
		if i > 0 {
			sum += t.Sub[i-1] * xs[i-1]
		}
		if i < n-1 {
			sum += t.Super[i] * xs[i+1]
		}
		out[i] = sum
	}
	return nil
}

// Residual returns max_i |(t * xs - rs)_i|.
func (t *Tridiagonal) Residual(xs, rs []float64) (float64, error) {
	ax, err := t.MultVector(xs)
	if err != nil {
		return 0, err
	}
	if len(rs) != len(ax) {
		return 0, numerr.New(numerr.RelativeSizeMismatch,
			"mat.Tridiagonal.Residual",
			"matrix has size %d but len(rs) = %d", len(ax), len(rs))
	}

	worst := 0.0
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-rs[i]))
	}
	return worst, nil
}

// LU returns the LU decomposition of t.
func (t *Tridiagonal) LU() (*LUFactors, error) {
	return Factorize(t.Sub, t.Diag, t.Super)
}

// SolveVector solves t * xs = rs for xs.
func (t *Tridiagonal) SolveVector(rs []float64) ([]float64, error) {
	luf, err := t.LU()
	if err != nil {
		return nil, err
	}
	return luf.SolveVector(rs)
}
