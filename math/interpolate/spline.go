package interpolate

import (
	"github.com/phil-mansfield/cspline/math/numerr"
)

// Spline represents a 1D clamped cubic spline which can be used to
// interpolate between points. On the segment starting at node i the spline
// is
//
// a_i t^3 + b_i t^2 + c_i t + d_i,  t = x - x_i
//
// A Spline is never modified after NewSpline returns, so it is safe to
// evaluate from multiple goroutines.
type Spline struct {
	nodes      []float64
	a, b, c, d []float64

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a spline through the table of x and y values with first
// derivative bc[0] at xs[0] and bc[1] at xs[len(xs)-1]. xs must be strictly
// increasing. The input slices are copied.
func NewSpline(xs, ys, bc []float64) (*Spline, error) {
	if err := checkTable("interpolate.NewSpline", xs, ys, bc); err != nil {
		return nil, err
	}

	sys := buildSystem(xs, ys, bc)
	sol, err := sys.solve()
	if err != nil {
		return nil, err
	}

	sp := newSpline(xs)
	sp.calcCoeffs(sys, ys, bc, sol)
	return sp, nil
}

// newSpline allocates a spline over a copy of the given nodes.
func newSpline(xs []float64) *Spline {
	n := len(xs)
	sp := &Spline{
		nodes: make([]float64, n),
		a:     make([]float64, n-1),
		b:     make([]float64, n-1),
		c:     make([]float64, n-1),
		d:     make([]float64, n-1),
	}
	copy(sp.nodes, xs)
	sp.dx = (xs[n-1] - xs[0]) / float64(n-1)
	return sp
}

// Domain returns the first and last nodes of the spline.
func (sp *Spline) Domain() (lo, hi float64) {
	return sp.nodes[0], sp.nodes[len(sp.nodes)-1]
}

// Segments returns the number of cubic segments in the spline.
func (sp *Spline) Segments() int { return len(sp.a) }

// Coeffs returns the coefficients of segment i.
func (sp *Spline) Coeffs(i int) (a, b, c, d float64) {
	return sp.a[i], sp.b[i], sp.c[i], sp.d[i]
}

func (sp *Spline) checkDomain(op string, x float64) error {
	lo, hi := sp.Domain()
	if !(x >= lo && x <= hi) {
		return numerr.New(numerr.OutOfDomain, op,
			"point %g out of bounds [%g, %g]", x, lo, hi)
	}
	return nil
}

// Eval computes the value of the spline at the given point.
func (sp *Spline) Eval(x float64) (float64, error) {
	if err := sp.checkDomain("interpolate.Spline.Eval", x); err != nil {
		return 0, err
	}
	return sp.eval(x), nil
}

func (sp *Spline) eval(x float64) float64 {
	i := sp.bsearch(x)
	dx := x - sp.nodes[i]
	a, b, c, d := sp.a[i], sp.b[i], sp.c[i], sp.d[i]
	return a*dx*dx*dx + b*dx*dx + c*dx + d
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience). Every point is checked before any output is
// written.
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	const op = "interpolate.Spline.EvalAll"
	for _, x := range xs {
		if err := sp.checkDomain(op, x); err != nil {
			return nil, err
		}
	}

	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) != len(xs) {
		return nil, numerr.New(numerr.RelativeSizeMismatch, op,
			"len(xs) = %d but len(out) = %d", len(xs), len(out[0]))
	}

	for i, x := range xs {
		out[0][i] = sp.eval(x)
	}
	return out[0], nil
}

// Diff computes the derivative of the spline at the given point to the
// specified order. Orders above 3 are identically zero. order must be
// non-negative.
func (sp *Spline) Diff(x float64, order int) (float64, error) {
	if order < 0 {
		panic("order must be non-negative.")
	}
	if err := sp.checkDomain("interpolate.Spline.Diff", x); err != nil {
		return 0, err
	}

	i := sp.bsearch(x)
	dx := x - sp.nodes[i]
	a, b, c, d := sp.a[i], sp.b[i], sp.c[i], sp.d[i]
	switch order {
	case 0:
		return a*dx*dx*dx + b*dx*dx + c*dx + d, nil
	case 1:
		return 3*a*dx*dx + 2*b*dx + c, nil
	case 2:
		return 6*a*dx + 2*b, nil
	case 3:
		return 6 * a, nil
	default:
		return 0, nil
	}
}

// bsearch returns the index of the largest node which is less than or
// equal to x, clamped so that the last node belongs to the last segment.
// x must be within the spline's domain.
func (sp *Spline) bsearch(x float64) int {
	n := len(sp.nodes)

	// Guess under the assumption of uniform spacing.
	guess := int((x - sp.nodes[0]) / sp.dx)
	if guess >= 0 && guess < n-1 &&
		sp.nodes[guess] <= x && x < sp.nodes[guess+1] {

		return guess
	}

	// Binary search. nodes[lo] <= x holds throughout and hi never drops
	// below 1, so lo <= n - 2.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= sp.nodes[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
