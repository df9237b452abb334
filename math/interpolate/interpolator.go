/*package interpolate fits clamped cubic splines through tables of points.

A clamped spline passes through every point in the table and has the first
derivatives requested by the caller at both ends of the table. Fitting
reduces to a tridiagonal system in the first derivatives at the interior
nodes, which is solved with the mat package.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) (float64, error)
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
	// Domain returns the range of x values which can be evaluated.
	Domain() (lo, hi float64)
}

var (
	_ Interpolator = &Spline{}
)
