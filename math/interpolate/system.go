package interpolate

import (
	"github.com/phil-mansfield/cspline/math/mat"
	"github.com/phil-mansfield/cspline/math/numerr"
)

// checkTable validates a spline table before any numeric work is done.
func checkTable(op string, xs, ys, bc []float64) error {
	if len(xs) < 2 {
		return numerr.New(numerr.BelowMinimumSize, op,
			"table has %d nodes, need at least 2", len(xs))
	} else if len(xs) != len(ys) {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"table has len(xs) = %d but len(ys) = %d", len(xs), len(ys))
	}
	if err := checkNodes(op, xs); err != nil {
		return err
	}
	if len(bc) != 2 {
		return numerr.New(numerr.BoundaryConditionCount, op,
			"got %d boundary derivatives, need exactly 2", len(bc))
	}
	return nil
}

// checkNodes verifies that xs are distinct and strictly increasing.
func checkNodes(op string, xs []float64) error {
	seen := make(map[float64]int, len(xs))
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return numerr.New(numerr.DuplicateNode, op,
				"xs[%d] = xs[%d] = %g", j, i, x)
		}
		seen[x] = i
	}

	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			return numerr.New(numerr.UnorderedNode, op,
				"xs[%d] = %g does not follow xs[%d] = %g",
				i+1, xs[i+1], i, xs[i])
		}
	}
	return nil
}

type systemKind int

const (
	// twoPoint systems solve for the cubic and quadratic coefficients of
	// the only segment directly.
	twoPoint systemKind = iota
	// multiPoint systems solve for the first derivatives at the interior
	// nodes.
	multiPoint
)

// splineSystem is the tridiagonal system whose solution determines a
// spline's coefficients.
type splineSystem struct {
	kind             systemKind
	sub, diag, super []float64
	rhs              []float64
	// dxs and dys are the per-segment displacements.
	dxs, dys []float64
}

// buildSystem assembles the system for a table which has already passed
// checkTable.
func buildSystem(xs, ys, bc []float64) *splineSystem {
	segs := len(xs) - 1
	sys := &splineSystem{
		dxs: make([]float64, segs),
		dys: make([]float64, segs),
	}
	for i := 0; i < segs; i++ {
		sys.dxs[i] = xs[i+1] - xs[i]
		sys.dys[i] = ys[i+1] - ys[i]
	}

	if segs == 1 {
		sys.twoPoint(bc)
	} else {
		sys.multiPoint(bc)
	}
	return sys
}

// twoPoint sets up the equations
//
// a dx^3 + b dx^2 = dy - c0 dx
// 3 a dx^2 + 2 b dx = c1 - c0
//
// for the single segment between two nodes.
func (sys *splineSystem) twoPoint(bc []float64) {
	dx, dy := sys.dxs[0], sys.dys[0]

	sys.kind = twoPoint
	sys.sub = []float64{3 * dx * dx}
	sys.diag = []float64{dx * dx * dx, 2 * dx}
	sys.super = []float64{dx * dx}
	sys.rhs = []float64{dy - bc[0]*dx, bc[1] - bc[0]}
}

// multiPoint sets up the continuity equations for the interior first
// derivatives. Row r corresponds to node j = r + 1:
//
// dx_j c_j-1 + 2 (dx_j-1 + dx_j) c_j + dx_j-1 c_j+1 =
//     3 (dy_j-1/dx_j-1 dx_j + dy_j/dx_j dx_j-1)
//
// The known end derivatives c_0 and c_n-1 are moved to the right-hand side.
func (sys *splineSystem) multiPoint(bc []float64) {
	dxs, dys := sys.dxs, sys.dys
	m := len(dxs) - 1

	sys.kind = multiPoint
	sys.sub = make([]float64, m-1)
	sys.diag = make([]float64, m)
	sys.super = make([]float64, m-1)
	sys.rhs = make([]float64, m)

	for r := 0; r < m; r++ {
		sys.diag[r] = 2 * (dxs[r] + dxs[r+1])
		sys.rhs[r] = 3 * (dys[r]/dxs[r]*dxs[r+1] + dys[r+1]/dxs[r+1]*dxs[r])
		if r < m-1 {
			sys.sub[r] = dxs[r+2]
			sys.super[r] = dxs[r]
		}
	}

	sys.rhs[0] -= dxs[1] * bc[0]
	sys.rhs[m-1] -= dxs[m-1] * bc[1]
}

// solve solves the system. A table of three nodes has a single interior
// derivative, which is found directly since the tridiagonal kernel needs at
// least two unknowns.
func (sys *splineSystem) solve() ([]float64, error) {
	if len(sys.diag) == 1 {
		return []float64{sys.rhs[0] / sys.diag[0]}, nil
	}

	luf, err := mat.Factorize(sys.sub, sys.diag, sys.super)
	if err != nil {
		return nil, err
	}
	return luf.SolveVector(sys.rhs)
}
