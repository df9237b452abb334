package mat

import (
	"github.com/phil-mansfield/cspline/math/numerr"
)

// Forward solves L * ys = delta for ys, where L is the lower bidiagonal
// matrix with diagonal alpha and sub-diagonal beta.
func Forward(beta, alpha, delta []float64) ([]float64, error) {
	ys := make([]float64, len(alpha))
	if err := ForwardAt(beta, alpha, delta, ys); err != nil {
		return nil, err
	}
	return ys, nil
}

// ForwardAt solves L * ys = delta for ys and writes the result to ys.
//
// delta and ys may point to the same physical memory.
func ForwardAt(beta, alpha, delta, ys []float64) error {
	if err := checkForward("mat.ForwardAt", beta, alpha, delta, ys); err != nil {
		return err
	}
	forwardSubst(beta, alpha, delta, ys)
	return nil
}

func checkForward(op string, beta, alpha, delta, ys []float64) error {
	if len(alpha) < 2 {
		return numerr.New(numerr.BelowMinimumSize, op,
			"diagonal has %d elements, need at least 2", len(alpha))
	} else if len(alpha) != len(delta) {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"diagonal has %d elements but right-hand side has %d",
			len(alpha), len(delta))
	} else if len(alpha) != len(beta)+1 {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"diagonal has %d elements but sub-diagonal has %d",
			len(alpha), len(beta))
	} else if len(ys) != len(alpha) {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"diagonal has %d elements but output has %d",
			len(alpha), len(ys))
	}

	for i, a := range alpha {
		if a == 0 {
			return numerr.New(numerr.ZeroDiagonal, op,
				"alpha[%d] is zero", i)
		}
	}
	return nil
}

// y_0 = delta_0 / alpha_0
// y_i = (delta_i - beta_i-1 y_i-1) / alpha_i
func forwardSubst(beta, alpha, delta, ys []float64) {
	ys[0] = delta[0] / alpha[0]
	for i := 1; i < len(alpha); i++ {
		ys[i] = (delta[i] - beta[i-1]*ys[i-1]) / alpha[i]
	}
}

// Backward solves U * xs = temp for xs, where U is the unit upper
// bidiagonal matrix with super-diagonal gamma.
func Backward(gamma, temp []float64) ([]float64, error) {
	xs := make([]float64, len(temp))
	if err := BackwardAt(gamma, temp, xs); err != nil {
		return nil, err
	}
	return xs, nil
}

// BackwardAt solves U * xs = temp for xs and writes the result to xs.
//
// temp and xs may point to the same physical memory.
func BackwardAt(gamma, temp, xs []float64) error {
	if err := checkBackward("mat.BackwardAt", gamma, temp, xs); err != nil {
		return err
	}
	backSubst(gamma, temp, xs)
	return nil
}

func checkBackward(op string, gamma, temp, xs []float64) error {
	if len(temp) < 2 {
		return numerr.New(numerr.BelowMinimumSize, op,
			"right-hand side has %d elements, need at least 2", len(temp))
	} else if len(temp) != len(gamma)+1 {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"right-hand side has %d elements but super-diagonal has %d",
			len(temp), len(gamma))
	} else if len(xs) != len(temp) {
		return numerr.New(numerr.RelativeSizeMismatch, op,
			"right-hand side has %d elements but output has %d",
			len(temp), len(xs))
	}
	return nil
}

// x_n-1 = temp_n-1
// x_i = temp_i - gamma_i x_i+1
func backSubst(gamma, temp, xs []float64) {
	n := len(temp)
	xs[n-1] = temp[n-1]
	for i := n - 2; i >= 0; i-- {
		xs[i] = temp[i] - gamma[i]*xs[i+1]
	}
}

// Solve solves the tridiagonal system whose LU decomposition is given by
// beta, alpha, and gamma for the right-hand side delta.
func Solve(beta, alpha, gamma, delta []float64) ([]float64, error) {
	xs := make([]float64, len(alpha))
	if err := SolveAt(beta, alpha, gamma, delta, xs); err != nil {
		return nil, err
	}
	return xs, nil
}

// SolveAt is the same as Solve, but writes the solution to xs. Every
// precondition of both substitutions is checked before either one starts.
//
// delta and xs may point to the same physical memory.
func SolveAt(beta, alpha, gamma, delta, xs []float64) error {
	if err := checkForward("mat.Solve", beta, alpha, delta, xs); err != nil {
		return err
	} else if err := checkBackward("mat.Solve", gamma, xs, xs); err != nil {
		return err
	}

	// A x = d -> (L U) x = d -> L (U x) = d -> L y = d
	forwardSubst(beta, alpha, delta, xs)
	backSubst(gamma, xs, xs)
	return nil
}
