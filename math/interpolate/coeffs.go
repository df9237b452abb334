package interpolate

// calcCoeffs fills in the polynomial coefficients of every segment from the
// solution of sys. For multiPoint systems sol holds the interior first
// derivatives, so each segment is the Hermite cubic matching its endpoint
// values and endpoint derivatives. Continuity of the first derivative
// follows from neighbouring segments sharing a derivative at their common
// node.
func (sp *Spline) calcCoeffs(sys *splineSystem, ys, bc, sol []float64) {
	switch sys.kind {
	case twoPoint:
		sp.a[0], sp.b[0] = sol[0], sol[1]
		sp.c[0], sp.d[0] = bc[0], ys[0]

	case multiPoint:
		dxs, dys := sys.dxs, sys.dys
		for i := range dxs {
			// Derivatives at the left and right ends of segment i.
			c0, c1 := bc[0], bc[1]
			if i > 0 {
				c0 = sol[i-1]
			}
			if i < len(sol) {
				c1 = sol[i]
			}

			dx, dy := dxs[i], dys[i]
			sp.a[i] = ((c0+c1)*dx - 2*dy) / (dx * dx * dx)
			sp.b[i] = (3*dy - (c1+2*c0)*dx) / (dx * dx)
			sp.c[i] = c0
			sp.d[i] = ys[i]
		}
	}
}
