package interpolate

import (
	"os"
	"testing"

	plt "github.com/phil-mansfield/pyplot"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	xs[n-1] = hi
	return xs
}

// TestPyplotSpline draws a few splines for visual inspection. It needs a
// working python/matplotlib installation, so it only runs when CSPLINE_PLOT
// is set.
func TestPyplotSpline(t *testing.T) {
	if os.Getenv("CSPLINE_PLOT") == "" {
		t.Skip("set CSPLINE_PLOT to draw spline plots")
	}
	plt.Reset()

	tables := []struct {
		xs, ys, bc []float64
		color      string
	}{
		{[]float64{1, 4, 6, 8, 10}, []float64{2, -4, 5, 7, 3}, []float64{0, 0}, "b"},
		{[]float64{0, 1, 3, 4}, []float64{0, 1, 27, 64}, []float64{0, 48}, "r"},
		{[]float64{1, 6}, []float64{3, 1}, []float64{0, 0}, "g"},
	}

	for _, tab := range tables {
		sp, err := NewSpline(tab.xs, tab.ys, tab.bc)
		if err != nil {
			t.Fatal(err.Error())
		}
		lo, hi := sp.Domain()
		evalXs := linspace(lo, hi, 200)
		evalYs, err := sp.EvalAll(evalXs)
		if err != nil {
			t.Fatal(err.Error())
		}

		plt.Figure()
		plt.Plot(tab.xs, tab.ys, "ok")
		plt.Plot(evalXs, evalYs, tab.color, plt.LW(3))
	}

	plt.Show()
}
