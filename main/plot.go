package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/cspline/math/interpolate"
)

// plotSpline samples sp at points evenly spaced locations and saves a plot
// of the samples and the nodes to fname.
func plotSpline(
	sp *interpolate.Spline, xs, ys []float64, fname string, points int,
) error {
	lo, hi := sp.Domain()
	sampleXs := make([]float64, points)
	dx := (hi - lo) / float64(points-1)
	for i := range sampleXs {
		sampleXs[i] = lo + dx*float64(i)
	}
	sampleXs[points-1] = hi

	sampleYs, err := sp.EvalAll(sampleXs)
	if err != nil {
		return err
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(sampleXs, sampleYs, "b", plt.LW(2))
	plt.Plot(xs, ys, "ok")

	plt.Title(fmt.Sprintf("Clamped spline through %d nodes", len(xs)))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$S(x)$`, plt.FontSize(16))
	plt.XLim(lo, hi)

	plt.SaveFig(fname)
	plt.Execute()
	return nil
}
