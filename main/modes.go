package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/cspline/io"
	"github.com/phil-mansfield/cspline/math/interpolate"
)

func runFit(cmd *cobra.Command, args []string) error {
	con, err := io.ReadFitConfig(fitConfig)
	if err != nil {
		return err
	}
	lf, err := openLogFile(con.LogFile)
	if err != nil {
		return err
	}
	defer lf.Close()

	xs, ys, err := io.ReadNodes(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		return err
	}
	log.Printf("Read %d nodes from %s.", len(xs), con.Input)

	sp, err := interpolate.NewSpline(xs, ys, con.BC())
	if err != nil {
		return fmt.Errorf("fitting %s: %w", con.Input, err)
	}
	if err := io.WriteModel(con.Output, sp); err != nil {
		return err
	}
	log.Printf("Wrote a %d-segment spline to %s.", sp.Segments(), con.Output)

	if con.ValidPlot() {
		if err := plotSpline(sp, xs, ys, con.Plot, con.PlotPoints); err != nil {
			return err
		}
		log.Printf("Saved plot to %s.", con.Plot)
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	if derivOrder < 0 {
		return fmt.Errorf("Invalid 'deriv' value %d.", derivOrder)
	}

	sp, err := io.ReadModel(modelFile)
	if err != nil {
		return err
	}

	xs := make([]float64, len(args))
	for i, arg := range args {
		if xs[i], err = strconv.ParseFloat(arg, 64); err != nil {
			return fmt.Errorf("Could not parse '%s' as a number.", arg)
		}
	}

	var vals []float64
	if derivOrder == 0 {
		if vals, err = sp.EvalAll(xs); err != nil {
			return err
		}
	} else {
		vals = make([]float64, len(xs))
		for i, x := range xs {
			if vals[i], err = sp.Diff(x, derivOrder); err != nil {
				return err
			}
		}
	}

	out := cmd.OutOrStdout()
	for i := range xs {
		fmt.Fprintf(out, "%g %g\n", xs[i], vals[i])
	}
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	con, err := io.ReadSolveConfig(solveConfig)
	if err != nil {
		return err
	}
	lf, err := openLogFile(con.LogFile)
	if err != nil {
		return err
	}
	defer lf.Close()

	tri, rhs, err := io.ReadSystem(con.Input, con.Columns())
	if err != nil {
		return err
	}
	log.Printf("Read a %d x %d system from %s.", tri.Size(), tri.Size(), con.Input)

	luf, err := tri.LU()
	if err != nil {
		return err
	}
	xs := make([]float64, tri.Size())
	if err := luf.SolveVectorAt(rhs, xs); err != nil {
		return err
	}
	res, err := tri.Residual(xs, rhs)
	if err != nil {
		return err
	}
	log.Printf("Determinant: %g, maximum residual: %g.", luf.Determinant(), res)

	out := cmd.OutOrStdout()
	for _, x := range xs {
		fmt.Fprintf(out, "%g\n", x)
	}
	return nil
}

func runExampleConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "fit":
		fmt.Fprintln(out, io.ExampleFitFile)
	case "solve":
		fmt.Fprintln(out, io.ExampleSolveFile)
	default:
		return fmt.Errorf("Unrecognized config type '%s'.", args[0])
	}
	return nil
}
