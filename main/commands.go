package main

import (
	"github.com/spf13/cobra"
)

var (
	fitConfig   string
	solveConfig string
	modelFile   string
	derivOrder  int

	rootCmd = &cobra.Command{
		Use:   "cspline",
		Short: "Fits clamped cubic splines and solves tridiagonal systems",
		Long: `cspline fits clamped cubic splines to tabulated nodes, evaluates
fitted splines, and solves tridiagonal linear systems without pivoting.
Fitting and solving are driven by config files; run 'cspline
example-config fit' to see one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fitCmd = &cobra.Command{
		Use:   "fit",
		Short: "Fits a spline to the nodes named in a [Fit] config file",
		Args:  cobra.NoArgs,
		RunE:  runFit,
	}

	evalCmd = &cobra.Command{
		Use:   "eval [x...]",
		Short: "Evaluates a fitted spline or one of its derivatives",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEval,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solves the tridiagonal system named in a [Solve] config file",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}

	exampleCmd = &cobra.Command{
		Use:       "example-config [fit|solve]",
		Short:     "Prints an annotated example config file",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"fit", "solve"},
		RunE:      runExampleConfig,
	}
)

func init() {
	fitCmd.Flags().StringVar(&fitConfig, "config", "", "[Fit] config file")
	fitCmd.MarkFlagRequired("config")

	evalCmd.Flags().StringVar(&modelFile, "model", "", "spline model written by 'cspline fit'")
	evalCmd.Flags().IntVar(&derivOrder, "deriv", 0, "order of the derivative to evaluate")
	evalCmd.MarkFlagRequired("model")

	solveCmd.Flags().StringVar(&solveConfig, "config", "", "[Solve] config file")
	solveCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(fitCmd, evalCmd, solveCmd, exampleCmd)
}
