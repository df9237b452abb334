package io

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/gcfg.v1"
)

const (
	ExampleFitFile = `[Fit]

#######################
# Required Parameters #
#######################

# Whitespace-separated text table containing the spline nodes.
Input = path/to/nodes.txt
# The fitted spline will be written here as YAML. Use 'cspline eval' to
# evaluate it later.
Output = path/to/spline.yaml

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input containing the x and y values of the nodes.
# The x values must be strictly increasing. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# First derivatives of the spline at the first and last nodes. Both default
# to 0.
# LeftDerivative = 0
# RightDerivative = 0

# If set, a plot of the spline and its nodes is saved to this file. This
# requires python and matplotlib.
# Plot = path/to/spline.png
# Number of points the spline is sampled at when plotting. Default is 200.
# PlotPoints = 200

# Progress messages are written here instead of stderr.
# LogFile = fit.log`

	ExampleSolveFile = `[Solve]

#######################
# Required Parameters #
#######################

# Whitespace-separated text table containing a tridiagonal system, one row
# of the matrix per line. Each line holds the sub-diagonal element, the
# diagonal element, the super-diagonal element, and the right-hand side of
# that row. The sub-diagonal element of the first row and the
# super-diagonal element of the last row are ignored.
Input = path/to/system.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input. Defaults are 0, 1, 2, and 3.
# SubColumn = 0
# DiagColumn = 1
# SuperColumn = 2
# RHSColumn = 3

# Progress messages are written here instead of stderr.
# LogFile = solve.log`
)

var validate = validator.New()

type FitConfig struct {
	// Required
	Input  string `validate:"required"`
	Output string `validate:"required"`

	// Optional
	XColumn         int `validate:"gte=0"`
	YColumn         int `validate:"gte=0,nefield=XColumn"`
	LeftDerivative  float64
	RightDerivative float64
	Plot            string
	PlotPoints      int `validate:"gte=2"`
	LogFile         string
}

type FitWrapper struct {
	Fit FitConfig
}

func DefaultFitWrapper() *FitWrapper {
	con := FitConfig{}
	con.XColumn = 0
	con.YColumn = 1
	con.PlotPoints = 200
	return &FitWrapper{con}
}

// BC returns the boundary derivatives in the order expected by
// interpolate.NewSpline.
func (con *FitConfig) BC() []float64 {
	return []float64{con.LeftDerivative, con.RightDerivative}
}

func (con *FitConfig) ValidPlot() bool { return con.Plot != "" }

// CheckInit verifies that all the fields of the config have acceptable
// values.
func (con *FitConfig) CheckInit() error {
	return checkStruct("Fit", con)
}

type SolveConfig struct {
	// Required
	Input string `validate:"required"`

	// Optional
	SubColumn   int `validate:"gte=0"`
	DiagColumn  int `validate:"gte=0"`
	SuperColumn int `validate:"gte=0"`
	RHSColumn   int `validate:"gte=0"`
	LogFile     string
}

type SolveWrapper struct {
	Solve SolveConfig
}

func DefaultSolveWrapper() *SolveWrapper {
	con := SolveConfig{}
	con.SubColumn = 0
	con.DiagColumn = 1
	con.SuperColumn = 2
	con.RHSColumn = 3
	return &SolveWrapper{con}
}

// Columns returns the sub-diagonal, diagonal, super-diagonal, and
// right-hand side columns in that order.
func (con *SolveConfig) Columns() [4]int {
	return [4]int{con.SubColumn, con.DiagColumn, con.SuperColumn, con.RHSColumn}
}

// CheckInit verifies that all the fields of the config have acceptable
// values.
func (con *SolveConfig) CheckInit() error {
	if err := checkStruct("Solve", con); err != nil {
		return err
	}

	cols := con.Columns()
	names := []string{"SubColumn", "DiagColumn", "SuperColumn", "RHSColumn"}
	for i := range cols {
		for j := i + 1; j < len(cols); j++ {
			if cols[i] == cols[j] {
				return fmt.Errorf(
					"[Solve] %s and %s are both set to column %d.",
					names[i], names[j], cols[i],
				)
			}
		}
	}
	return nil
}

// checkStruct runs the struct tag validations and turns the first failure
// into a message which names the offending config variable.
func checkStruct(section string, con interface{}) error {
	err := validate.Struct(con)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("[%s] Invalid/non-existent '%s' value.",
			section, fe.Field())
	case "nefield":
		return fmt.Errorf("[%s] '%s' must differ from '%s'.",
			section, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("[%s] Invalid '%s' value %v (must be %s %s).",
			section, fe.Field(), fe.Value(), fe.Tag(), fe.Param())
	}
}

// ReadFitConfig reads the [Fit] section of a config file.
func ReadFitConfig(fname string) (*FitConfig, error) {
	wrap := DefaultFitWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Fit.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Fit, nil
}

// ParseFitConfig is the same as ReadFitConfig, but reads the config from a
// string.
func ParseFitConfig(text string) (*FitConfig, error) {
	wrap := DefaultFitWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Fit.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Fit, nil
}

// ReadSolveConfig reads the [Solve] section of a config file.
func ReadSolveConfig(fname string) (*SolveConfig, error) {
	wrap := DefaultSolveWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Solve.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Solve, nil
}

// ParseSolveConfig is the same as ReadSolveConfig, but reads the config
// from a string.
func ParseSolveConfig(text string) (*SolveConfig, error) {
	wrap := DefaultSolveWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Solve.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Solve, nil
}
