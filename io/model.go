package io

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phil-mansfield/cspline/math/interpolate"
)

// WriteModel writes the nodes and coefficients of sp to file as YAML.
func WriteModel(file string, sp *interpolate.Spline) error {
	b, err := yaml.Marshal(sp.Model())
	if err != nil {
		return fmt.Errorf("encoding spline model: %w", err)
	}
	if err := os.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("writing spline model: %w", err)
	}
	return nil
}

// ReadModel reads a spline written by WriteModel. The model is validated,
// so a hand-edited file with misordered nodes or missing coefficients is
// rejected.
func ReadModel(file string) (*interpolate.Spline, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading spline model: %w", err)
	}

	m := &interpolate.Model{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("decoding spline model %s: %w", file, err)
	}

	sp, err := interpolate.NewSplineFromModel(m)
	if err != nil {
		return nil, fmt.Errorf("spline model %s: %w", file, err)
	}
	return sp, nil
}
