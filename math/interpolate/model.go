package interpolate

import (
	"github.com/phil-mansfield/cspline/math/numerr"
)

// Model is the plain-data form of a Spline, suitable for serialization.
// Segment i covers [Nodes[i], Nodes[i+1]].
type Model struct {
	Nodes []float64 `yaml:"nodes"`
	A     []float64 `yaml:"a"`
	B     []float64 `yaml:"b"`
	C     []float64 `yaml:"c"`
	D     []float64 `yaml:"d"`
}

// Model returns a copy of the spline's nodes and coefficients.
func (sp *Spline) Model() *Model {
	return &Model{
		Nodes: append([]float64(nil), sp.nodes...),
		A:     append([]float64(nil), sp.a...),
		B:     append([]float64(nil), sp.b...),
		C:     append([]float64(nil), sp.c...),
		D:     append([]float64(nil), sp.d...),
	}
}

// NewSplineFromModel recreates a Spline from a Model, typically one which
// was read back from disk. The model is checked for the same node
// invariants as NewSpline and for coefficient sequences of the right
// length.
func NewSplineFromModel(m *Model) (*Spline, error) {
	const op = "interpolate.NewSplineFromModel"
	if len(m.Nodes) < 2 {
		return nil, numerr.New(numerr.BelowMinimumSize, op,
			"model has %d nodes, need at least 2", len(m.Nodes))
	}

	segs := len(m.Nodes) - 1
	coeffs := []struct {
		name string
		vals []float64
	}{{"a", m.A}, {"b", m.B}, {"c", m.C}, {"d", m.D}}
	for _, co := range coeffs {
		if len(co.vals) != segs {
			return nil, numerr.New(numerr.RelativeSizeMismatch, op,
				"model has %d segments but %d %s coefficients",
				segs, len(co.vals), co.name)
		}
	}
	if err := checkNodes(op, m.Nodes); err != nil {
		return nil, err
	}

	sp := newSpline(m.Nodes)
	copy(sp.a, m.A)
	copy(sp.b, m.B)
	copy(sp.c, m.C)
	copy(sp.d, m.D)
	return sp, nil
}
