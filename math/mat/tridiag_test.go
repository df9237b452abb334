package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/cspline/math/numerr"
)

func TestTridiagonalDense(t *testing.T) {
	v := []float64{2, 2}
	tri, err := NewTridiagonal(v, []float64{10, 8, 8}, []float64{3, 2})
	require.NoError(t, err)
	v[0] = -1
	assert.Equal(t, 2.0, tri.Sub[0], "NewTridiagonal must copy its inputs")

	m := tri.Dense()
	assert.Equal(t, []float64{
		10, 3, 0,
		2, 8, 2,
		0, 2, 8,
	}, m.Vals)
	assert.Equal(t, 3, tri.Size())
	assert.Equal(t, 2.0, m.At(2, 1))

	xs := []float64{147.0 / 92, 96.0 / 23, -165.0 / 92}
	ax, err := tri.MultVector(xs)
	require.NoError(t, err)
	assertSlicesInDelta(t, m.MultVector(xs), ax, "dense vs banded")
	assertSlicesInDelta(t, []float64{57.0 / 2, 33, -6}, ax, "A x")

	res, err := tri.Residual(xs, []float64{57.0 / 2, 33, -6})
	require.NoError(t, err)
	assert.InDelta(t, 0, res, eps)
}

func TestTridiagonalErrors(t *testing.T) {
	_, err := NewTridiagonal(nil, []float64{1}, nil)
	assert.Equal(t, numerr.BelowMinimumSize, numerr.KindOf(err))

	tri, err := NewTridiagonal([]float64{1}, []float64{1, 1}, []float64{1})
	require.NoError(t, err)

	_, err = tri.MultVector([]float64{1, 2, 3})
	assert.Equal(t, numerr.RelativeSizeMismatch, numerr.KindOf(err))
	_, err = tri.Residual([]float64{1, 2}, []float64{1})
	assert.Equal(t, numerr.RelativeSizeMismatch, numerr.KindOf(err))
}

func TestMatrixMult(t *testing.T) {
	m1 := NewMatrix([]float64{
		1, 2,
		3, 4,
		5, 6,
	}, 2, 3)
	m2 := NewMatrix([]float64{
		1, 0, 2,
		0, 1, 3,
	}, 3, 2)

	out := m1.Mult(m2)
	assert.Equal(t, 3, out.Width)
	assert.Equal(t, 3, out.Height)
	assert.Equal(t, []float64{
		1, 2, 8,
		3, 4, 18,
		5, 6, 28,
	}, out.Vals)

	assert.Panics(t, func() { m1.Mult(m1) })
	assert.Panics(t, func() { NewMatrix([]float64{1, 2}, 3, 1) })
	assert.Panics(t, func() { m1.MultVector([]float64{1}) })
}
