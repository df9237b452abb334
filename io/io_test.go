package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/cspline/math/interpolate"
	"github.com/phil-mansfield/cspline/math/numerr"
)

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))
	return file
}

func TestReadNodes(t *testing.T) {
	file := writeFile(t, "nodes.txt", `0 1 2
1 4 -4
2 6 5
3 8 7
4 10 3
`)

	xs, ys, err := ReadNodes(file, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 6, 8, 10}, xs)
	assert.Equal(t, []float64{2, -4, 5, 7, 3}, ys)

	_, _, err = ReadNodes(filepath.Join(t.TempDir(), "missing.txt"), 0, 1)
	assert.Error(t, err)
}

func TestReadSystem(t *testing.T) {
	file := writeFile(t, "system.txt", `0 10 3 28.5
2 8 2 33
2 8 0 -6
`)

	tri, rhs, err := ReadSystem(file, [4]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, tri.Sub)
	assert.Equal(t, []float64{10, 8, 8}, tri.Diag)
	assert.Equal(t, []float64{3, 2}, tri.Super)
	assert.Equal(t, []float64{28.5, 33, -6}, rhs)

	xs, err := tri.SolveVector(rhs)
	require.NoError(t, err)
	assert.InDelta(t, 147.0/92, xs[0], 1e-12)
	assert.InDelta(t, 96.0/23, xs[1], 1e-12)
	assert.InDelta(t, -165.0/92, xs[2], 1e-12)
}

func TestReadSystemTooSmall(t *testing.T) {
	file := writeFile(t, "system.txt", "0 10 0 1\n")
	_, _, err := ReadSystem(file, [4]int{0, 1, 2, 3})
	assert.True(t, errors.Is(err, numerr.ErrBelowMinimumSize))
}

func TestModelFiles(t *testing.T) {
	sp, err := interpolate.NewSpline(
		[]float64{1, 4, 6, 8, 10}, []float64{2, -4, 5, 7, 3}, []float64{0, 0},
	)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "spline.yaml")
	require.NoError(t, WriteModel(file, sp))

	read, err := ReadModel(file)
	require.NoError(t, err)
	assert.Equal(t, sp.Model(), read.Model())
}

func TestReadModelRejectsBadModels(t *testing.T) {
	unordered := writeFile(t, "unordered.yaml", `nodes: [1, 4, 2]
a: [0, 0]
b: [0, 0]
c: [0, 0]
d: [1, 1]
`)
	_, err := ReadModel(unordered)
	assert.True(t, errors.Is(err, numerr.ErrUnorderedNode))

	short := writeFile(t, "short.yaml", `nodes: [1, 2, 3]
a: [0, 0]
b: [0, 0]
c: [0]
d: [1, 1]
`)
	_, err = ReadModel(short)
	assert.True(t, errors.Is(err, numerr.ErrRelativeSizeMismatch))

	garbage := writeFile(t, "garbage.yaml", "nodes: {not: a list}\n")
	_, err = ReadModel(garbage)
	assert.Error(t, err)

	_, err = ReadModel(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
