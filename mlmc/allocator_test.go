package mlmc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalars(vs ...float64) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = []float64{v}
	}
	return out
}

func TestAllocateSamples_ClassicalFormula(t *testing.T) {
	// costs [1,4,16], variances [4,1,0.25]: sqrt(V*C) is 2 at every level,
	// so the sum is 6 and the counts follow sqrt(V/C) exactly.
	sizes, err := AllocateSamples([]float64{1, 4, 16}, scalars(4, 1, 0.25), 0.1)
	require.NoError(t, err)
	assert.Equal(t, []int{1200, 300, 75}, sizes)

	// Coarse levels absorb more samples than fine ones.
	assert.Greater(t, sizes[0], sizes[1])
	assert.Greater(t, sizes[1], sizes[2])

	// Achieved theoretical variance stays within the precision target.
	var total float64
	for l, v := range []float64{4, 1, 0.25} {
		total += v / float64(sizes[l])
	}
	assert.LessOrEqual(t, total, 0.1*0.1+1e-12)
}

func TestAllocateSamples_ReferenceFixture(t *testing.T) {
	sizes, err := AllocateSamples([]float64{1, 10, 100}, scalars(150, 120, 100), 1.0)
	require.NoError(t, err)
	assert.Equal(t, []int{1800, 509, 147}, sizes)
}

func TestAllocateSamples_ZeroVarianceLevelGetsZeroSamples(t *testing.T) {
	sizes, err := AllocateSamples([]float64{1, 2, 3}, scalars(4, 0, 1), 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0, sizes[1], "zero-variance level must not be forced to a minimum of 1")
	assert.Greater(t, sizes[0], 0)
	assert.Greater(t, sizes[2], 0)
}

func TestAllocateSamples_NonPositiveCost(t *testing.T) {
	for _, c := range []float64{0, -2} {
		_, err := AllocateSamples([]float64{1, c}, scalars(1, 1), 0.5)
		var cerr *InvalidCostError
		require.True(t, errors.As(err, &cerr), "cost %v: want InvalidCostError, got %v", c, err)
		assert.Equal(t, 1, cerr.Level)
		assert.Equal(t, c, cerr.Cost)
	}
}

func TestAllocateSamples_NonPositivePrecision(t *testing.T) {
	for _, eps := range []float64{0, -1} {
		_, err := AllocateSamples([]float64{1}, scalars(1), eps)
		var perr *InvalidPrecisionError
		require.True(t, errors.As(err, &perr), "epsilon %v: want InvalidPrecisionError, got %v", eps, err)
		assert.Equal(t, eps, perr.Epsilon)
	}
}

func TestAllocateSamples_LengthMismatch(t *testing.T) {
	_, err := AllocateSamples([]float64{1, 2}, scalars(1), 0.5)
	var perr *InvalidParameterError
	assert.True(t, errors.As(err, &perr), "want InvalidParameterError, got %v", err)
}

func TestAllocateSamples_VectorVarianceUsesMaxComponent(t *testing.T) {
	// The second component dominates; counts must match allocating for it.
	vector := [][]float64{{0.1, 4}}
	fromVector, err := AllocateSamples([]float64{1}, vector, 0.5)
	require.NoError(t, err)
	fromScalar, err := AllocateSamples([]float64{1}, scalars(4), 0.5)
	require.NoError(t, err)
	assert.Equal(t, fromScalar, fromVector)
}
