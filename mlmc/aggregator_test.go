package mlmc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlmc-sim/mlmc-sim/mlmc/internal/testutil"
)

func outputs1(vals ...float64) []Output {
	out := make([]Output, len(vals))
	for i, v := range vals {
		out[i] = Output{v}
	}
	return out
}

func TestAggregateEstimators_SingleLevel(t *testing.T) {
	// L=1 reduces MLMC to standard Monte Carlo: mean and Var/N of the
	// coarsest outputs.
	est, err := AggregateEstimators(map[int][]Output{0: outputs1(1, 2, 3)}, []int{3})
	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "estimate", 2.0, est.Value[0], 1e-12)
	testutil.AssertFloat64Equal(t, "variance", 0.2222222222222222, est.Variance[0], 1e-9)
}

func TestAggregateEstimators_TwoLevels(t *testing.T) {
	contributions := map[int][]Output{
		0: outputs1(1, 2),
		1: outputs1(1),
	}
	est, err := AggregateEstimators(contributions, []int{2, 1})
	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "estimate", 2.5, est.Value[0], 1e-12)
	testutil.AssertFloat64Equal(t, "variance", 0.125, est.Variance[0], 1e-12)
}

func TestAggregateEstimators_ThreeLevels(t *testing.T) {
	contributions := map[int][]Output{
		0: outputs1(1, 2, 3),
		1: outputs1(2, 2),
		2: outputs1(1),
	}
	est, err := AggregateEstimators(contributions, []int{3, 2, 1})
	require.NoError(t, err)
	testutil.AssertFloat64Equal(t, "estimate", 5.0, est.Value[0], 1e-12)
	testutil.AssertFloat64Equal(t, "variance", 0.2222222222222222, est.Variance[0], 1e-9)
}

func TestAggregateEstimators_Linearity(t *testing.T) {
	// Scaling every contribution by k scales the estimate by k and the
	// estimator variance by k².
	base := map[int][]Output{
		0: outputs1(1.5, 2.5, 4.0),
		1: outputs1(0.25, 0.75),
	}
	sizes := []int{3, 2}
	k := 3.0

	scaled := map[int][]Output{}
	for l, ys := range base {
		s := make([]Output, len(ys))
		for i, y := range ys {
			s[i] = Output{k * y[0]}
		}
		scaled[l] = s
	}

	got, err := AggregateEstimators(base, sizes)
	require.NoError(t, err)
	gotScaled, err := AggregateEstimators(scaled, sizes)
	require.NoError(t, err)

	testutil.AssertFloat64Equal(t, "estimate scales by k", k*got.Value[0], gotScaled.Value[0], 1e-12)
	testutil.AssertFloat64Equal(t, "variance scales by k^2", k*k*got.Variance[0], gotScaled.Variance[0], 1e-12)
}

func TestAggregateEstimators_EmptyAllocatedLevel(t *testing.T) {
	contributions := map[int][]Output{
		0: outputs1(1, 2, 3),
		1: {},
	}
	_, err := AggregateEstimators(contributions, []int{3, 5})
	var eerr *EmptyLevelOutputError
	require.True(t, errors.As(err, &eerr), "want EmptyLevelOutputError, got %v", err)
	assert.Equal(t, 1, eerr.Level)
	assert.Equal(t, 5, eerr.Allocated)
}

func TestAggregateEstimators_ZeroAllocatedLevelContributesNothing(t *testing.T) {
	with, err := AggregateEstimators(map[int][]Output{0: outputs1(1, 2, 3), 1: nil}, []int{3, 0})
	require.NoError(t, err)
	without, err := AggregateEstimators(map[int][]Output{0: outputs1(1, 2, 3)}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, without, with)
}

func TestAggregateEstimators_AllLevelsEmpty(t *testing.T) {
	est, err := AggregateEstimators(map[int][]Output{}, []int{0, 0})
	require.NoError(t, err)
	assert.Empty(t, est.Value)
	assert.Empty(t, est.Variance)
}

func TestAggregateEstimators_VectorOutputs(t *testing.T) {
	contributions := map[int][]Output{
		0: {Output{1, 10}, Output{3, 30}},
	}
	est, err := AggregateEstimators(contributions, []int{2})
	require.NoError(t, err)
	testutil.AssertAllClose(t, "estimate", []float64{2, 20}, est.Value, 1e-12)
	testutil.AssertAllClose(t, "variance", []float64{0.5, 50}, est.Variance, 1e-12)
}

func TestAggregateEstimators_DimensionMismatch(t *testing.T) {
	contributions := map[int][]Output{
		0: {Output{1, 2}},
		1: {Output{1}},
	}
	_, err := AggregateEstimators(contributions, []int{1, 1})
	assert.Error(t, err)
}
