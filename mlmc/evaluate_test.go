package mlmc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLevel_CoarsestReturnsRawOutputs(t *testing.T) {
	sim := mustSimulator(newUniformSource(NewCampaignKey(1)), mustHierarchy(scaleModel{factor: 2, cost: 1}))
	samples := []Sample{{1}, {2}, {3}}

	ys, err := sim.EvaluateLevel(0, samples)
	require.NoError(t, err)
	assert.Equal(t, []Output{{2}, {4}, {6}}, ys)
}

func TestEvaluateLevel_FormsPairedDifferences(t *testing.T) {
	h := mustHierarchy(identityModel{cost: 1}, offsetModel{offset: 0.5, cost: 2})
	sim := mustSimulator(newUniformSource(NewCampaignKey(1)), h)
	samples := []Sample{{1}, {2}}

	ys, err := sim.EvaluateLevel(1, samples)
	require.NoError(t, err)
	assert.Equal(t, []Output{{0.5}, {0.5}}, ys)
}

func TestEvaluateLevel_WorkerCountDoesNotChangeResults(t *testing.T) {
	h := mustHierarchy(scaleModel{factor: 0.9, cost: 1}, offsetModel{offset: 0.25, cost: 2})
	sim := mustSimulator(newUniformSource(NewCampaignKey(3)), h)
	samples, err := sim.PrepareInputs([]int{0, 100})
	require.NoError(t, err)

	sequential, err := sim.EvaluateLevel(1, samples[1])
	require.NoError(t, err)

	sim.Workers = 8
	parallel, err := sim.EvaluateLevel(1, samples[1])
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestEvaluateLevel_EmptySamples(t *testing.T) {
	sim := mustSimulator(newUniformSource(NewCampaignKey(1)), mustHierarchy(identityModel{cost: 1}))
	ys, err := sim.EvaluateLevel(0, nil)
	require.NoError(t, err)
	assert.Empty(t, ys)
}

func TestEvaluateLevel_LevelOutOfRange(t *testing.T) {
	sim := mustSimulator(newUniformSource(NewCampaignKey(1)), mustHierarchy(identityModel{cost: 1}))
	_, err := sim.EvaluateLevel(1, []Sample{{1}})
	assert.Error(t, err)
}

// failingModel errors on every evaluation.
type failingModel struct{}

func (failingModel) Evaluate(Sample) (Output, error) {
	return nil, fmt.Errorf("boom")
}

func TestEvaluateLevel_PropagatesModelError(t *testing.T) {
	sim := mustSimulator(newUniformSource(NewCampaignKey(1)), mustHierarchy(failingModel{}))
	sim.Workers = 4
	_, err := sim.EvaluateLevel(0, []Sample{{1}, {2}, {3}, {4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
