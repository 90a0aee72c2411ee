package mlmc

import (
	"fmt"
	"math"
)

// AllocateSamples computes the cost-optimal integer number of evaluations
// per level for a target estimator precision epsilon:
//
//	N_l = ceil( eps^-2 * sqrt(V_l / C_l) * Σ_k sqrt(V_k * C_k) )
//
// the classical MLMC allocation minimizing total expected cost subject to a
// total estimator variance of at most eps². Counts are ceiling-rounded so
// the precision target is never under-allocated. A level with zero variance
// is allocated exactly 0 samples; it contributes no variance and needs no
// draws.
//
// Per-component variance vectors are reduced to one scalar per level by
// taking the maximum component, so no component of a vector quantity of
// interest is ever under-sampled.
//
// Fails with *InvalidPrecisionError if epsilon <= 0 and *InvalidCostError if
// any cost is non-positive.
func AllocateSamples(costs []float64, variances [][]float64, epsilon float64) ([]int, error) {
	if epsilon <= 0 {
		return nil, &InvalidPrecisionError{Epsilon: epsilon}
	}
	if len(costs) != len(variances) {
		return nil, &InvalidParameterError{Reason: fmt.Sprintf("got %d costs for %d variances", len(costs), len(variances))}
	}

	v := make([]float64, len(costs))
	for l, c := range costs {
		if c <= 0 {
			return nil, &InvalidCostError{Level: l, Cost: c}
		}
		v[l] = maxComponent(variances[l])
	}

	var sumSqrtVC float64
	for l := range costs {
		sumSqrtVC += math.Sqrt(v[l] * costs[l])
	}

	sizes := make([]int, len(costs))
	for l := range costs {
		if v[l] == 0 {
			continue
		}
		sizes[l] = int(math.Ceil(math.Sqrt(v[l]/costs[l]) * sumSqrtVC / (epsilon * epsilon)))
	}
	return sizes, nil
}

func maxComponent(v []float64) float64 {
	var m float64
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
