package mlmc

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Estimate is the immutable result of one aggregation call: the MLMC point
// estimate of the quantity of interest and the variance of that estimator,
// both per component.
type Estimate struct {
	Value    []float64
	Variance []float64
}

// AggregateEstimators computes the telescoping-sum MLMC estimator from the
// realized per-level contributions Y_l (formed by the caller, for l >= 1 via
// LevelDifferences on matched draws):
//
//	estimate  = Σ_l mean(Y_l)
//	variance  = Σ_l Var(Y_l) / n_l
//
// the variance of a sum of independent per-level sample means. sampleSizes
// is the allocation the outputs were computed under: a level allocated more
// than 0 samples with zero realized outputs fails with
// *EmptyLevelOutputError, while a level allocated 0 legally contributes 0 to
// both sums.
func AggregateEstimators(outputsPerLevel map[int][]Output, sampleSizes []int) (Estimate, error) {
	dim := -1
	for l := range sampleSizes {
		if ys := outputsPerLevel[l]; len(ys) > 0 {
			dim = len(ys[0])
			break
		}
	}
	if dim < 0 {
		// Every level empty and none allocated: a legal degenerate
		// aggregation with nothing to sum.
		for l, n := range sampleSizes {
			if n > 0 {
				return Estimate{}, &EmptyLevelOutputError{Level: l, Allocated: n}
			}
		}
		return Estimate{Value: []float64{}, Variance: []float64{}}, nil
	}

	est := Estimate{
		Value:    make([]float64, dim),
		Variance: make([]float64, dim),
	}
	for l, n := range sampleSizes {
		ys := outputsPerLevel[l]
		if len(ys) == 0 {
			if n > 0 {
				return Estimate{}, &EmptyLevelOutputError{Level: l, Allocated: n}
			}
			continue
		}
		for i, y := range ys {
			if len(y) != dim {
				return Estimate{}, fmt.Errorf("mlmc: level %d output %d has dimension %d, want %d", l, i, len(y), dim)
			}
		}
		col := make([]float64, len(ys))
		for c := 0; c < dim; c++ {
			column(col, ys, c)
			est.Value[c] += stat.Mean(col, nil)
			est.Variance[c] += stat.PopVariance(col, nil) / float64(len(ys))
		}
	}
	return est, nil
}
