package mlmc

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EstimateCostsAndVariances runs a pilot of pilotSize draws through every
// level and returns the per-level cost and per-component variance estimates.
//
// The pilot draws are shared across all levels, so the level-l contribution
// Y_l = X_l - X_{l-1} is always formed on matched inputs. Costs are the mean
// measured wall-clock per evaluation, with the coarser level's mean added
// for l >= 1 since both models are needed to form the difference. When every
// model declares a cost, the declared values are used as-is and the coarser
// cost is not added.
//
// Fails with *InsufficientPilotSamplesError if pilotSize < 2, which would
// leave the n-1 variance denominator undefined. A variance of exactly 0 at a
// level propagates as 0.
func (s *Simulator) EstimateCostsAndVariances(pilotSize int) (costs []float64, variances [][]float64, err error) {
	if pilotSize < 2 {
		return nil, nil, &InsufficientPilotSamplesError{PilotSize: pilotSize}
	}

	samples, err := s.draw(SubsystemPilot, pilotSize)
	if err != nil {
		return nil, nil, err
	}

	levels := s.hierarchy.Levels()
	outputs := make([][]Output, levels)
	meanCost := make([]float64, levels)

	for l := 0; l < levels; l++ {
		outs := make([]Output, len(samples))
		start := s.clock()
		for i, sm := range samples {
			out, evalErr := s.hierarchy.Model(l).Evaluate(sm)
			if evalErr != nil {
				return nil, nil, fmt.Errorf("pilot evaluation at level %d: %w", l, evalErr)
			}
			if i > 0 && len(out) != len(outs[0]) {
				return nil, nil, fmt.Errorf("level %d produced output of dimension %d, want %d", l, len(out), len(outs[0]))
			}
			outs[i] = out
		}
		meanCost[l] = s.clock().Sub(start).Seconds() / float64(len(samples))
		outputs[l] = outs
		logrus.Debugf("pilot: level %d evaluated over %d draws", l, len(samples))
	}

	declared := s.hierarchy.DeclaredCosts()
	costs = make([]float64, levels)
	variances = make([][]float64, levels)
	for l := 0; l < levels; l++ {
		switch {
		case declared:
			costs[l] = s.hierarchy.Model(l).(CostedModel).Cost()
		case l == 0:
			costs[l] = meanCost[0]
		default:
			costs[l] = meanCost[l] + meanCost[l-1]
		}

		ys := outputs[l]
		if l > 0 {
			ys, err = LevelDifferences(outputs[l], outputs[l-1])
			if err != nil {
				return nil, nil, err
			}
		}
		variances[l] = sampleVariance(ys)
	}

	return costs, variances, nil
}
