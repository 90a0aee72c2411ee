package mlmc

import "github.com/sirupsen/logrus"

// Run executes one full estimation campaign: pilot cost/variance estimation,
// optimal allocation for the target precision, coordinated full-phase draws,
// model evaluation, and aggregation. It returns the final estimator together
// with the per-level sample sizes that produced it.
//
// The pilot draws are not reused in the full phase; the two phases are
// independent sample sets, at the price of pilotSize extra evaluations per
// level.
func (s *Simulator) Run(pilotSize int, epsilon float64) (Estimate, []int, error) {
	costs, variances, err := s.EstimateCostsAndVariances(pilotSize)
	if err != nil {
		return Estimate{}, nil, err
	}
	logrus.Debugf("pilot of %d draws done: costs=%v variances=%v", pilotSize, costs, variances)

	sizes, err := AllocateSamples(costs, variances, epsilon)
	if err != nil {
		return Estimate{}, nil, err
	}
	logrus.Infof("allocated samples per level for epsilon=%v: %v", epsilon, sizes)

	inputs, err := s.PrepareInputs(sizes)
	if err != nil {
		return Estimate{}, nil, err
	}

	outputs := make(map[int][]Output, len(sizes))
	for l := range sizes {
		ys, evalErr := s.EvaluateLevel(l, inputs[l])
		if evalErr != nil {
			return Estimate{}, nil, evalErr
		}
		outputs[l] = ys
		logrus.Debugf("level %d: %d contributions realized", l, len(ys))
	}

	est, err := AggregateEstimators(outputs, sizes)
	if err != nil {
		return Estimate{}, nil, err
	}
	return est, sizes, nil
}
