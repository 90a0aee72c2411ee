package mlmc

import (
	"fmt"
	"sync"
)

// EvaluateLevel computes the realized level contributions for level l on the
// given samples: Y_0 = X_0 for the coarsest level, Y_l = X_l - X_{l-1} on
// the same draw for l >= 1. Evaluation fans out across s.Workers goroutines;
// each sample's fine/coarse pair is evaluated on the same worker, and the
// only shared state is the read-only draws and each worker's own output
// slots, so the fan-out cannot change the per-sample results.
func (s *Simulator) EvaluateLevel(l int, samples []Sample) ([]Output, error) {
	if l < 0 || l >= s.hierarchy.Levels() {
		return nil, &InvalidParameterError{Reason: fmt.Sprintf("level %d outside hierarchy of %d levels", l, s.hierarchy.Levels())}
	}
	ys := make([]Output, len(samples))
	if len(samples) == 0 {
		return ys, nil
	}

	fine := s.hierarchy.Model(l)
	var coarse Model
	if l > 0 {
		coarse = s.hierarchy.Model(l - 1)
	}

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(samples) {
		workers = len(samples)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(samples); i += workers {
				y, err := s.evaluatePair(fine, coarse, samples[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("level %d sample %d: %w", l, i, err)
					}
					mu.Unlock()
					return
				}
				ys[i] = y
			}
		}(w)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return ys, nil
}

func (s *Simulator) evaluatePair(fine, coarse Model, sample Sample) (Output, error) {
	out, err := fine.Evaluate(sample)
	if err != nil {
		return nil, err
	}
	if coarse == nil {
		return out, nil
	}
	cout, err := coarse.Evaluate(sample)
	if err != nil {
		return nil, err
	}
	return subtract(out, cout)
}
