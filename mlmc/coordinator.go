package mlmc

import "fmt"

// PrepareInputs draws the full-phase input samples for each level and
// returns them keyed by level. For l >= 1 the caller must evaluate BOTH the
// level-l and the level-(l-1) model on the level-l draws so that a valid
// difference can be formed; returning the draws under a single per-level key
// guarantees the pairing by construction. Level 0 draws are evaluated only
// at level 0.
//
// Draws for every level come from streams independent of the pilot stream
// and of each other. A level allocated 0 samples gets an empty entry.
func (s *Simulator) PrepareInputs(sampleSizes []int) (map[int][]Sample, error) {
	if len(sampleSizes) != s.hierarchy.Levels() {
		return nil, &InvalidParameterError{Reason: fmt.Sprintf("got %d sample sizes for %d levels", len(sampleSizes), s.hierarchy.Levels())}
	}

	inputs := make(map[int][]Sample, len(sampleSizes))
	for l, n := range sampleSizes {
		if n < 0 {
			return nil, &SampleRequestError{Requested: n}
		}
		if n == 0 {
			inputs[l] = nil
			continue
		}
		draws, err := s.draw(SubsystemLevel(l), n)
		if err != nil {
			return nil, err
		}
		inputs[l] = draws
	}
	return inputs, nil
}
