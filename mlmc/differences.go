package mlmc

import "fmt"

// LevelDifferences forms the level contributions Y_l = X_l - X_{l-1}
// pointwise from fine and coarse model outputs evaluated on the same input
// draws, in the same order. The two slices must have equal length and every
// pair equal dimensionality; mismatched pairing would corrupt the variance
// estimate silently, so it is rejected here.
func LevelDifferences(fine, coarse []Output) ([]Output, error) {
	if len(fine) != len(coarse) {
		return nil, fmt.Errorf("mlmc: %d fine outputs paired with %d coarse outputs", len(fine), len(coarse))
	}
	ys := make([]Output, len(fine))
	for i := range fine {
		y, err := subtract(fine[i], coarse[i])
		if err != nil {
			return nil, fmt.Errorf("output pair %d: %w", i, err)
		}
		ys[i] = y
	}
	return ys, nil
}

func subtract(fine, coarse Output) (Output, error) {
	if len(fine) != len(coarse) {
		return nil, fmt.Errorf("mlmc: output dimensions differ, %d vs %d", len(fine), len(coarse))
	}
	y := make(Output, len(fine))
	for c := range fine {
		y[c] = fine[c] - coarse[c]
	}
	return y, nil
}
