package mlmc

import "fmt"

// Hierarchy is an ordered sequence of level models: index 0 is the coarsest
// and cheapest, index L-1 the finest and most expensive. Order is
// significant; level differences are always formed as finer minus coarser on
// matched input draws.
type Hierarchy struct {
	models []Model
}

// NewHierarchy builds a hierarchy from coarsest to finest. Fails with
// *InvalidParameterError if no models are given or any model is nil.
func NewHierarchy(models ...Model) (*Hierarchy, error) {
	if len(models) == 0 {
		return nil, &InvalidParameterError{Reason: "hierarchy needs at least one level model"}
	}
	for i, m := range models {
		if m == nil {
			return nil, &InvalidParameterError{Reason: fmt.Sprintf("nil model at level %d", i)}
		}
	}
	h := &Hierarchy{models: make([]Model, len(models))}
	copy(h.models, models)
	return h, nil
}

// Levels returns the number of levels L.
func (h *Hierarchy) Levels() int {
	return len(h.models)
}

// Model returns the model at level l.
func (h *Hierarchy) Model(l int) Model {
	return h.models[l]
}

// DeclaredCosts reports whether every level declares its cost. Declared
// costs are used as-is by the pilot; the coarser level's cost is NOT added
// for l >= 1 in that case.
func (h *Hierarchy) DeclaredCosts() bool {
	for _, m := range h.models {
		if _, ok := m.(CostedModel); !ok {
			return false
		}
	}
	return true
}
