package mlmc

import "time"

// Simulator coordinates one MLMC estimation campaign: pilot-based cost and
// variance estimation, optimal sample allocation, coordinated draws, and
// aggregation. It holds no simulation state across calls beyond the
// hierarchy and input source references; every computation is a pure
// function of its explicit arguments, so one Simulator can serve repeated
// experiments (e.g. epsilon sweeps) without state bleed.
type Simulator struct {
	// Workers bounds the fan-out of model evaluations in Run and
	// EvaluateLevel. Values <= 1 evaluate sequentially. Matched fine/coarse
	// pairs always stay on one worker so pairing cannot be violated.
	Workers int

	source    InputSource
	hierarchy *Hierarchy
	clock     func() time.Time
}

// NewSimulator creates a simulator over the given input source and model
// hierarchy. Fails with *InvalidParameterError if either is nil.
func NewSimulator(source InputSource, hierarchy *Hierarchy) (*Simulator, error) {
	if source == nil {
		return nil, &InvalidParameterError{Reason: "input source is nil"}
	}
	if hierarchy == nil {
		return nil, &InvalidParameterError{Reason: "hierarchy is nil"}
	}
	return &Simulator{
		Workers:   1,
		source:    source,
		hierarchy: hierarchy,
		clock:     time.Now,
	}, nil
}

// Hierarchy returns the simulator's model hierarchy.
func (s *Simulator) Hierarchy() *Hierarchy {
	return s.hierarchy
}

// draw pulls n samples from the named stream when the source supports
// stream-bound draws, falling back to plain sequential draws otherwise.
func (s *Simulator) draw(stream string, n int) ([]Sample, error) {
	if src, ok := s.source.(StreamedSource); ok {
		return src.DrawStream(stream, n)
	}
	return s.source.Draw(n)
}
