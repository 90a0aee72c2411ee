package mlmc

// Model is a single-fidelity evaluator: it maps one input draw to one output
// value. Output shape must be constant across all levels of a hierarchy.
// Models are assumed deterministic given the sample unless they are
// explicitly stochastic independent of the input sampling.
type Model interface {
	Evaluate(sample Sample) (Output, error)
}

// CostedModel is a Model that declares its expected per-evaluation cost up
// front. When every model in a hierarchy declares a cost, the pilot uses the
// declared values as-is; otherwise evaluation is timed externally. The
// variant is selected by construction, never by runtime introspection of
// behavior.
type CostedModel interface {
	Model
	Cost() float64
}
