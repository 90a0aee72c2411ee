package mlmc

// Sample is one draw from the input distribution: an opaque numeric vector
// of fixed dimensionality agreed with the models. Samples are immutable once
// drawn; nothing in this package writes to a Sample after Draw returns it.
type Sample []float64

// Output is the value a level model produces for one Sample. Its shape is
// constant across all levels of a hierarchy so that level differences are
// defined. For l >= 1 the level contribution Y_l is the pointwise difference
// of the fine and coarse outputs on a shared input draw.
type Output []float64
