package mlmc

import "math/rand"

// InputSource produces independent draws of the uncertain input.
// Implementations own their sampling parameters and are the sole generator
// of randomness for a simulator instance.
type InputSource interface {
	// Draw returns n independent samples. Repeated calls produce
	// statistically independent draws. Fails with *SampleRequestError
	// if n < 1.
	Draw(n int) ([]Sample, error)
}

// StreamedSource is an optional InputSource refinement whose draws can be
// bound to named independent streams. The simulator uses it when available
// so that pilot draws and per-level full-phase draws are independent by
// construction (separate streams) rather than by stream position.
type StreamedSource interface {
	InputSource
	DrawStream(stream string, n int) ([]Sample, error)
}

// DistributionFunc draws n samples using the supplied generator. The
// function's distribution parameters are bound at construction of the
// enclosing RandomInput and never change afterwards.
type DistributionFunc func(rng *rand.Rand, n int) []Sample

// RandomInput wraps a sampling function with a partitioned RNG. It
// implements StreamedSource: Draw uses the SubsystemInput stream, and
// DrawStream binds draws to any named stream of the same campaign key.
type RandomInput struct {
	fn  DistributionFunc
	rng *PartitionedRNG
}

// NewRandomInput binds a sampling function to a campaign key. Fails with
// *InvalidParameterError if fn is nil.
func NewRandomInput(fn DistributionFunc, key CampaignKey) (*RandomInput, error) {
	if fn == nil {
		return nil, &InvalidParameterError{Reason: "sampling function is nil"}
	}
	return &RandomInput{fn: fn, rng: NewPartitionedRNG(key)}, nil
}

// Draw returns n independent samples from the default input stream.
func (r *RandomInput) Draw(n int) ([]Sample, error) {
	return r.DrawStream(SubsystemInput, n)
}

// DrawStream returns n independent samples from the named stream.
func (r *RandomInput) DrawStream(stream string, n int) ([]Sample, error) {
	if n < 1 {
		return nil, &SampleRequestError{Requested: n}
	}
	return r.fn(r.rng.ForSubsystem(stream), n), nil
}
