package mlmc

import "math/rand"

// Synthetic level models shared across the engine tests. All declare costs
// unless wrapped in uncosted, which strips the Cost method and forces the
// pilot into measured-cost mode.

type identityModel struct {
	cost float64
}

func (m identityModel) Evaluate(s Sample) (Output, error) {
	out := make(Output, len(s))
	copy(out, s)
	return out, nil
}

func (m identityModel) Cost() float64 { return m.cost }

type offsetModel struct {
	offset float64
	cost   float64
}

func (m offsetModel) Evaluate(s Sample) (Output, error) {
	out := make(Output, len(s))
	for i, v := range s {
		out[i] = v + m.offset
	}
	return out, nil
}

func (m offsetModel) Cost() float64 { return m.cost }

type scaleModel struct {
	factor float64
	cost   float64
}

func (m scaleModel) Evaluate(s Sample) (Output, error) {
	out := make(Output, len(s))
	for i, v := range s {
		out[i] = v * m.factor
	}
	return out, nil
}

func (m scaleModel) Cost() float64 { return m.cost }

type constModel struct {
	value float64
	cost  float64
}

func (m constModel) Evaluate(s Sample) (Output, error) {
	return Output{m.value}, nil
}

func (m constModel) Cost() float64 { return m.cost }

// uncosted strips the Cost method from a model.
type uncosted struct {
	Model
}

// newUniformSource returns a source drawing scalar U(0,1) samples bound to
// the campaign key.
func newUniformSource(key CampaignKey) *RandomInput {
	fn := func(rng *rand.Rand, n int) []Sample {
		samples := make([]Sample, n)
		for i := range samples {
			samples[i] = Sample{rng.Float64()}
		}
		return samples
	}
	src, err := NewRandomInput(fn, key)
	if err != nil {
		panic(err)
	}
	return src
}

func mustHierarchy(models ...Model) *Hierarchy {
	h, err := NewHierarchy(models...)
	if err != nil {
		panic(err)
	}
	return h
}

func mustSimulator(source InputSource, h *Hierarchy) *Simulator {
	s, err := NewSimulator(source, h)
	if err != nil {
		panic(err)
	}
	return s
}
