// Package inputs builds mlmc input sources from declarative distribution
// specs. Each source draws independent vectors whose components follow one
// of the gonum/stat/distuv univariate distributions, optionally shifted and
// scaled, and is bound to the campaign key for reproducibility.
package inputs

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// Spec describes a univariate input distribution applied independently to
// every component of a sample vector.
type Spec struct {
	// Kind selects the distribution: "uniform", "normal", "beta" or "gamma".
	Kind string `yaml:"kind"`

	// Dim is the number of independent components per sample. Zero means 1.
	Dim int `yaml:"dim,omitempty"`

	// Uniform parameters.
	Min float64 `yaml:"min,omitempty"`
	Max float64 `yaml:"max,omitempty"`

	// Normal parameters.
	Mean   float64 `yaml:"mean,omitempty"`
	Stddev float64 `yaml:"stddev,omitempty"`

	// Beta / gamma shape parameters.
	Alpha float64 `yaml:"alpha,omitempty"`
	Beta  float64 `yaml:"beta,omitempty"`

	// Shift and Scale transform each drawn value as shift + scale*x.
	// A zero Scale means 1.
	Shift float64 `yaml:"shift,omitempty"`
	Scale float64 `yaml:"scale,omitempty"`
}

// New builds a RandomInput drawing from the described distribution, seeded
// from the campaign key. Malformed parameters fail with
// *mlmc.InvalidParameterError naming the offending value.
func New(spec Spec, key mlmc.CampaignKey) (*mlmc.RandomInput, error) {
	dim := spec.Dim
	if dim == 0 {
		dim = 1
	}
	if dim < 1 {
		return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("sample dimension %d must be positive", dim)}
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}

	maker, err := randerFor(spec)
	if err != nil {
		return nil, err
	}

	fn := func(rng *rand.Rand, n int) []mlmc.Sample {
		dist := maker(rng)
		samples := make([]mlmc.Sample, n)
		for i := range samples {
			s := make(mlmc.Sample, dim)
			for c := range s {
				s[c] = spec.Shift + scale*dist.Rand()
			}
			samples[i] = s
		}
		return samples
	}
	return mlmc.NewRandomInput(fn, key)
}

// randerFor validates the spec and returns a factory binding the
// distribution to a stream's generator. The factory is re-invoked per draw
// call so that each named stream keeps its own distribution state.
func randerFor(spec Spec) (func(*rand.Rand) distuv.Rander, error) {
	switch spec.Kind {
	case "uniform":
		if spec.Min >= spec.Max {
			return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("uniform min %v must be below max %v", spec.Min, spec.Max)}
		}
		return func(rng *rand.Rand) distuv.Rander {
			return distuv.Uniform{Min: spec.Min, Max: spec.Max, Src: source{rng}}
		}, nil
	case "normal":
		if spec.Stddev <= 0 {
			return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("normal stddev %v must be positive", spec.Stddev)}
		}
		return func(rng *rand.Rand) distuv.Rander {
			return distuv.Normal{Mu: spec.Mean, Sigma: spec.Stddev, Src: source{rng}}
		}, nil
	case "beta":
		if spec.Alpha <= 0 || spec.Beta <= 0 {
			return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("beta shape parameters alpha=%v beta=%v must be positive", spec.Alpha, spec.Beta)}
		}
		return func(rng *rand.Rand) distuv.Rander {
			return distuv.Beta{Alpha: spec.Alpha, Beta: spec.Beta, Src: source{rng}}
		}, nil
	case "gamma":
		if spec.Alpha <= 0 || spec.Beta <= 0 {
			return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("gamma parameters alpha=%v beta=%v must be positive", spec.Alpha, spec.Beta)}
		}
		return func(rng *rand.Rand) distuv.Rander {
			return distuv.Gamma{Alpha: spec.Alpha, Beta: spec.Beta, Src: source{rng}}
		}, nil
	default:
		return nil, &mlmc.InvalidParameterError{Reason: fmt.Sprintf("unknown distribution kind %q", spec.Kind)}
	}
}

// source adapts a math/rand generator to the gonum source interface, so
// distuv draws consume the partitioned stream the engine hands us.
type source struct {
	r *rand.Rand
}

func (s source) Uint64() uint64 {
	return s.r.Uint64()
}

func (s source) Seed(seed uint64) {
	s.r.Seed(int64(seed))
}
