// Package springmass provides the illustrative level models used by the CLI
// and the end-to-end tests: a mass hanging on a spring of uncertain
// stiffness, released from rest under gravity. The quantity of interest is
// the maximum displacement over the simulated window, and fidelity levels
// differ only in the integration time step.
package springmass

import (
	"fmt"

	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// Model simulates one spring-mass configuration at a fixed time step. The
// random input is the spring stiffness, the first (and only required)
// component of the sample vector. Model declares its per-evaluation cost, so
// hierarchies built from it run the pilot in declared-cost mode.
type Model struct {
	Mass     float64 // mass of the suspended body (kg)
	Gravity  float64 // gravitational acceleration (m/s²)
	TimeStep float64 // integration step (s); smaller = finer level
	Duration float64 // simulated window (s)

	cost float64
}

// New creates a spring-mass model with the given mass, time step, and
// declared per-evaluation cost. Gravity defaults to 9.8 m/s² and the
// simulated window to 10 s, matching the reference configuration.
func New(mass, timeStep, cost float64) *Model {
	return &Model{
		Mass:     mass,
		Gravity:  9.8,
		TimeStep: timeStep,
		Duration: 10.0,
		cost:     cost,
	}
}

// Cost returns the declared per-evaluation cost.
func (m *Model) Cost() float64 {
	return m.cost
}

// Evaluate integrates the equation of motion
//
//	x'' = -(k/m) x + g
//
// from rest with stiffness k = sample[0] and returns the maximum
// displacement reached. Integration is classical fixed-step RK4 over the
// model's window; the step size is what separates one fidelity level from
// the next.
func (m *Model) Evaluate(sample mlmc.Sample) (mlmc.Output, error) {
	if len(sample) < 1 {
		return nil, fmt.Errorf("springmass: empty input sample")
	}
	stiffness := sample[0]
	if stiffness <= 0 {
		return nil, fmt.Errorf("springmass: stiffness %v must be positive", stiffness)
	}

	accel := func(x float64) float64 {
		return -(stiffness/m.Mass)*x + m.Gravity
	}

	var x, v, maxDisp float64
	h := m.TimeStep
	for t := 0.0; t < m.Duration; t += h {
		k1x, k1v := v, accel(x)
		k2x, k2v := v+0.5*h*k1v, accel(x+0.5*h*k1x)
		k3x, k3v := v+0.5*h*k2v, accel(x+0.5*h*k2x)
		k4x, k4v := v+h*k3v, accel(x+h*k3x)

		x += h / 6 * (k1x + 2*k2x + 2*k3x + k4x)
		v += h / 6 * (k1v + 2*k2v + 2*k3v + k4v)

		if x > maxDisp {
			maxDisp = x
		}
	}
	return mlmc.Output{maxDisp}, nil
}

// DefaultHierarchy returns the three-level reference hierarchy: time steps
// 1.0, 0.1 and 0.01 s with the measured reference costs per evaluation.
func DefaultHierarchy() (*mlmc.Hierarchy, error) {
	return mlmc.NewHierarchy(
		New(1.5, 1.0, 0.00034791),
		New(1.5, 0.1, 0.00073748),
		New(1.5, 0.01, 0.00086135),
	)
}
