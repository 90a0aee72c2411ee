package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlmc-sim/mlmc-sim/mlmc"
	"github.com/mlmc-sim/mlmc-sim/mlmc/inputs"
	"github.com/mlmc-sim/mlmc-sim/springmass"
)

// CampaignConfig is the top-level YAML campaign description: the uncertain
// input, the level hierarchy, and the estimation parameters.
type CampaignConfig struct {
	Seed      int64   `yaml:"seed"`
	Epsilon   float64 `yaml:"epsilon"`
	PilotSize int     `yaml:"pilot_size"`
	Workers   int     `yaml:"workers,omitempty"`

	Input  inputs.Spec   `yaml:"input"`
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig describes one spring-mass fidelity level. Levels must be
// listed coarsest first; the time step is what separates levels.
type LevelConfig struct {
	Mass     float64 `yaml:"mass"`
	TimeStep float64 `yaml:"time_step"`
	Cost     float64 `yaml:"cost"`
}

// DefaultCampaignConfig returns the built-in spring-mass reference campaign:
// stiffness drawn from a shifted beta distribution, three levels at time
// steps 1.0, 0.1 and 0.01 with their measured reference costs.
func DefaultCampaignConfig() *CampaignConfig {
	return &CampaignConfig{
		Seed:      1,
		Epsilon:   0.0413,
		PilotSize: 100,
		Workers:   1,
		Input: inputs.Spec{
			Kind:  "beta",
			Shift: 1.0,
			Scale: 2.5,
			Alpha: 3.0,
			Beta:  2.0,
		},
		Levels: []LevelConfig{
			{Mass: 1.5, TimeStep: 1.0, Cost: 0.00034791},
			{Mass: 1.5, TimeStep: 0.1, Cost: 0.00073748},
			{Mass: 1.5, TimeStep: 0.01, Cost: 0.00086135},
		},
	}
}

// LoadCampaignConfig reads a campaign config from a YAML file.
func LoadCampaignConfig(path string) (*CampaignConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg CampaignConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the estimation parameters and the level list. Distribution
// parameters are validated by the inputs package at source construction.
func (c *CampaignConfig) Validate() error {
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon %v must be positive", c.Epsilon)
	}
	if c.PilotSize < 2 {
		return fmt.Errorf("pilot_size %d must be at least 2", c.PilotSize)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	for i, lv := range c.Levels {
		if lv.Mass <= 0 {
			return fmt.Errorf("level %d: mass %v must be positive", i, lv.Mass)
		}
		if lv.TimeStep <= 0 {
			return fmt.Errorf("level %d: time_step %v must be positive", i, lv.TimeStep)
		}
		if lv.Cost <= 0 {
			return fmt.Errorf("level %d: cost %v must be positive", i, lv.Cost)
		}
	}
	return nil
}

// BuildSimulator constructs the simulator described by the config: the
// distribution-backed input source seeded from the campaign key and the
// spring-mass hierarchy.
func (c *CampaignConfig) BuildSimulator() (*mlmc.Simulator, error) {
	source, err := inputs.New(c.Input, mlmc.NewCampaignKey(c.Seed))
	if err != nil {
		return nil, err
	}
	models := make([]mlmc.Model, len(c.Levels))
	for i, lv := range c.Levels {
		models[i] = springmass.New(lv.Mass, lv.TimeStep, lv.Cost)
	}
	hierarchy, err := mlmc.NewHierarchy(models...)
	if err != nil {
		return nil, err
	}
	sim, err := mlmc.NewSimulator(source, hierarchy)
	if err != nil {
		return nil, err
	}
	if c.Workers > 1 {
		sim.Workers = c.Workers
	}
	return sim, nil
}
