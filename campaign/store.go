// Package campaign persists the intermediate artifacts of a split MLMC
// workflow: the plan step writes a manifest and the per-level input draws,
// the evaluation step writes raw per-level model outputs, and the estimate
// step reads both back to aggregate. Each artifact is a standalone JSON
// document under one campaign directory, so the expensive evaluation step
// can run anywhere and at any time between plan and estimate.
package campaign

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mlmc-sim/mlmc-sim/mlmc"
)

// Manifest records everything the estimate step needs to interpret the
// stored artifacts: the campaign identity, the pilot results, and the
// allocation the inputs were drawn under.
type Manifest struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Seed      int64   `json:"seed"`
	Epsilon   float64 `json:"epsilon"`
	PilotSize int     `json:"pilot_size"`

	Costs       []float64   `json:"costs"`
	Variances   [][]float64 `json:"variances"`
	SampleSizes []int       `json:"sample_sizes"`
}

// NewManifest creates a manifest with a fresh campaign ID.
func NewManifest(seed int64, epsilon float64, pilotSize int) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
		Epsilon:   epsilon,
		PilotSize: pilotSize,
	}
}

// LevelOutputs holds the raw model outputs realized for one level's draws.
// Fine are the level-l model outputs; Coarse are the level-(l-1) model
// outputs on the same draws, empty for level 0.
type LevelOutputs struct {
	Level  int           `json:"level"`
	Fine   []mlmc.Output `json:"fine"`
	Coarse []mlmc.Output `json:"coarse,omitempty"`
}

// Store reads and writes campaign artifacts under a single directory.
type Store struct {
	dir string
}

// NewStore opens a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("campaign: create store dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.dir, "manifest.json")
}

func (s *Store) inputsPath(level int) string {
	return filepath.Join(s.dir, fmt.Sprintf("level%d_inputs.json", level))
}

func (s *Store) outputsPath(level int) string {
	return filepath.Join(s.dir, fmt.Sprintf("level%d_outputs.json", level))
}

// SaveManifest writes the campaign manifest.
func (s *Store) SaveManifest(m *Manifest) error {
	return s.writeJSON(s.manifestPath(), m)
}

// LoadManifest reads the campaign manifest.
func (s *Store) LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := s.readJSON(s.manifestPath(), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveInputs writes the planned input draws for one level.
func (s *Store) SaveInputs(level int, samples []mlmc.Sample) error {
	return s.writeJSON(s.inputsPath(level), samples)
}

// LoadInputs reads the planned input draws for one level.
func (s *Store) LoadInputs(level int) ([]mlmc.Sample, error) {
	var samples []mlmc.Sample
	if err := s.readJSON(s.inputsPath(level), &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// SaveOutputs writes the realized model outputs for one level.
func (s *Store) SaveOutputs(out *LevelOutputs) error {
	return s.writeJSON(s.outputsPath(out.Level), out)
}

// LoadOutputs reads the realized model outputs for one level.
func (s *Store) LoadOutputs(level int) (*LevelOutputs, error) {
	var out LevelOutputs
	if err := s.readJSON(s.outputsPath(level), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("campaign: encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("campaign: write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("campaign: read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("campaign: decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
