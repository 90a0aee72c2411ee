package mlmc

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === CampaignKey ===

// CampaignKey uniquely identifies a reproducible estimation campaign.
// Two campaigns with the same CampaignKey and identical configuration
// MUST produce bit-for-bit identical results.
type CampaignKey int64

// NewCampaignKey creates a CampaignKey from a seed value.
func NewCampaignKey(seed int64) CampaignKey {
	return CampaignKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemInput is the default RNG subsystem for input draws.
	// Uses the master seed directly so that --seed alone pins the draws.
	SubsystemInput = "input"

	// SubsystemPilot is the RNG subsystem for pilot-phase draws. Keeping the
	// pilot on its own stream means changing the pilot size never perturbs
	// the full-phase level draws.
	SubsystemPilot = "pilot"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemInput: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        CampaignKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a CampaignKey.
func NewPartitionedRNG(key CampaignKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemInput {
		derivedSeed = int64(p.key)
	} else {
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the CampaignKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() CampaignKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// SubsystemLevel returns the subsystem name for the full-phase draws of a
// single hierarchy level. Per-level streams stay isolated from the pilot
// stream and from each other, so level draws are independent by construction.
func SubsystemLevel(l int) string {
	return fmt.Sprintf("level_%d", l)
}
