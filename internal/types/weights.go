package types

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// WeightProfile maps component names to percentage weights. A well-formed
// profile sums to 100.
type WeightProfile map[string]float64

// weightSumTolerance is the allowed floating-point drift on the sum-to-100 invariant.
const weightSumTolerance = 1e-6

// Sum returns the total of all weights in the profile.
func (p WeightProfile) Sum() float64 {
	total := 0.0
	for _, w := range p {
		total += w
	}
	return total
}

// IsNormalized reports whether the profile sums to 100 within tolerance.
func (p WeightProfile) IsNormalized() bool {
	return math.Abs(p.Sum()-100) <= weightSumTolerance
}

// Clone returns a copy of the profile that can be mutated independently.
func (p WeightProfile) Clone() WeightProfile {
	out := make(WeightProfile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Normalize returns a copy of the profile scaled so the weights sum to
// exactly 100. Returns nil when the profile is empty or sums to zero or less,
// since no meaningful scaling exists.
func (p WeightProfile) Normalize() WeightProfile {
	sum := p.Sum()
	if len(p) == 0 || sum <= 0 {
		return nil
	}
	out := make(WeightProfile, len(p))
	for k, v := range p {
		out[k] = v / sum * 100
	}
	return out
}

// ConfigState is the lifecycle state of a WeightConfiguration.
type ConfigState string

// Weight configuration lifecycle states. A configuration moves
// proposed -> validated -> active -> superseded and is never deleted.
const (
	StateProposed   ConfigState = "proposed"
	StateValidated  ConfigState = "validated"
	StateActive     ConfigState = "active"
	StateSuperseded ConfigState = "superseded"
)

// WeightConfiguration is a versioned weight profile. At most one configuration
// is active per role (empty role means the global default) at any time.
type WeightConfiguration struct {
	ID        uuid.UUID     `json:"id"`
	Weights   WeightProfile `json:"weights"`
	Role      string        `json:"role,omitempty"`
	State     ConfigState   `json:"state"`
	CreatedAt time.Time     `json:"created_at"`
}

// Active reports whether the configuration is currently active.
func (c *WeightConfiguration) Active() bool {
	return c.State == StateActive
}
