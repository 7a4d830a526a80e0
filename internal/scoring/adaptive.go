package scoring

import (
	"math/rand/v2"

	"github.com/jonathan/resume-scorer/internal/types"
)

// maxVariance caps how far a single adaptive perturbation may move a weight,
// as a fraction of its current value.
const maxVariance = 0.5

// ApplyAdaptiveWeights perturbs each weight by up to ±variance of its value
// and renormalizes the result to sum to 100. Variance is clamped to [0, 0.5];
// negative weights cannot result. A nil or zero-sum profile returns the
// default profile unchanged.
func ApplyAdaptiveWeights(base types.WeightProfile, variance float64) types.WeightProfile {
	if variance < 0 {
		variance = 0
	}
	if variance > maxVariance {
		variance = maxVariance
	}

	normalized := base.Normalize()
	if normalized == nil {
		return defaultProfile.Clone()
	}

	perturbed := make(types.WeightProfile, len(normalized))
	for component, weight := range normalized {
		jitter := (rand.Float64()*2 - 1) * variance
		perturbed[component] = weight * (1 + jitter)
	}

	return perturbed.Normalize()
}
