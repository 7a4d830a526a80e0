package scoring

import (
	"github.com/jonathan/resume-scorer/internal/types"
)

// Relative weights of the 3-axis component scores in the overall result.
const (
	structureWeight = 0.3
	contentWeight   = 0.4
	tailoringWeight = 0.3
)

// CalculateOverallScore combines normalized 0-100 component scores using a
// percentage weight profile: sum of score/100 * weight. With a profile summing
// to 100, the result stays within [0, 100]. Components absent from the profile
// contribute nothing.
func CalculateOverallScore(components types.ComponentScores, weights types.WeightProfile) float64 {
	total := 0.0
	for name, weight := range weights {
		component, ok := components[name]
		if !ok {
			continue
		}
		total += component.Score / 100 * weight
	}
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// Overall3Axis combines the structure/content/tailoring scores (max 40/60/40)
// into a 0-100 overall score.
func Overall3Axis(components types.ComponentScores) float64 {
	score := (ratio(components[types.ComponentStructure])*structureWeight +
		ratio(components[types.ComponentContent])*contentWeight +
		ratio(components[types.ComponentTailoring])*tailoringWeight) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func ratio(c types.ComponentScore) float64 {
	if c.Max <= 0 {
		return 0
	}
	return c.Score / c.Max
}
