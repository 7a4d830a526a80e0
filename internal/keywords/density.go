package keywords

import (
	"math"
	"strings"

	"github.com/jonathan/resume-scorer/internal/textnorm"
)

// Optimal keyword density band, in percent of document words.
const (
	densityOptimalLow  = 2.0
	densityOptimalHigh = 5.0
	densityScoreFloor  = 50.0
	densityOverPenalty = 10.0
)

// QuickCheck returns the percentage (0-100, rounded) of required keywords found
// in the resume via whole-word matching. It is the lightweight alternative to a
// full TF-IDF match.
func QuickCheck(resumeText string, requiredKeywords []string) int {
	if len(requiredKeywords) == 0 {
		return 0
	}

	normalized := textnorm.Normalize(resumeText)
	found := 0
	for _, keyword := range requiredKeywords {
		phrase := textnorm.Normalize(keyword)
		if textnorm.ContainsPhrase(normalized, phrase) {
			found++
		}
	}

	return int(math.Round(float64(found) / float64(len(requiredKeywords)) * 100))
}

// Density scores how densely the given keywords appear in the text, 0-100.
// Below 2% density scales linearly up to 50; 2-5% is the optimal band and
// scores 100; above 5% loses 10 points per percentage point over, floored at
// 50. Multi-word keywords contribute their word count per occurrence.
func Density(text string, kws []string) float64 {
	words := textnorm.ExtractWords(text)
	if len(words) == 0 || len(kws) == 0 {
		return 0
	}

	normalized := textnorm.Normalize(text)
	hay := " " + normalized + " "

	hits := 0
	for _, keyword := range kws {
		phrase := textnorm.Normalize(keyword)
		if phrase == "" {
			continue
		}
		occurrences := countPhrase(hay, " "+phrase+" ")
		hits += occurrences * len(strings.Split(phrase, " "))
	}

	density := float64(hits) / float64(len(words)) * 100

	return bandScore(density)
}

// countPhrase counts whole-word occurrences of needle in hay. The trailing
// boundary space of a match is reusable as the next match's leading boundary,
// so back-to-back repeats all count.
func countPhrase(hay, needle string) int {
	count := 0
	for i := 0; ; {
		j := strings.Index(hay[i:], needle)
		if j < 0 {
			return count
		}
		count++
		i += j + len(needle) - 1
	}
}

func bandScore(density float64) float64 {
	switch {
	case density < densityOptimalLow:
		return density / densityOptimalLow * densityScoreFloor
	case density <= densityOptimalHigh:
		return 100
	default:
		score := 100 - (density-densityOptimalHigh)*densityOverPenalty
		return math.Max(score, densityScoreFloor)
	}
}
