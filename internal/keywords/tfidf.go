// Package keywords ranks terms and phrases in a document and provides the
// lightweight keyword-presence checks used by the scorers.
package keywords

import (
	"math"
	"sort"

	"github.com/jonathan/resume-scorer/internal/textnorm"
	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// DefaultTopN is the keyword list length when the caller does not specify one.
	DefaultTopN = 25

	// minTermLength filters out short tokens that carry no signal.
	minTermLength = 3
)

// ExtractTFIDF returns the topN highest-scoring terms in a document.
//
// IDF is approximated per single document as ln((|tokens|+1)/(count+1)): terms
// frequent within the document score well unless they are so dominant they
// swamp the signal. Ties break by frequency (descending) then lexical order,
// so output is fully deterministic.
func ExtractTFIDF(text string, topN int) []types.KeywordScore {
	if topN <= 0 {
		topN = DefaultTopN
	}

	tokens := textnorm.RemoveStopWords(textnorm.ExtractWords(text))
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	docLen := float64(len(tokens))
	scores := make([]types.KeywordScore, 0, len(counts))
	for term, count := range counts {
		if len(term) < minTermLength {
			continue
		}
		tf := float64(count) / docLen
		idf := math.Log((docLen + 1) / float64(count+1))
		scores = append(scores, types.KeywordScore{
			Term:      term,
			Frequency: count,
			Score:     tf * idf,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		if scores[i].Frequency != scores[j].Frequency {
			return scores[i].Frequency > scores[j].Frequency
		}
		return scores[i].Term < scores[j].Term
	})

	if len(scores) > topN {
		scores = scores[:topN]
	}
	return scores
}

// ExtractPhrases mines 2-word and 3-word sliding-window phrases occurring at
// least minFrequency times, sorted by frequency descending (lexical order on
// ties).
func ExtractPhrases(text string, minFrequency int) []types.PhraseFrequency {
	if minFrequency < 1 {
		minFrequency = 2
	}

	tokens := textnorm.RemoveStopWords(textnorm.ExtractWords(text))
	counts := make(map[string]int)
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			phrase := tokens[i]
			for j := i + 1; j < i+n; j++ {
				phrase += " " + tokens[j]
			}
			counts[phrase]++
		}
	}

	phrases := make([]types.PhraseFrequency, 0, len(counts))
	for phrase, count := range counts {
		if count < minFrequency {
			continue
		}
		phrases = append(phrases, types.PhraseFrequency{Phrase: phrase, Frequency: count})
	}

	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Frequency != phrases[j].Frequency {
			return phrases[i].Frequency > phrases[j].Frequency
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})
	return phrases
}
