// Package jdmatch compares a resume's keyword profile against a job
// description and produces a 0-100 match score with per-keyword gap analysis.
package jdmatch

import (
	"math"
	"strings"
	"sync"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Minimum input lengths enforced before any scoring runs.
const (
	MinResumeLength = 100
	MinJDLength     = 50
)

const (
	resumeTopN = 50
	jdTopN     = 40

	// A keyword is underrepresented when its resume score falls below half of
	// its JD score.
	underrepresentedRatio = 0.5

	missingPenaltyPer   = 2.0
	missingPenaltyCap   = 20.0
	underPenaltyPer     = 1.0
	underPenaltyCap     = 10.0
	irrelevantThreshold = 0.1
	irrelevantCap       = 10
	comparisonCap       = 20
)

// Analyze scores how well a resume covers a job description's keywords.
// Returns a ValidationError when either text is below its minimum length.
func Analyze(resumeText, jobDescription string) (*types.JDMatchResult, error) {
	if n := len(strings.TrimSpace(resumeText)); n < MinResumeLength {
		return nil, &ValidationError{Field: "resume_text", MinLength: MinResumeLength, Actual: n}
	}
	if n := len(strings.TrimSpace(jobDescription)); n < MinJDLength {
		return nil, &ValidationError{Field: "job_description", MinLength: MinJDLength, Actual: n}
	}

	// The two extractions are independent and dominate the cost of a match.
	var resumeKeywords, jdKeywords []types.KeywordScore
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		resumeKeywords = keywords.ExtractTFIDF(resumeText, resumeTopN)
	}()
	go func() {
		defer wg.Done()
		jdKeywords = keywords.ExtractTFIDF(jobDescription, jdTopN)
	}()
	wg.Wait()

	resumeScores := make(map[string]float64, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeScores[kw.Term] = kw.Score
	}
	jdTerms := make(map[string]bool, len(jdKeywords))
	for _, kw := range jdKeywords {
		jdTerms[kw.Term] = true
	}

	missing := []string{}
	underrepresented := []string{}
	comparisons := []types.KeywordComparison{}

	for i, kw := range jdKeywords {
		resumeScore, present := resumeScores[kw.Term]

		var status types.KeywordStatus
		switch {
		case !present:
			status = types.StatusMissing
			missing = append(missing, kw.Term)
		case resumeScore < kw.Score*underrepresentedRatio:
			status = types.StatusUnderrepresented
			underrepresented = append(underrepresented, kw.Term)
		default:
			status = types.StatusMatched
		}

		if i < comparisonCap {
			comparisons = append(comparisons, types.KeywordComparison{
				Keyword:     kw.Term,
				JDScore:     kw.Score,
				ResumeScore: resumeScore,
				Status:      status,
			})
		}
	}

	total := len(jdKeywords)
	matched := total - len(missing)
	ratio := 0.0
	if total > 0 {
		ratio = float64(matched) / float64(total)
	}

	base := ratio * 100
	penalties := math.Min(float64(len(missing))*missingPenaltyPer, missingPenaltyCap) +
		math.Min(float64(len(underrepresented))*underPenaltyPer, underPenaltyCap)
	score := int(math.Round(base - penalties))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	// Resume keywords with real weight that the JD never asks for: a signal of
	// over-indexing on off-topic content.
	irrelevant := []string{}
	for _, kw := range resumeKeywords {
		if len(irrelevant) >= irrelevantCap {
			break
		}
		if kw.Score > irrelevantThreshold && !jdTerms[kw.Term] {
			irrelevant = append(irrelevant, kw.Term)
		}
	}

	return &types.JDMatchResult{
		MatchScore:       score,
		MissingCritical:  missing,
		Underrepresented: underrepresented,
		Irrelevant:       irrelevant,
		KeywordAnalysis: types.KeywordAnalysis{
			TotalJDKeywords:     total,
			MatchedKeywords:     matched,
			MatchRatio:          ratio,
			FrequencyComparison: comparisons,
		},
	}, nil
}
