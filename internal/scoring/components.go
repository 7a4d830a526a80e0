package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/textnorm"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Maximum points per 3-axis component.
const (
	StructureMax = 40.0
	ContentMax   = 60.0
	TailoringMax = 40.0
)

var (
	reEmail      = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone      = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	reNumber     = regexp.MustCompile(`\d+(\.\d+)?%?`)
	reBulletLine = regexp.MustCompile(`(?m)^\s*[-•*]\s+\S`)
)

// sectionHeadings are the standard resume sections an ATS expects to find.
var sectionHeadings = []string{
	"experience", "education", "skills", "summary", "objective",
	"projects", "certifications",
}

// actionVerbs mark achievement-oriented writing. Matched against normalized text.
var actionVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed",
	"drove", "established", "implemented", "improved", "increased", "launched",
	"led", "managed", "optimized", "reduced", "shipped", "streamlined",
}

// Basic computes the 3-axis structure/content/tailoring component scores.
// Tailoring gets neutral half credit when no job description is supplied.
func Basic(resumeText, jobDescription string) types.ComponentScores {
	return types.ComponentScores{
		types.ComponentStructure: {Score: structureScore(resumeText), Max: StructureMax},
		types.ComponentContent:   {Score: contentScore(resumeText), Max: ContentMax},
		types.ComponentTailoring: {Score: tailoringScore(resumeText, jobDescription), Max: TailoringMax},
	}
}

// Pro computes the 4-axis PRO component scores, each normalized to 0-100.
// When a JD match result is available its match score feeds the ATS
// compatibility axis directly.
func Pro(resumeText string, jdMatch *types.JDMatchResult) types.ComponentScores {
	return types.ComponentScores{
		types.ComponentContentQuality:   {Score: contentScore(resumeText) / ContentMax * 100, Max: 100},
		types.ComponentATSCompatibility: {Score: atsScore(resumeText, jdMatch), Max: 100},
		types.ComponentFormatStructure:  {Score: structureScore(resumeText) / StructureMax * 100, Max: 100},
		types.ComponentImpactMetrics:    {Score: impactScore(resumeText), Max: 100},
	}
}

// structureScore awards points for the skeleton an ATS parses: standard
// section headings, contact details and bullet formatting. Max 40.
func structureScore(text string) float64 {
	normalized := textnorm.Normalize(text)

	score := 0.0
	for _, heading := range sectionHeadings {
		if textnorm.ContainsPhrase(normalized, heading) {
			score += 4
		}
		if score >= 20 {
			break
		}
	}

	if reEmail.MatchString(text) {
		score += 5
	}
	if rePhone.MatchString(text) {
		score += 5
	}
	if len(reBulletLine.FindAllString(text, 4)) >= 3 {
		score += 10
	}

	return math.Min(score, StructureMax)
}

// contentScore measures achievement-oriented writing: action verbs, quantified
// statements and a word count long enough to carry substance. Max 60.
func contentScore(text string) float64 {
	normalized := textnorm.Normalize(text)
	words := textnorm.ExtractWords(text)

	score := 0.0

	verbs := 0
	for _, verb := range actionVerbs {
		if textnorm.ContainsPhrase(normalized, verb) {
			verbs++
		}
	}
	score += math.Min(float64(verbs)*4, 24)

	numbers := len(reNumber.FindAllString(text, 8))
	score += math.Min(float64(numbers)*2, 16)

	// Word count band: under 150 words is thin, 300+ is full credit.
	switch n := len(words); {
	case n >= 300:
		score += 20
	case n >= 150:
		score += 10 + float64(n-150)/150*10
	default:
		score += float64(n) / 150 * 10
	}

	return math.Min(score, ContentMax)
}

// tailoringScore measures how much of the job description's keyword set the
// resume covers. Without a JD there is nothing to tailor against, so the score
// is neutral half credit. Max 40.
func tailoringScore(resumeText, jobDescription string) float64 {
	if strings.TrimSpace(jobDescription) == "" {
		return TailoringMax / 2
	}

	jdKeywords := keywords.ExtractTFIDF(jobDescription, 20)
	if len(jdKeywords) == 0 {
		return TailoringMax / 2
	}

	terms := make([]string, len(jdKeywords))
	for i, kw := range jdKeywords {
		terms[i] = kw.Term
	}
	coverage := float64(keywords.QuickCheck(resumeText, terms)) / 100
	return coverage * TailoringMax
}

// atsScore feeds the JD match score through when available, otherwise falls
// back to keyword density over the resume's own top terms plus structural
// parseability.
func atsScore(resumeText string, match *types.JDMatchResult) float64 {
	if match != nil {
		return float64(match.MatchScore)
	}

	// No JD to compare against: score general ATS friendliness.
	score := structureScore(resumeText) / StructureMax * 50

	top := keywords.ExtractTFIDF(resumeText, 10)
	terms := make([]string, len(top))
	for i, kw := range top {
		terms[i] = kw.Term
	}
	score += keywords.Density(resumeText, terms) / 100 * 50

	return math.Min(score, 100)
}

// impactScore is the fraction of bullet lines carrying a number or percentage,
// scaled to 0-100. Resumes without bullet lines score on sentence-level
// quantification instead.
func impactScore(text string) float64 {
	lines := strings.Split(text, "\n")
	bullets := 0
	quantified := 0
	for _, line := range lines {
		if !reBulletLine.MatchString(line) {
			continue
		}
		bullets++
		if reNumber.MatchString(line) {
			quantified++
		}
	}

	if bullets == 0 {
		sentences := strings.Count(text, ".") + 1
		numbers := len(reNumber.FindAllString(text, -1))
		return math.Min(float64(numbers)/float64(sentences)*100, 100)
	}

	return float64(quantified) / float64(bullets) * 100
}
