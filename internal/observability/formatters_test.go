package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-scorer/internal/types"
)

func TestPrintScoringResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoringResult{
		OverallScore: 72,
		Grade:        "C+",
		Components: types.ComponentScores{
			types.ComponentContentQuality:   {Score: 68, Max: 100},
			types.ComponentATSCompatibility: {Score: 80, Max: 100},
		},
		Suggestions: []string{
			"Add \"kubernetes\" to your resume, ideally in a bullet describing concrete work where you used it.",
		},
		Metadata: types.ResultMetadata{
			ProcessingMS:     12,
			SuggestionOrigin: types.OriginTemplate,
		},
	}

	p.PrintScoringResult(result)
	output := buf.String()

	assert.Contains(t, output, "SCORING RESULT")
	assert.Contains(t, output, "72/100 (C+)")
	assert.Contains(t, output, types.ComponentContentQuality)
	assert.Contains(t, output, "Suggestions:")
	assert.Contains(t, output, "12ms")
}

func TestPrintScoringResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoringResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJDMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	match := &types.JDMatchResult{
		MatchScore:       64,
		MissingCritical:  []string{"kubernetes", "grpc"},
		Underrepresented: []string{"docker"},
		KeywordAnalysis: types.KeywordAnalysis{
			TotalJDKeywords: 20,
			MatchedKeywords: 13,
		},
	}

	p.PrintJDMatch(match)
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION MATCH")
	assert.Contains(t, output, "64/100")
	assert.Contains(t, output, "13 of 20")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "docker")
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords([]types.KeywordScore{
		{Term: "kafka", Frequency: 4, Score: 0.0213},
		{Term: "golang", Frequency: 2, Score: 0.0154},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "kafka")
	assert.Contains(t, output, "0.0213")
	assert.Contains(t, output, "×4")
}

func TestPrintKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(nil)

	assert.Empty(t, buf.String())
}

func TestPrintWeightConfiguration(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	config := &types.WeightConfiguration{
		ID:    uuid.New(),
		Role:  "software_engineer",
		State: types.StateProposed,
		Weights: types.WeightProfile{
			types.ComponentContentQuality:   25,
			types.ComponentATSCompatibility: 40,
			types.ComponentFormatStructure:  15,
			types.ComponentImpactMetrics:    20,
		},
	}

	p.PrintWeightConfiguration(config)
	output := buf.String()

	assert.Contains(t, output, "WEIGHT CONFIGURATION")
	assert.Contains(t, output, "software_engineer")
	assert.Contains(t, output, string(types.StateProposed))
	assert.Contains(t, output, "40.000")
}

func TestPrintFeedbackAnalytics(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analytics := &types.FeedbackAnalytics{
		WindowStart:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Count:         8,
		AverageRating: 3.5,
		HelpfulRate:   0.75,
		InaccurateComponents: map[string]int{
			types.ComponentImpactMetrics: 3,
		},
	}

	p.PrintFeedbackAnalytics(analytics)
	output := buf.String()

	assert.Contains(t, output, "FEEDBACK ANALYTICS")
	assert.Contains(t, output, "2026-01-01")
	assert.Contains(t, output, "3.50 avg")
	assert.Contains(t, output, "75%")
	assert.Contains(t, output, types.ComponentImpactMetrics)
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoringResult{
		OverallScore: 50,
		Grade:        "F",
		Suggestions: []string{
			"A very long suggestion that should be truncated to fit inside the fixed-width box output",
		},
	}

	p.PrintScoringResult(result)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
