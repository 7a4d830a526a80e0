package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/jdmatch"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/suggestions"
	"github.com/jonathan/resume-scorer/internal/tuning"
	"github.com/jonathan/resume-scorer/internal/types"
)

const testResume = `SUMMARY
Backend engineer with six years of experience building distributed systems in go and python.

EXPERIENCE
- Led migration of a monolith to microservices, reducing deploy time by 40%
- Built a kafka ingestion pipeline processing 2 million events per day
- Improved api latency by 35% through caching and query tuning

SKILLS
go, python, kafka, postgresql, docker, terraform

EDUCATION
BS Computer Science`

const testJD = `We are hiring a backend engineer. Required skills: go, kubernetes,
kafka, postgresql, grpc. Experience with docker, terraform and distributed
systems is expected. You will design api services in go and operate kafka
clusters in production with kubernetes.`

// stubClient is a canned llm.Client for exercising the AI path.
type stubClient struct {
	jsonResponse string
	textResponse string
	err          error
}

func (c *stubClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.textResponse, c.err
}

func (c *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.jsonResponse, c.err
}

func (c *stubClient) Close() error { return nil }

func TestCalculateScore_RejectsShortResume(t *testing.T) {
	eng := New(nil, nil)

	_, err := eng.CalculateScore(context.Background(), "too short", "")

	var vErr *jdmatch.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "resume_text", vErr.Field)
}

func TestCalculateScore_ThreeAxes(t *testing.T) {
	eng := New(nil, nil)

	result, err := eng.CalculateScore(context.Background(), testResume, testJD)
	require.NoError(t, err)

	assert.Len(t, result.Components, 3)
	assert.Contains(t, result.Components, types.ComponentStructure)
	assert.Contains(t, result.Components, types.ComponentContent)
	assert.Contains(t, result.Components, types.ComponentTailoring)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.NotEmpty(t, result.Grade)
	assert.Nil(t, result.JDMatch)
}

func TestCalculateProScore_RejectsInvalidOptions(t *testing.T) {
	eng := New(nil, nil)

	_, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring options")
}

func TestCalculateProScore_TemplateSuggestionsWithJD(t *testing.T) {
	eng := New(nil, nil)

	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:        "software_engineer",
		JobDescription: testJD,
	})
	require.NoError(t, err)

	require.NotNil(t, result.JDMatch)
	assert.Len(t, result.Components, 4)
	assert.NotEmpty(t, result.Suggestions)
	assert.Equal(t, types.OriginTemplate, result.Metadata.SuggestionOrigin)
	assert.False(t, result.Metadata.AdaptiveWeights)
	assert.InDelta(t, 100.0, result.Metadata.WeightsUsed.Sum(), 1e-6)
}

func TestCalculateProScore_NoJobDescription(t *testing.T) {
	eng := New(nil, nil)

	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole: "software_engineer",
	})
	require.NoError(t, err)

	assert.Nil(t, result.JDMatch)
	assert.Len(t, result.Components, 4)
	assert.NotEmpty(t, result.Suggestions)
	assert.Empty(t, result.AISummary)
}

func TestCalculateProScore_CustomWeightsNormalized(t *testing.T) {
	eng := New(nil, nil)

	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:        "software_engineer",
		JobDescription: testJD,
		CustomWeights: types.WeightProfile{
			types.ComponentContentQuality:   2,
			types.ComponentATSCompatibility: 1,
			types.ComponentFormatStructure:  1,
			types.ComponentImpactMetrics:    1,
		},
	})
	require.NoError(t, err)

	assert.InDelta(t, 40.0, result.Metadata.WeightsUsed[types.ComponentContentQuality], 1e-9)
	assert.InDelta(t, 100.0, result.Metadata.WeightsUsed.Sum(), 1e-9)
	assert.False(t, result.Metadata.AdaptiveWeights)
}

func TestCalculateProScore_RejectsZeroSumCustomWeights(t *testing.T) {
	eng := New(nil, nil)

	_, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:       "software_engineer",
		CustomWeights: types.WeightProfile{types.ComponentContentQuality: 0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom weights")
}

func TestCalculateProScore_AdaptiveWeightsUseActiveConfiguration(t *testing.T) {
	store := tuning.NewMemoryStore()
	tuner := tuning.New(store, store)
	ctx := context.Background()

	tuned := types.WeightProfile{
		types.ComponentContentQuality:   10,
		types.ComponentATSCompatibility: 55,
		types.ComponentFormatStructure:  15,
		types.ComponentImpactMetrics:    20,
	}
	config := types.WeightConfiguration{
		ID:        uuid.New(),
		Role:      "software_engineer",
		Weights:   tuned,
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, config))
	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, config.ID))

	eng := New(tuner, nil)
	result, err := eng.CalculateProScore(ctx, testResume, types.ScoreOptions{
		JobRole:            "Software Engineer",
		JobDescription:     testJD,
		UseAdaptiveWeights: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Metadata.AdaptiveWeights)
	assert.InDelta(t, 55.0, result.Metadata.WeightsUsed[types.ComponentATSCompatibility], 1e-6)
}

func TestCalculateProScore_AdaptiveWithoutActiveConfigFallsBack(t *testing.T) {
	store := tuning.NewMemoryStore()
	tuner := tuning.New(store, store)

	eng := New(tuner, nil)
	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:            "software_engineer",
		JobDescription:     testJD,
		UseAdaptiveWeights: true,
	})
	require.NoError(t, err)

	// No configuration was ever activated, so the static profile applied and
	// the metadata must not claim tuned weights.
	assert.False(t, result.Metadata.AdaptiveWeights)
	assert.InDelta(t, 100.0, result.Metadata.WeightsUsed.Sum(), 1e-6)
}

func TestCalculateProScore_AIInsights(t *testing.T) {
	client := &stubClient{
		jsonResponse: `{"suggestions": ["Add a dedicated kubernetes bullet describing cluster operations you owned."]}`,
		textResponse: "Strong backend profile with a kubernetes gap.",
	}
	ai := suggestions.NewAIStrategy(client, time.Second)
	eng := New(nil, ai)

	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:           "software_engineer",
		JobDescription:    testJD,
		IncludeAIInsights: true,
	})
	require.NoError(t, err)

	assert.Equal(t, types.OriginAI, result.Metadata.SuggestionOrigin)
	assert.Len(t, result.Suggestions, 1)
	assert.Equal(t, "Strong backend profile with a kubernetes gap.", result.AISummary)
}

func TestCalculateProScore_AIFailureFallsBackToTemplate(t *testing.T) {
	client := &stubClient{err: errors.New("provider unavailable")}
	ai := suggestions.NewAIStrategy(client, time.Second)
	eng := New(nil, ai)

	result, err := eng.CalculateProScore(context.Background(), testResume, types.ScoreOptions{
		JobRole:           "software_engineer",
		JobDescription:    testJD,
		IncludeAIInsights: true,
	})
	require.NoError(t, err)

	assert.Equal(t, types.OriginTemplate, result.Metadata.SuggestionOrigin)
	assert.NotEmpty(t, result.Suggestions)
	assert.Empty(t, result.AISummary)
}
