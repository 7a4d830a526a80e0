package tuning

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTuner() (*Tuner, *MemoryStore) {
	store := NewMemoryStore()
	return New(store, store), store
}

func feedbackWithFlag(role, component string, rating int) types.FeedbackRecord {
	return types.FeedbackRecord{
		ResumeID:            uuid.NewString(),
		JobRole:             role,
		Score:               70,
		Rating:              rating,
		InaccurateComponent: component,
	}
}

func TestStoreFeedback_FillsIDAndTimestamp(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	err := tuner.StoreFeedback(ctx, types.FeedbackRecord{
		ResumeID: "resume-1",
		Score:    80,
		Rating:   4,
		Helpful:  true,
	})
	require.NoError(t, err)

	records, err := store.List(ctx, "", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEqual(t, uuid.Nil, records[0].ID)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestStoreFeedback_RejectsInvalidRating(t *testing.T) {
	tuner, _ := newTestTuner()

	err := tuner.StoreFeedback(context.Background(), types.FeedbackRecord{
		ResumeID: "resume-1",
		Rating:   6,
	})
	assert.Error(t, err)
}

func TestFeedbackAnalytics_Aggregates(t *testing.T) {
	tuner, _ := newTestTuner()
	ctx := context.Background()

	expected := 90
	require.NoError(t, tuner.StoreFeedback(ctx, types.FeedbackRecord{
		ResumeID: "r1", Score: 70, Rating: 5, Helpful: true, ExpectedScore: &expected,
	}))
	require.NoError(t, tuner.StoreFeedback(ctx, types.FeedbackRecord{
		ResumeID: "r2", Score: 60, Rating: 3,
		InaccurateComponent: types.ComponentATSCompatibility,
	}))
	require.NoError(t, tuner.StoreFeedback(ctx, types.FeedbackRecord{
		ResumeID: "r3", Score: 50, Rating: 1,
		InaccurateComponent: types.ComponentATSCompatibility,
	}))

	analytics, err := tuner.FeedbackAnalytics(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.Count)
	assert.InDelta(t, 3.0, analytics.AverageRating, 1e-9)
	assert.InDelta(t, 1.0/3, analytics.HelpfulRate, 1e-9)
	assert.Equal(t, 2, analytics.InaccurateComponents[types.ComponentATSCompatibility])
	assert.InDelta(t, 20.0, analytics.MeanExpectedDelta, 1e-9)
}

func TestFeedbackAnalytics_EmptyWindow(t *testing.T) {
	tuner, _ := newTestTuner()

	analytics, err := tuner.FeedbackAnalytics(context.Background(),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, analytics.Count)
	assert.Zero(t, analytics.AverageRating)
}

func TestUpdateWeights_NilBelowThreshold(t *testing.T) {
	tuner, _ := newTestTuner()
	ctx := context.Background()

	require.NoError(t, tuner.StoreFeedback(ctx, feedbackWithFlag("software_engineer", types.ComponentATSCompatibility, 2)))

	config, err := tuner.UpdateWeightsFromFeedback(ctx, "software_engineer", 10)
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestUpdateWeights_NilWithoutFlags(t *testing.T) {
	tuner, _ := newTestTuner()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, tuner.StoreFeedback(ctx, feedbackWithFlag("software_engineer", "", 4)))
	}

	config, err := tuner.UpdateWeightsFromFeedback(ctx, "software_engineer", 5)
	require.NoError(t, err)
	assert.Nil(t, config)
}

func TestUpdateWeights_ShiftsAwayFromFlaggedComponent(t *testing.T) {
	tuner, _ := newTestTuner()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		require.NoError(t, tuner.StoreFeedback(ctx, feedbackWithFlag("software_engineer", types.ComponentATSCompatibility, 2)))
	}

	config, err := tuner.UpdateWeightsFromFeedback(ctx, "software_engineer", 5)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, types.StateProposed, config.State)
	assert.Equal(t, "software_engineer", config.Role)
	assert.True(t, config.Weights.IsNormalized(), "sum %v", config.Weights.Sum())

	base := scoring.RoleWeights("software_engineer")
	assert.Less(t,
		config.Weights[types.ComponentATSCompatibility],
		base[types.ComponentATSCompatibility])
	assert.Greater(t,
		config.Weights[types.ComponentContentQuality],
		base[types.ComponentContentQuality])
}

func TestActivate_LifecycleAndSupersede(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	first := types.WeightConfiguration{
		ID:        uuid.New(),
		Role:      "designer",
		Weights:   scoring.RoleWeights("designer"),
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	second := first
	second.ID = uuid.New()
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, first.ID))
	active, err := store.Active(ctx, "designer")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, first.ID, active.ID)

	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, second.ID))
	active, err = store.Active(ctx, "designer")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	superseded, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StateSuperseded, superseded.State)
}

func TestActivate_Idempotent(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	config := types.WeightConfiguration{
		ID:        uuid.New(),
		Role:      "marketing",
		Weights:   scoring.RoleWeights("marketing"),
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, config))

	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, config.ID))
	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, config.ID))

	history, err := store.History(ctx, "marketing")
	require.NoError(t, err)
	activeCount := 0
	for _, c := range history {
		if c.State == types.StateActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestActivate_RenormalizesDriftedWeights(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	config := types.WeightConfiguration{
		ID:   uuid.New(),
		Role: "data_scientist",
		Weights: types.WeightProfile{
			types.ComponentContentQuality:   30.000001,
			types.ComponentATSCompatibility: 35,
			types.ComponentFormatStructure:  10,
			types.ComponentImpactMetrics:    25,
		},
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, config))

	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, config.ID))

	active, err := store.Active(ctx, "data_scientist")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.True(t, active.Weights.IsNormalized())
}

func TestActivate_RejectsZeroSumWeights(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	config := types.WeightConfiguration{
		ID:        uuid.New(),
		Role:      "designer",
		Weights:   types.WeightProfile{types.ComponentContentQuality: 0},
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, config))

	err := tuner.ActivateWeightConfiguration(ctx, config.ID)
	require.Error(t, err)

	var integrityErr *ConfigurationIntegrityError
	assert.ErrorAs(t, err, &integrityErr)

	// Activation was blocked: nothing is active for the role.
	active, err := store.Active(ctx, "designer")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestActivate_UnknownID(t *testing.T) {
	tuner, _ := newTestTuner()
	err := tuner.ActivateWeightConfiguration(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestActiveWeights_FallsBackToRoleProfile(t *testing.T) {
	tuner, _ := newTestTuner()

	weights, tuned, err := tuner.ActiveWeights(context.Background(), "product_manager")
	require.NoError(t, err)
	assert.False(t, tuned)
	assert.Equal(t, scoring.RoleWeights("product_manager"), weights)
}

func TestActiveWeights_PrefersActiveConfiguration(t *testing.T) {
	tuner, store := newTestTuner()
	ctx := context.Background()

	custom := types.WeightProfile{
		types.ComponentContentQuality:   40,
		types.ComponentATSCompatibility: 30,
		types.ComponentFormatStructure:  10,
		types.ComponentImpactMetrics:    20,
	}
	config := types.WeightConfiguration{
		ID: uuid.New(), Role: "software_engineer", Weights: custom,
		State: types.StateProposed, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, config))
	require.NoError(t, tuner.ActivateWeightConfiguration(ctx, config.ID))

	weights, tuned, err := tuner.ActiveWeights(ctx, "software_engineer")
	require.NoError(t, err)
	assert.True(t, tuned)
	assert.InDelta(t, 40, weights[types.ComponentContentQuality], 1e-9)
}
