package tuning

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// maxShiftFraction caps how much of a flagged component's weight a single
// tuning cycle may move to the other components.
const maxShiftFraction = 0.5

// Tuner aggregates stored feedback and manages the weight configuration
// lifecycle. It holds no state of its own; all shared state lives in the
// injected stores.
type Tuner struct {
	feedback FeedbackStore
	configs  WeightConfigStore
}

// New creates a Tuner over the given stores.
func New(feedback FeedbackStore, configs WeightConfigStore) *Tuner {
	return &Tuner{feedback: feedback, configs: configs}
}

// StoreFeedback validates and appends one feedback record. Missing ID and
// timestamp are filled in; stored records are never mutated afterwards.
func (t *Tuner) StoreFeedback(ctx context.Context, record types.FeedbackRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid feedback record: %w", err)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := t.feedback.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}
	return nil
}

// FeedbackAnalytics aggregates feedback in [start, end]: average rating,
// helpful rate, inaccurate-component frequencies and the mean delta between
// the user's expected score and the actual score.
func (t *Tuner) FeedbackAnalytics(ctx context.Context, start, end time.Time) (*types.FeedbackAnalytics, error) {
	records, err := t.feedback.List(ctx, "", start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	analytics := &types.FeedbackAnalytics{
		WindowStart:          start,
		WindowEnd:            end,
		Count:                len(records),
		InaccurateComponents: make(map[string]int),
	}
	if len(records) == 0 {
		return analytics, nil
	}

	ratingSum := 0
	helpful := 0
	deltaSum := 0.0
	deltaCount := 0
	for _, record := range records {
		ratingSum += record.Rating
		if record.Helpful {
			helpful++
		}
		if record.InaccurateComponent != "" {
			analytics.InaccurateComponents[record.InaccurateComponent]++
		}
		if record.ExpectedScore != nil {
			deltaSum += float64(*record.ExpectedScore) - record.Score
			deltaCount++
		}
	}

	analytics.AverageRating = float64(ratingSum) / float64(len(records))
	analytics.HelpfulRate = float64(helpful) / float64(len(records))
	if deltaCount > 0 {
		analytics.MeanExpectedDelta = deltaSum / float64(deltaCount)
	}
	return analytics, nil
}

// UpdateWeightsFromFeedback derives a new proposed weight configuration for a
// role from accumulated feedback. It returns (nil, nil) when fewer than
// minFeedbackCount records exist or no component has been flagged inaccurate:
// that is a legitimate "nothing to update" outcome, not an error.
//
// The derived configuration shifts weight away from the most-flagged
// component, proportionally to how often it was flagged, and renormalizes to
// sum to 100. It is saved in the proposed state; activation is a separate step.
func (t *Tuner) UpdateWeightsFromFeedback(ctx context.Context, role string, minFeedbackCount int) (*types.WeightConfiguration, error) {
	count, err := t.feedback.Count(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}
	if count < minFeedbackCount {
		return nil, nil
	}

	records, err := t.feedback.List(ctx, role, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	flags := make(map[string]int)
	for _, record := range records {
		if record.InaccurateComponent != "" {
			flags[record.InaccurateComponent]++
		}
	}
	flagged, flagCount := mostFlagged(flags)
	if flagged == "" {
		return nil, nil
	}

	base, _, err := t.ActiveWeights(ctx, role)
	if err != nil {
		return nil, err
	}
	if _, ok := base[flagged]; !ok {
		// Feedback flags a component this role's profile does not weight;
		// nothing to shift.
		return nil, nil
	}

	flagRate := float64(flagCount) / float64(len(records))
	shift := base[flagged] * flagRate * maxShiftFraction

	proposed := base.Clone()
	proposed[flagged] -= shift
	remaining := base.Sum() - base[flagged]
	for component, weight := range base {
		if component == flagged || remaining <= 0 {
			continue
		}
		proposed[component] += shift * (weight / remaining)
	}
	proposed = proposed.Normalize()
	if proposed == nil {
		return nil, &ConfigurationIntegrityError{Sum: 0}
	}

	config := types.WeightConfiguration{
		ID:        uuid.New(),
		Weights:   proposed,
		Role:      role,
		State:     types.StateProposed,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.configs.Save(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save proposed configuration: %w", err)
	}
	return &config, nil
}

// ActivateWeightConfiguration validates and activates a configuration.
// Weights are renormalized first; if they still cannot sum to 100 the
// activation fails with ConfigurationIntegrityError and the configuration
// stays in its prior state. Activating an already-active configuration is a
// no-op, so the call is idempotent.
func (t *Tuner) ActivateWeightConfiguration(ctx context.Context, id uuid.UUID) error {
	config, err := t.configs.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load configuration %s: %w", id, err)
	}
	if config.State == types.StateActive {
		return nil
	}

	normalized := config.Weights.Normalize()
	if normalized == nil || !normalized.IsNormalized() {
		return &ConfigurationIntegrityError{ID: id, Sum: config.Weights.Sum()}
	}

	config.Weights = normalized
	config.State = types.StateValidated
	if err := t.configs.Save(ctx, *config); err != nil {
		return fmt.Errorf("failed to save validated configuration: %w", err)
	}

	if err := t.configs.Activate(ctx, id); err != nil {
		return fmt.Errorf("failed to activate configuration %s: %w", id, err)
	}
	return nil
}

// ActiveWeights returns the weights the scorer should use for a role: the
// active configuration when one exists, otherwise the static role profile.
// The boolean reports whether a tuned configuration actually applied, so
// callers can distinguish tuned weights from the static fallback.
func (t *Tuner) ActiveWeights(ctx context.Context, role string) (types.WeightProfile, bool, error) {
	config, err := t.configs.Active(ctx, role)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load active configuration: %w", err)
	}
	if config != nil {
		return config.Weights.Clone(), true, nil
	}
	return scoring.RoleWeights(role), false, nil
}

// mostFlagged returns the component with the highest flag count. Ties break
// lexically so the outcome is deterministic.
func mostFlagged(flags map[string]int) (string, int) {
	best := ""
	bestCount := 0
	for component, count := range flags {
		if count > bestCount || (count == bestCount && component < best) {
			best = component
			bestCount = count
		}
	}
	return best, bestCount
}
