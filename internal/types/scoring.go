package types

import (
	"github.com/go-playground/validator/v10"
)

// Component name constants for the two scorer shapes.
const (
	// 3-axis scorer components
	ComponentStructure = "structure"
	ComponentContent   = "content"
	ComponentTailoring = "tailoring"

	// 4-axis PRO scorer components
	ComponentContentQuality    = "content_quality"
	ComponentATSCompatibility  = "ats_compatibility"
	ComponentFormatStructure   = "format_structure"
	ComponentImpactMetrics     = "impact_metrics"
)

// ComponentScore is a single scoring dimension. Score is always within [0, Max].
type ComponentScore struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// ComponentScores maps component names to their scores.
type ComponentScores map[string]ComponentScore

// SuggestionOrigin records which strategy produced the suggestions in a result.
type SuggestionOrigin string

// Suggestion origin values.
const (
	OriginTemplate SuggestionOrigin = "template"
	OriginAI       SuggestionOrigin = "ai"
)

// ResultMetadata describes how a ScoringResult was produced.
type ResultMetadata struct {
	WeightsUsed      WeightProfile    `json:"weights_used"`
	ProcessingMS     int64            `json:"processing_ms"`
	SuggestionOrigin SuggestionOrigin `json:"suggestion_origin,omitempty"`
	AdaptiveWeights  bool             `json:"adaptive_weights"`
}

// ScoringResult is the full output envelope of a scoring call. JDMatch, AISummary
// and Suggestions are present only when the corresponding options requested them.
type ScoringResult struct {
	OverallScore int             `json:"overall_score"`
	Grade        string          `json:"grade"`
	Components   ComponentScores `json:"components"`
	JDMatch      *JDMatchResult  `json:"jd_match,omitempty"`
	AISummary    string          `json:"ai_summary,omitempty"`
	Suggestions  []string        `json:"suggestions,omitempty"`
	Metadata     ResultMetadata  `json:"metadata"`
}

// ScoreOptions controls a PRO scoring request.
type ScoreOptions struct {
	JobRole            string        `json:"job_role" validate:"required,min=2"`
	JobDescription     string        `json:"job_description,omitempty"`
	IncludeAIInsights  bool          `json:"include_ai_insights,omitempty"`
	UseAdaptiveWeights bool          `json:"use_adaptive_weights,omitempty"`
	CustomWeights      WeightProfile `json:"custom_weights,omitempty"`
}

// Validate validates the ScoreOptions using the validator.
func (o *ScoreOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
