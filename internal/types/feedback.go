package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FeedbackRecord is one user's assessment of a scoring result. Records are
// immutable once stored.
type FeedbackRecord struct {
	ID                  uuid.UUID       `json:"id"`
	ResumeID            string          `json:"resume_id" validate:"required"`
	JobRole             string          `json:"job_role,omitempty"`
	Score               float64         `json:"score" validate:"min=0,max=100"`
	ComponentScores     ComponentScores `json:"component_scores,omitempty"`
	Rating              int             `json:"rating" validate:"required,min=1,max=5"`
	Helpful             bool            `json:"helpful"`
	Comment             string          `json:"comment,omitempty"`
	InaccurateComponent string          `json:"inaccurate_component,omitempty"`
	ExpectedScore       *int            `json:"expected_score,omitempty" validate:"omitempty,min=0,max=100"`
	CreatedAt           time.Time       `json:"created_at"`
}

// Validate validates the FeedbackRecord using the validator.
func (r *FeedbackRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FeedbackAnalytics is an aggregate report over stored feedback in a time window.
type FeedbackAnalytics struct {
	WindowStart          time.Time      `json:"window_start"`
	WindowEnd            time.Time      `json:"window_end"`
	Count                int            `json:"count"`
	AverageRating        float64        `json:"average_rating"`
	HelpfulRate          float64        `json:"helpful_rate"`
	InaccurateComponents map[string]int `json:"inaccurate_components"`
	MeanExpectedDelta    float64        `json:"mean_expected_delta"`
}
