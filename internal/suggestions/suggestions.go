// Package suggestions turns keyword gaps into actionable resume advice. Two
// strategies share one contract: a deterministic template baseline and an
// AI-backed generator that silently degrades to the template on any failure.
package suggestions

import (
	"context"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Request carries everything a strategy needs to generate suggestions.
type Request struct {
	ResumeText      string
	JobDescription  string
	MissingKeywords []string
}

// Strategy generates an ordered list of actionable suggestion strings. The
// returned origin reports which path actually produced the output, since an
// AI strategy may have fallen back to its template.
type Strategy interface {
	Generate(ctx context.Context, req Request) ([]string, types.SuggestionOrigin, error)
}
