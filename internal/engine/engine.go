// Package engine composes the scoring pipeline: JD matching, component
// scoring, weight resolution and suggestion generation behind one entry point.
package engine

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/jdmatch"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/suggestions"
	"github.com/jonathan/resume-scorer/internal/textnorm"
	"github.com/jonathan/resume-scorer/internal/tuning"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Engine is the scoring façade the rest of the application calls. The zero
// dependencies are all optional: without a tuner it uses static role
// profiles, without an AI strategy it always uses the template generator.
type Engine struct {
	tuner    *tuning.Tuner
	ai       *suggestions.AIStrategy
	template suggestions.Strategy
}

// New creates an Engine. Either dependency may be nil.
func New(tuner *tuning.Tuner, ai *suggestions.AIStrategy) *Engine {
	return &Engine{
		tuner:    tuner,
		ai:       ai,
		template: suggestions.TemplateStrategy{},
	}
}

// AnalyzeJDMatch scores a resume against a job description. HTML job postings
// are stripped to plain text first.
func (e *Engine) AnalyzeJDMatch(_ context.Context, resumeText, jobDescription string) (*types.JDMatchResult, error) {
	jdText, err := textnorm.StripHTML(jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to clean job description: %w", err)
	}
	return jdmatch.Analyze(resumeText, jdText)
}

// CalculateScore runs the 3-axis structure/content/tailoring scorer. The job
// description is optional; without one, tailoring gets neutral credit.
func (e *Engine) CalculateScore(_ context.Context, resumeText, jobDescription string) (*types.ScoringResult, error) {
	start := time.Now()

	if n := len(strings.TrimSpace(resumeText)); n < jdmatch.MinResumeLength {
		return nil, &jdmatch.ValidationError{Field: "resume_text", MinLength: jdmatch.MinResumeLength, Actual: n}
	}
	jdText, err := textnorm.StripHTML(jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to clean job description: %w", err)
	}

	components := scoring.Basic(resumeText, jdText)
	overall := scoring.Overall3Axis(components)

	return &types.ScoringResult{
		OverallScore: int(math.Round(overall)),
		Grade:        scoring.Grade(overall),
		Components:   components,
		Metadata: types.ResultMetadata{
			ProcessingMS: time.Since(start).Milliseconds(),
		},
	}, nil
}

// CalculateProScore is the orchestrating entry point for the 4-axis PRO
// scorer. It composes JD matching, component scoring under the resolved
// weight profile, and suggestion generation.
func (e *Engine) CalculateProScore(ctx context.Context, resumeText string, opts types.ScoreOptions) (*types.ScoringResult, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring options: %w", err)
	}
	if n := len(strings.TrimSpace(resumeText)); n < jdmatch.MinResumeLength {
		return nil, &jdmatch.ValidationError{Field: "resume_text", MinLength: jdmatch.MinResumeLength, Actual: n}
	}

	jdText := ""
	if strings.TrimSpace(opts.JobDescription) != "" {
		cleaned, err := textnorm.StripHTML(opts.JobDescription)
		if err != nil {
			return nil, fmt.Errorf("failed to clean job description: %w", err)
		}
		jdText = cleaned
	}

	// The JD match and the AI summary are independent; run them together.
	var match *types.JDMatchResult
	var summary string
	g, gctx := errgroup.WithContext(ctx)
	if jdText != "" {
		g.Go(func() error {
			result, err := jdmatch.Analyze(resumeText, jdText)
			if err != nil {
				return err
			}
			match = result
			return nil
		})
		if opts.IncludeAIInsights && e.ai != nil {
			g.Go(func() error {
				// Summary failure is not fatal to scoring.
				if text, err := e.ai.Summarize(gctx, resumeText, jdText); err == nil {
					summary = text
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weights, adaptive, err := e.resolveWeights(ctx, opts)
	if err != nil {
		return nil, err
	}

	components := scoring.Pro(resumeText, match)
	overall := scoring.CalculateOverallScore(components, weights)

	result := &types.ScoringResult{
		OverallScore: int(math.Round(overall)),
		Grade:        scoring.Grade(overall),
		Components:   components,
		JDMatch:      match,
		AISummary:    summary,
		Metadata: types.ResultMetadata{
			WeightsUsed:     weights,
			AdaptiveWeights: adaptive,
		},
	}

	var missing []string
	if match != nil {
		missing = match.MissingCritical
	}
	strategy := e.template
	if opts.IncludeAIInsights && e.ai != nil {
		strategy = e.ai
	}
	suggested, origin, err := strategy.Generate(ctx, suggestions.Request{
		ResumeText:      resumeText,
		JobDescription:  jdText,
		MissingKeywords: missing,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	result.Suggestions = suggested
	result.Metadata.SuggestionOrigin = origin

	result.Metadata.ProcessingMS = time.Since(start).Milliseconds()
	return result, nil
}

// resolveWeights picks the weight profile for a request: explicit custom
// weights win, then the tuner's active configuration when adaptive weights
// are requested, then the static role profile.
func (e *Engine) resolveWeights(ctx context.Context, opts types.ScoreOptions) (types.WeightProfile, bool, error) {
	if len(opts.CustomWeights) > 0 {
		normalized := opts.CustomWeights.Normalize()
		if normalized == nil {
			return nil, false, fmt.Errorf("custom weights must sum to a positive total")
		}
		return normalized, false, nil
	}

	if opts.UseAdaptiveWeights && e.tuner != nil {
		weights, tuned, err := e.tuner.ActiveWeights(ctx, normalizeRole(opts.JobRole))
		if err != nil {
			return nil, false, fmt.Errorf("failed to resolve adaptive weights: %w", err)
		}
		return weights, tuned, nil
	}

	return scoring.RoleWeights(opts.JobRole), false, nil
}

func normalizeRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(role)
}
