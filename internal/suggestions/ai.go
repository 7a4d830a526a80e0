package suggestions

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/prompts"
	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/types"
)

// DefaultAITimeout bounds the AI call so a slow provider never blocks the
// overall scoring result.
const DefaultAITimeout = 15 * time.Second

// aiResponse is the expected JSON shape from the LLM.
type aiResponse struct {
	Suggestions []string `json:"suggestions"`
}

// AIStrategy generates suggestions with an LLM and falls back to the template
// strategy on timeout, provider error, or output that fails schema validation.
// Fallback is silent: the caller sees the same contract either way, with the
// origin marking which path ran.
type AIStrategy struct {
	client   llm.Client
	timeout  time.Duration
	fallback Strategy
}

var _ Strategy = (*AIStrategy)(nil)

// NewAIStrategy creates an AI-backed strategy over the given client. A
// non-positive timeout uses DefaultAITimeout.
func NewAIStrategy(client llm.Client, timeout time.Duration) *AIStrategy {
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	return &AIStrategy{
		client:   client,
		timeout:  timeout,
		fallback: TemplateStrategy{},
	}
}

// Generate asks the LLM for suggestions, validating its JSON output against
// the embedded schema before trusting it.
func (s *AIStrategy) Generate(ctx context.Context, req Request) ([]string, types.SuggestionOrigin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	template, err := prompts.Get("suggestions.json", "phrase_suggestions")
	if err != nil {
		return s.degrade(ctx, req, err)
	}
	prompt := prompts.Format(template, map[string]string{
		"MissingKeywords": strings.Join(req.MissingKeywords, ", "),
		"JobDescription":  req.JobDescription,
		"ResumeText":      req.ResumeText,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return s.degrade(ctx, req, err)
	}
	if err := schemas.ValidateString("suggestions.schema.json", raw); err != nil {
		return s.degrade(ctx, req, err)
	}

	var response aiResponse
	if err := json.Unmarshal([]byte(raw), &response); err != nil {
		return s.degrade(ctx, req, err)
	}

	return response.Suggestions, types.OriginAI, nil
}

// Summarize produces a short AI review of the resume against the job
// description. Unlike Generate there is no template equivalent; callers treat
// an error as "no summary available".
func (s *AIStrategy) Summarize(ctx context.Context, resumeText, jobDescription string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	template, err := prompts.Get("suggestions.json", "resume_summary")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"JobDescription": jobDescription,
		"ResumeText":     resumeText,
	})
	return s.client.GenerateContent(ctx, prompt, llm.TierStandard)
}

func (s *AIStrategy) degrade(ctx context.Context, req Request, cause error) ([]string, types.SuggestionOrigin, error) {
	log.Printf("ai suggestion generation failed, using template fallback: %v", cause)
	return s.fallback.Generate(ctx, req)
}
