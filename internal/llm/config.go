// Package llm provides the LLM client abstraction used by the AI suggestion
// and summary paths. The engine never depends on a concrete provider.
package llm

// ModelTier represents the complexity/capability level of a model.
type ModelTier string

const (
	// TierLite is for simple tasks: phrase suggestions, short rewrites.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: resume summaries, gap analysis.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the engine.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to lite when the
// tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
