package suggestions

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// maxTargeted is how many missing keywords get an individual suggestion.
	maxTargeted = 5
	// rollupPreview is how many of the remaining keywords the rollup names.
	rollupPreview = 3
)

// genericAlignment closes every suggestion list regardless of gaps.
const genericAlignment = "Mirror the job description's own wording for the skills you genuinely have, so keyword scans and human reviewers both see the match."

// TemplateStrategy is the deterministic baseline suggestion generator.
type TemplateStrategy struct{}

var _ Strategy = TemplateStrategy{}

// Generate emits one targeted suggestion per missing keyword (up to five), a
// rollup for any remainder, and a closing generic alignment suggestion.
func (TemplateStrategy) Generate(_ context.Context, req Request) ([]string, types.SuggestionOrigin, error) {
	missing := req.MissingKeywords
	out := make([]string, 0, maxTargeted+2)

	targeted := missing
	if len(targeted) > maxTargeted {
		targeted = targeted[:maxTargeted]
	}
	for _, keyword := range targeted {
		out = append(out, fmt.Sprintf(
			"Add %q to your resume, ideally in a bullet describing concrete work where you used it.",
			keyword))
	}

	if rest := missing[len(targeted):]; len(rest) > 0 {
		preview := rest
		if len(preview) > rollupPreview {
			preview = preview[:rollupPreview]
		}
		out = append(out, fmt.Sprintf(
			"%d more keywords from the job description are missing, including %s.",
			len(rest), strings.Join(preview, ", ")))
	}

	out = append(out, genericAlignment)
	return out, types.OriginTemplate, nil
}
