// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoringResult outputs the overall score, per-component breakdown and
// suggestions for a scoring run.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n", result.OverallScore, result.Grade))
	sb.WriteString("\n")

	names := make([]string, 0, len(result.Components))
	for name := range result.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		component := result.Components[name]
		sb.WriteString(fmt.Sprintf("  %-18s %5.1f / %.0f\n", name, component.Score, component.Max))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			text := result.Suggestions[i]
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\nProcessed in %dms (suggestions: %s)",
		result.Metadata.ProcessingMS, result.Metadata.SuggestionOrigin))

	p.printBox("SCORING RESULT", sb.String())
}

// PrintJDMatch outputs the match score with the missing and underrepresented
// keyword lists.
func (p *Printer) PrintJDMatch(match *types.JDMatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %d/100\n", match.MatchScore))
	sb.WriteString(fmt.Sprintf("Keywords:    %d of %d matched\n",
		match.KeywordAnalysis.MatchedKeywords, match.KeywordAnalysis.TotalJDKeywords))
	sb.WriteString("\n")

	writeKeywordList(&sb, "Missing:", match.MissingCritical)
	writeKeywordList(&sb, "Underrepresented:", match.Underrepresented)
	writeKeywordList(&sb, "Not in posting:", match.Irrelevant)

	p.printBox("JOB DESCRIPTION MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

func writeKeywordList(sb *strings.Builder, label string, keywords []string) {
	if len(keywords) == 0 {
		return
	}
	sb.WriteString(label + "\n")
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintKeywords outputs extracted keyword scores in rank order.
func (p *Printer) PrintKeywords(keywords []types.KeywordScore) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Top %d keywords:\n\n", len(keywords)))
	for i, keyword := range keywords {
		sb.WriteString(fmt.Sprintf("#%-3d %-24s %.4f (×%d)\n",
			i+1, keyword.Term, keyword.Score, keyword.Frequency))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeightConfiguration outputs a tuned weight configuration.
func (p *Printer) PrintWeightConfiguration(config *types.WeightConfiguration) {
	if config == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:     %s\n", config.ID))
	sb.WriteString(fmt.Sprintf("Role:   %s\n", config.Role))
	sb.WriteString(fmt.Sprintf("State:  %s\n", config.State))
	sb.WriteString("\n")

	names := make([]string, 0, len(config.Weights))
	for name := range config.Weights {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-18s %.3f\n", name, config.Weights[name]))
	}

	p.printBox("WEIGHT CONFIGURATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedbackAnalytics outputs aggregate feedback statistics for a window.
func (p *Printer) PrintFeedbackAnalytics(analytics *types.FeedbackAnalytics) {
	if analytics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Window:   %s — %s\n",
		analytics.WindowStart.Format("2006-01-02"), analytics.WindowEnd.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Records:  %d\n", analytics.Count))
	sb.WriteString(fmt.Sprintf("Rating:   %.2f avg\n", analytics.AverageRating))
	sb.WriteString(fmt.Sprintf("Helpful:  %.0f%%\n", analytics.HelpfulRate*100))

	if len(analytics.InaccurateComponents) > 0 {
		sb.WriteString("\nFlagged components:\n")
		names := make([]string, 0, len(analytics.InaccurateComponents))
		for name := range analytics.InaccurateComponents {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  • %-18s ×%d\n", name, analytics.InaccurateComponents[name]))
		}
	}

	p.printBox("FEEDBACK ANALYTICS", sb.String())
}
