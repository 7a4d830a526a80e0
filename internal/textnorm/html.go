package textnorm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var reBlankLines = regexp.MustCompile(`\n{3,}`)

// StripHTML converts an HTML job-posting fragment to plain text suitable for
// scoring. Script, style and navigation elements are removed first. Input that
// contains no markup passes through with whitespace cleanup only.
func StripHTML(input string) (string, error) {
	if !strings.Contains(input, "<") {
		return cleanWhitespace(input), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return cleanWhitespace(doc.Text()), nil
	}
	return cleanWhitespace(body.Text()), nil
}

// cleanWhitespace trims each line and collapses runs of blank lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = reBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
