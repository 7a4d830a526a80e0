// Package textnorm provides text normalization and tokenization shared by the
// keyword extractor and scorers. All functions are pure and deterministic.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^a-z0-9+#./-]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces non-word characters with spaces and
// collapses runs of whitespace. Characters common in technical skill names
// (+, #, ., /, -) are preserved so terms like "c++", "c#" and "node.js" survive.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = reNonWord.ReplaceAllString(text, " ")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractWords tokenizes text into normalized words. Trailing punctuation kept
// by Normalize for skill names ("node.js.") is trimmed from token edges.
func ExtractWords(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	fields := strings.Split(normalized, " ")
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Trim(field, "./-")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// RemoveStopWords filters common English stop words from a token list.
// Order of the remaining tokens is preserved.
func RemoveStopWords(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stopWords[token] {
			continue
		}
		out = append(out, token)
	}
	return out
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized text
// as a whole-word sequence ("rest api" matches "... rest api ..." but not
// "... rest apis ...").
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
