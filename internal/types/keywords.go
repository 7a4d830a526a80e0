// Package types defines the core data structures shared across the scoring engine.
package types

// KeywordScore is a single term ranked by its TF-IDF score within one document.
type KeywordScore struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Score     float64 `json:"score"`
}

// PhraseFrequency is a multi-word phrase and how often it occurs in a document.
type PhraseFrequency struct {
	Phrase    string `json:"phrase"`
	Frequency int    `json:"frequency"`
}
