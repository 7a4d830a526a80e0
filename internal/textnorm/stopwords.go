package textnorm

// stopWords is the English stop-word list applied before keyword scoring.
// Kept deliberately small: aggressive lists strip terms like "it" that are
// ambiguous in tech resumes, so only unambiguous function words appear here.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "for": true, "from": true,
	"had": true, "has": true, "have": true, "he": true, "her": true, "his": true,
	"i": true, "in": true, "into": true, "is": true, "its": true, "may": true,
	"of": true, "on": true, "or": true, "our": true, "she": true, "so": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "those": true,
	"to": true, "was": true, "we": true, "were": true, "which": true,
	"will": true, "with": true, "would": true, "you": true, "your": true,
}
