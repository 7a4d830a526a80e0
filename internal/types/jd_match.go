package types

// KeywordStatus classifies how a job-description keyword is represented in a resume.
type KeywordStatus string

// Keyword status values used in JDMatchResult classification.
const (
	StatusMatched          KeywordStatus = "matched"
	StatusMissing          KeywordStatus = "missing"
	StatusUnderrepresented KeywordStatus = "underrepresented"
)

// KeywordComparison is one row of the per-keyword audit trail comparing
// a keyword's weight in the job description against its weight in the resume.
type KeywordComparison struct {
	Keyword     string        `json:"keyword"`
	JDScore     float64       `json:"jd_score"`
	ResumeScore float64       `json:"resume_score"`
	Status      KeywordStatus `json:"status"`
}

// KeywordAnalysis summarizes keyword coverage of a resume against a job description.
type KeywordAnalysis struct {
	TotalJDKeywords     int                 `json:"total_jd_keywords"`
	MatchedKeywords     int                 `json:"matched_keywords"`
	MatchRatio          float64             `json:"match_ratio"`
	FrequencyComparison []KeywordComparison `json:"frequency_comparison"`
}

// JDMatchResult is the full outcome of matching a resume against a job description.
// Every JD keyword appears in exactly one status bucket, and
// MatchedKeywords = TotalJDKeywords - len(MissingCritical).
type JDMatchResult struct {
	MatchScore       int             `json:"match_score"`
	MissingCritical  []string        `json:"missing_critical"`
	Underrepresented []string        `json:"underrepresented"`
	Irrelevant       []string        `json:"irrelevant"`
	KeywordAnalysis  KeywordAnalysis `json:"keyword_analysis"`
}
