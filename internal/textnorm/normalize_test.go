package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndCollapses(t *testing.T) {
	got := Normalize("  Senior   Go\tDeveloper! ")
	assert.Equal(t, "senior go developer", got)
}

func TestNormalize_KeepsSkillPunctuation(t *testing.T) {
	got := Normalize("C++ and C# with Node.js")
	assert.Equal(t, "c++ and c# with node.js", got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t "))
}

func TestExtractWords_Basic(t *testing.T) {
	words := ExtractWords("Built REST APIs in Go, deployed to AWS.")
	assert.Equal(t, []string{"built", "rest", "apis", "in", "go", "deployed", "to", "aws"}, words)
}

func TestExtractWords_TrimsEdgePunctuation(t *testing.T) {
	words := ExtractWords("experience with node.js. and docker/")
	assert.Contains(t, words, "node.js")
	assert.Contains(t, words, "docker")
}

func TestExtractWords_Empty(t *testing.T) {
	assert.Nil(t, ExtractWords(""))
}

func TestRemoveStopWords_FiltersInOrder(t *testing.T) {
	tokens := []string{"the", "engineer", "and", "a", "designer", "built", "this"}
	got := RemoveStopWords(tokens)
	assert.Equal(t, []string{"engineer", "designer", "built"}, got)
}

func TestRemoveStopWords_Determinism(t *testing.T) {
	tokens := ExtractWords("the quick brown fox jumps over the lazy dog")
	first := RemoveStopWords(tokens)
	second := RemoveStopWords(tokens)
	assert.Equal(t, first, second)
}

func TestContainsPhrase_WholeWordsOnly(t *testing.T) {
	text := Normalize("designed rest apis for payments")
	assert.True(t, ContainsPhrase(text, "rest apis"))
	assert.False(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestStripHTML_RemovesMarkupAndNoise(t *testing.T) {
	html := `<html><head><style>p{}</style></head><body>
		<nav>Home | Jobs</nav>
		<p>We need a <b>Go</b> developer.</p>
		<script>track()</script>
		<footer>copyright</footer></body></html>`

	text, err := StripHTML(html)
	assert.NoError(t, err)
	assert.Contains(t, text, "We need a Go developer.")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestStripHTML_PlainTextPassthrough(t *testing.T) {
	text, err := StripHTML("plain  job description\n\n\n\nwith gaps")
	assert.NoError(t, err)
	assert.Equal(t, "plain  job description\n\nwith gaps", text)
}
