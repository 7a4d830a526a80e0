package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateString_ValidSuggestions(t *testing.T) {
	content := `{"suggestions": ["Add a bullet quantifying your Kubernetes migration work."]}`
	assert.NoError(t, ValidateString("suggestions.schema.json", content))
}

func TestValidateString_EmptySuggestionsRejected(t *testing.T) {
	err := ValidateString("suggestions.schema.json", `{"suggestions": []}`)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateString_WrongShapeRejected(t *testing.T) {
	err := ValidateString("suggestions.schema.json", `{"ideas": ["x"]}`)
	assert.Error(t, err)
}

func TestValidateString_ShortItemsRejected(t *testing.T) {
	err := ValidateString("suggestions.schema.json", `{"suggestions": ["short"]}`)
	assert.Error(t, err)
}

func TestValidateString_UnknownSchema(t *testing.T) {
	err := ValidateString("missing.schema.json", `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateString_MalformedJSON(t *testing.T) {
	err := ValidateString("suggestions.schema.json", `{not json`)
	assert.Error(t, err)
}
