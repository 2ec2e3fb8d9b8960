package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_ValidProfile(t *testing.T) {
	doc := []byte(`{"skills": ["Go"], "education": [{"degree": "BS"}]}`)

	err := ValidateDocument(ProfileSchemaPath, doc)

	assert.NoError(t, err)
}

func TestValidateDocument_InvalidProfile(t *testing.T) {
	// skills must be an array of strings
	doc := []byte(`{"skills": 5}`)

	err := ValidateDocument(ProfileSchemaPath, doc)

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateDocument_ValidPosting(t *testing.T) {
	doc := []byte(`{"title": "SWE Intern", "company": "Acme", "status": "active"}`)

	err := ValidateDocument(JobPostingSchemaPath, doc)

	assert.NoError(t, err)
}

func TestValidateDocument_PostingMissingRequired(t *testing.T) {
	doc := []byte(`{"title": "SWE Intern"}`)

	err := ValidateDocument(JobPostingSchemaPath, doc)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateDocument_MissingSchemaFile(t *testing.T) {
	err := ValidateDocument("schemas/does_not_exist.json", []byte(`{}`))

	var serr *SchemaLoadError
	require.ErrorAs(t, err, &serr)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "ok"}`))
	assert.Error(t, ValidateJSONString(schema, `{}`))
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	resolved := ResolveSchemaPath(ProfileSchemaPath)

	assert.NotEmpty(t, resolved)
}
