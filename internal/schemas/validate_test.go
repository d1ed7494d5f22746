package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestRecordsSchema_IsValidJSON(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal(recordsSchema, &doc))
	assert.Equal(t, "array", doc["type"])
}

func TestValidateRecords_Valid(t *testing.T) {
	doc := `[
		{"section": "personal_info", "subsection": "name", "content": "Jane Doe"},
		{"section": "experience", "subsection": "Acme", "content": ""}
	]`
	assert.NoError(t, ValidateRecords([]byte(doc)))
}

func TestValidateRecords_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateRecords([]byte(`[]`)))
}

func TestValidateRecords_MissingField(t *testing.T) {
	err := ValidateRecords([]byte(`[{"section": "skills", "content": "Go"}]`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Message, "subsection")
}

func TestValidateRecords_WrongType(t *testing.T) {
	err := ValidateRecords([]byte(`[{"section": "skills", "subsection": "Languages", "content": 3}]`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors[0].Field, "content")
}

func TestValidateRecords_NotAnArray(t *testing.T) {
	err := ValidateRecords([]byte(`{"section": "skills"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateRecords_UnknownProperty(t *testing.T) {
	err := ValidateRecords([]byte(`[{"section": "a", "subsection": "b", "content": "c", "extra": 1}]`))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateRecords_EmptySubsection(t *testing.T) {
	assert.NoError(t, ValidateRecords([]byte(`[{"section": "projects", "subsection": "", "content": "Built X"}]`)))
}

func TestValidateRecords_EmptySection(t *testing.T) {
	err := ValidateRecords([]byte(`[{"section": "", "subsection": "p1", "content": "Built X"}]`))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidate_BadSchema(t *testing.T) {
	err := validate("bad.schema.json", gojsonschema.NewStringLoader(`{"type": 12}`), gojsonschema.NewStringLoader(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "bad.schema.json", loadErr.Path)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "0.section", Message: "is required"},
		{Field: "1", Message: "bad"},
	}}
	assert.Equal(t, "validation failed:\n  1. 0.section: is required\n  2. 1: bad\n", err.Error())
}
