package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestCompile_Valid(t *testing.T) {
	s, err := Compile([]byte(personSchema))
	require.NoError(t, err)

	assert.NoError(t, s.Validate([]byte(`{"name": "Ada", "tags": ["math"]}`)))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile([]byte(`{ not json`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile([]byte(`{ not json`)) })
}

func TestSchema_Validate_MissingField(t *testing.T) {
	s := MustCompile([]byte(personSchema))

	err := s.Validate([]byte(`{"tags": []}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestSchema_Validate_WrongType(t *testing.T) {
	s := MustCompile([]byte(personSchema))

	err := s.Validate([]byte(`{"name": "Ada", "tags": [1]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "tags.0", validationErr.Errors[0].Field)
}

func TestSchema_Validate_MalformedDocument(t *testing.T) {
	s := MustCompile([]byte(personSchema))

	err := s.Validate([]byte(`{"name": `))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}
