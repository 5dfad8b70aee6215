// Package schemas provides JSON Schema validation functionality for the editor's wire formats.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Schema is a compiled JSON Schema that can validate many documents.
type Schema struct {
	schema *gojsonschema.Schema
}

// Compile parses a JSON Schema document.
func Compile(schemaContent []byte) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaContent))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    "(embedded schema)",
			Message: "schema could not be compiled",
			Cause:   err,
		}
	}
	return &Schema{schema: s}, nil
}

// MustCompile is like Compile but panics on error. Use it for embedded schemas.
func MustCompile(schemaContent []byte) *Schema {
	s, err := Compile(schemaContent)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks a JSON document against the schema. Malformed JSON is
// reported as a ValidationError on the root.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return toValidationError(result)
}

func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
