// Package schemas validates imported portfolio documents against an embedded
// JSON Schema.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/portfolio-builder/internal/types"
)

//go:embed portfolio.schema.json
var portfolioSchema string

// PortfolioSchema returns the JSON Schema for PortfolioState documents
func PortfolioSchema() string {
	return portfolioSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading the schema or the document itself
type SchemaLoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Source, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSONString validates JSON content against schema content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(gojsonschema.NewStringLoader(schemaContent), gojsonschema.NewStringLoader(jsonContent), "(string schema)")
}

// ValidatePortfolio validates a PortfolioState document
func ValidatePortfolio(data []byte) error {
	return validate(gojsonschema.NewStringLoader(portfolioSchema), gojsonschema.NewBytesLoader(data), "portfolio document")
}

// DecodePortfolio validates data and decodes it into a PortfolioState
func DecodePortfolio(data []byte) (types.PortfolioState, error) {
	var st types.PortfolioState
	if err := ValidatePortfolio(data); err != nil {
		return st, err
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return st, nil
}

// LoadPortfolioFile reads, validates and decodes a PortfolioState file
func LoadPortfolioFile(path string) (types.PortfolioState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PortfolioState{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return DecodePortfolio(data)
}

func validate(schema, document gojsonschema.JSONLoader, source string) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{
			Source:  source,
			Message: "validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

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
