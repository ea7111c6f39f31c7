package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"sint-message-service/internal/models"
)

//go:embed letter_request_schema.json
var letterRequestSchemaJSON string

var (
	letterRequestSchema     *gojsonschema.Schema
	letterRequestSchemaOnce sync.Once
	letterRequestSchemaErr  error
)

// loadLetterRequestSchema compiles the embedded schema once
func loadLetterRequestSchema() (*gojsonschema.Schema, error) {
	letterRequestSchemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(letterRequestSchemaJSON)
		letterRequestSchema, letterRequestSchemaErr = gojsonschema.NewSchema(loader)
	})
	if letterRequestSchemaErr != nil {
		return nil, fmt.Errorf("failed to load schema: %w", letterRequestSchemaErr)
	}
	return letterRequestSchema, nil
}

// ValidateLetterRequest validates a raw request body against the letter
// request schema. Schema validation catches the structural mistakes that
// binding tags cannot express, like manual and auto mode both missing.
func ValidateLetterRequest(body []byte) error {
	schema, err := loadLetterRequestSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}

	if !result.Valid() {
		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}
		return fmt.Errorf("validation failed: %v", errors)
	}

	return nil
}

// ValidateAndParseLetterRequest validates and unmarshals a letter request body
func ValidateAndParseLetterRequest(body []byte) (*models.GenerateLetterRequest, error) {
	if err := ValidateLetterRequest(body); err != nil {
		return nil, err
	}

	var request models.GenerateLetterRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &request, nil
}
