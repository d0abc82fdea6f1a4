package http

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const portfolioSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"definitions": {
		"text": {"type": "string"},
		"count": {"type": "integer"},
		"project": {
			"oneOf": [
				{"type": "string"},
				{
					"type": "object",
					"properties": {
						"name": {"$ref": "#/definitions/text"},
						"description": {"$ref": "#/definitions/text"},
						"url": {"$ref": "#/definitions/text"},
						"language": {"$ref": "#/definitions/text"},
						"commits": {"$ref": "#/definitions/count"},
						"branches": {"$ref": "#/definitions/count"},
						"stars": {"$ref": "#/definitions/count"},
						"forks": {"$ref": "#/definitions/count"}
					}
				}
			]
		},
		"experience": {
			"oneOf": [
				{"type": "string"},
				{
					"type": "object",
					"properties": {
						"title": {"$ref": "#/definitions/text"},
						"company": {"$ref": "#/definitions/text"},
						"duration": {"$ref": "#/definitions/text"},
						"description": {"$ref": "#/definitions/text"}
					}
				}
			]
		},
		"certification": {
			"oneOf": [
				{"type": "string"},
				{
					"type": "object",
					"properties": {
						"name": {"$ref": "#/definitions/text"},
						"issuer": {"$ref": "#/definitions/text"},
						"year": {"$ref": "#/definitions/text"},
						"url": {"$ref": "#/definitions/text"}
					}
				}
			]
		},
		"projects": {"type": "array", "items": {"$ref": "#/definitions/project"}},
		"experiences": {"type": "array", "items": {"$ref": "#/definitions/experience"}},
		"certifications": {"type": "array", "items": {"$ref": "#/definitions/certification"}}
	},
	"properties": {
		"templateName": {"$ref": "#/definitions/text"},
		"name": {"type": "string", "minLength": 1},
		"title": {"$ref": "#/definitions/text"},
		"about": {"$ref": "#/definitions/text"},
		"email": {"$ref": "#/definitions/text"},
		"phone": {"$ref": "#/definitions/text"},
		"location": {"$ref": "#/definitions/text"},
		"githubUrl": {"$ref": "#/definitions/text"},
		"linkedinUrl": {"$ref": "#/definitions/text"},
		"website": {"$ref": "#/definitions/text"},
		"education": {"$ref": "#/definitions/text"},
		"degree": {"$ref": "#/definitions/text"},
		"collegeName": {"$ref": "#/definitions/text"},
		"yearOfPassing": {"$ref": "#/definitions/text"},
		"skills": {
			"oneOf": [
				{"type": "string"},
				{"type": "array", "items": {"type": "string"}}
			]
		},
		"projects": {"$ref": "#/definitions/projects"},
		"experiences": {"$ref": "#/definitions/experiences"},
		"experience": {"$ref": "#/definitions/experiences"},
		"certifications": {"$ref": "#/definitions/certifications"}
	}
}`

// PayloadValidator validates portfolio payloads against json schema.
type PayloadValidator struct {
	schema *gojsonschema.Schema
}

// NewPayloadValidator creates new PayloadValidator instance.
func NewPayloadValidator() (*PayloadValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(portfolioSchema))
	if err != nil {
		return nil, fmt.Errorf("loading portfolio schema: %w", err)
	}

	return &PayloadValidator{schema: schema}, nil
}

// Validate returns nil if data is a valid portfolio payload.
// Otherwise returned error describes all violations.
func (v *PayloadValidator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}

	return fmt.Errorf("invalid portfolio data: %s", strings.Join(msgs, "; "))
}
