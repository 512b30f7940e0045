// Package discovery loads Google API Discovery documents and converts them
// into service descriptions.
package discovery

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Document is the subset of a Discovery REST description the generator reads.
type Document struct {
	Kind        string               `json:"kind"`
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Version     string               `json:"version"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	RootURL     string               `json:"rootUrl"`
	ServicePath string               `json:"servicePath"`
	Parameters  map[string]Parameter `json:"parameters"`
	Methods     map[string]Method    `json:"methods"`
	Resources   map[string]Resource  `json:"resources"`
	Schemas     map[string]Schema    `json:"schemas"`
}

// Resource is a named collection of methods and child resources.
type Resource struct {
	Methods   map[string]Method   `json:"methods"`
	Resources map[string]Resource `json:"resources"`
}

// Method is one REST method.
type Method struct {
	ID             string               `json:"id"`
	Path           string               `json:"path"`
	HTTPMethod     string               `json:"httpMethod"`
	Description    string               `json:"description"`
	Parameters     map[string]Parameter `json:"parameters"`
	ParameterOrder []string             `json:"parameterOrder"`
	Request        *Ref                 `json:"request"`
	Response       *Ref                 `json:"response"`
}

// Ref references a schema by id.
type Ref struct {
	Ref string `json:"$ref"`
}

// Parameter is a query or path parameter.
type Parameter struct {
	Type             string   `json:"type"`
	Format           string   `json:"format"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Required         bool     `json:"required"`
	Repeated         bool     `json:"repeated"`
	Default          string   `json:"default"`
	Enum             []string `json:"enum"`
	EnumDescriptions []string `json:"enumDescriptions"`
}

// Schema is a JSON schema as used by Discovery documents.
type Schema struct {
	ID                   string            `json:"id"`
	Type                 string            `json:"type"`
	Format               string            `json:"format"`
	Description          string            `json:"description"`
	Ref                  string            `json:"$ref"`
	Properties           map[string]Schema `json:"properties"`
	Items                *Schema           `json:"items"`
	AdditionalProperties *Schema           `json:"additionalProperties"`
	Enum                 []string          `json:"enum"`
}

// Parse decodes a Discovery document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode discovery document")
	}
	if doc.Name == "" {
		return nil, errors.New("discovery document has no name")
	}
	return &doc, nil
}
