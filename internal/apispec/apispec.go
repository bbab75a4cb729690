// Package apispec loads the embedded OpenAPI document describing the HTTP
// API and validates request bodies against it with kin-openapi.
package apispec

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var embeddedDocument []byte

// ErrNoRequestSchema is returned when an operation declares no JSON body.
var ErrNoRequestSchema = errors.New("apispec: operation has no json request schema")

// Operation summarises one documented route.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
}

// Document wraps a loaded and validated OpenAPI document.
type Document struct {
	spec       *openapi3.T
	operations []Operation
}

// Raw returns the embedded YAML document.
func Raw() []byte {
	return embeddedDocument
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Document, error) {
	return LoadFromData(ctx, embeddedDocument)
}

// LoadFromData parses and validates raw (YAML or JSON).
func LoadFromData(ctx context.Context, raw []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("apispec: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("apispec: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("apispec: validate: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("apispec: document does not contain any paths")
	}

	doc := &Document{spec: spec}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			doc.operations = append(doc.operations, collectOperation(method, path, operation))
		}
	}
	sort.Slice(doc.operations, func(i, j int) bool {
		if doc.operations[i].Path == doc.operations[j].Path {
			return doc.operations[i].Method < doc.operations[j].Method
		}
		return doc.operations[i].Path < doc.operations[j].Path
	})
	return doc, nil
}

func collectOperation(method, path string, operation *openapi3.Operation) Operation {
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	return Operation{
		ID:      id,
		Method:  strings.ToUpper(method),
		Path:    path,
		Summary: operation.Summary,
	}
}

// Operations lists the documented routes sorted by path then method.
func (d *Document) Operations() []Operation {
	return append([]Operation(nil), d.operations...)
}

// MarshalJSON renders the document as JSON for the /openapi.json route.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.spec)
}

// RequestSchema returns the JSON request body schema of method+path.
func (d *Document) RequestSchema(method, path string) (*openapi3.Schema, error) {
	item := d.spec.Paths.Value(path)
	if item == nil {
		return nil, fmt.Errorf("apispec: unknown path %s", path)
	}
	operation := item.GetOperation(strings.ToUpper(method))
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRequestSchema, method, path)
	}
	media := operation.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRequestSchema, method, path)
	}
	return media.Schema.Value, nil
}

// ValidateBody decodes body as JSON and checks it against the request schema
// of method+path.
func (d *Document) ValidateBody(method, path string, body []byte) error {
	schema, err := d.RequestSchema(method, path)
	if err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return fmt.Errorf("apispec: decode body: %w", err)
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("apispec: %w", err)
	}
	return nil
}
