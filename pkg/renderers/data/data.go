// Package data renders the whole derived result as a machine-readable
// document.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-deploybutton/pkg/render"
)

// JSON renders the result as indented JSON.
type JSON struct{}

// NewJSON constructs the JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

func (JSON) Name() string {
	return "json"
}

func (JSON) ContentType() string {
	return "application/json"
}

func (JSON) Render(_ context.Context, result render.Result, _ render.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return nil, fmt.Errorf("json renderer: encode result: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML renders the result as a YAML document.
type YAML struct{}

// NewYAML constructs the YAML renderer.
func NewYAML() *YAML {
	return &YAML{}
}

func (YAML) Name() string {
	return "yaml"
}

func (YAML) ContentType() string {
	return "application/yaml"
}

func (YAML) Render(_ context.Context, result render.Result, _ render.RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return nil, fmt.Errorf("yaml renderer: encode result: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("yaml renderer: flush: %w", err)
	}
	return buf.Bytes(), nil
}
