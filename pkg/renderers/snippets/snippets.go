// Package snippets exposes each copy-paste rendering of a deploy URL as a
// registry renderer.
package snippets

import (
	"context"
	"fmt"

	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

// Renderer emits one snippet format.
type Renderer struct {
	format snippet.Format
}

// New constructs a renderer for format.
func New(format snippet.Format) (*Renderer, error) {
	parsed, err := snippet.ParseFormat(string(format))
	if err != nil {
		return nil, fmt.Errorf("snippets renderer: %w", err)
	}
	return &Renderer{format: parsed}, nil
}

// All returns one renderer per snippet format in tab order.
func All() []render.Renderer {
	formats := snippet.Formats()
	out := make([]render.Renderer, 0, len(formats))
	for _, format := range formats {
		out = append(out, &Renderer{format: format})
	}
	return out
}

func (r *Renderer) Name() string {
	return string(r.format)
}

func (r *Renderer) ContentType() string {
	switch r.format {
	case snippet.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case snippet.FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func (r *Renderer) Render(_ context.Context, result render.Result, _ render.RenderOptions) ([]byte, error) {
	body := result.Snippets.Get(r.format)
	if body == "" {
		return nil, fmt.Errorf("snippets renderer: %s snippet is empty", r.format)
	}
	return []byte(body), nil
}
