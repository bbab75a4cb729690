package render

import (
	"context"
)

// Renderer converts a derived Result into a byte representation (snippet
// text, HTML page, JSON, YAML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, result Result, options RenderOptions) ([]byte, error)
}
