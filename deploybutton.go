package deploybutton

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/renderers/data"
	"github.com/goliatone/go-deploybutton/pkg/renderers/page"
	"github.com/goliatone/go-deploybutton/pkg/renderers/snippets"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

// Values aliases model.Values, the accepted field values a deploy URL is
// derived from.
type Values = model.Values

// Result aliases render.Result for callers rendering outside the registry.
type Result = render.Result

// RenderOptions describes per-request overrides such as the active tab or a
// resolved theme.
type RenderOptions = render.RenderOptions

// NewForm exposes the form controller constructor from the top-level module.
func NewForm(options ...form.Option) *form.Form {
	return form.New(options...)
}

// DeployURL derives the deploy URL for v using the default endpoint. Values
// are used as given; run them through a form first to drop invalid ones.
func DeployURL(v Values) string {
	return deployurl.Build(v, deployurl.Options{})
}

// NewRegistry returns a registry holding every built-in renderer: the url,
// markdown and html snippets, json and yaml results, and the HTML page.
func NewRegistry(pageOptions ...page.Option) (*render.Registry, error) {
	pageRenderer, err := page.New(pageOptions...)
	if err != nil {
		return nil, fmt.Errorf("deploybutton: %w", err)
	}
	renderers := append(snippets.All(), data.NewJSON(), data.NewYAML(), pageRenderer)
	registry, err := render.NewRegistry(renderers...)
	if err != nil {
		return nil, fmt.Errorf("deploybutton: %w", err)
	}
	return registry, nil
}

// Generate replays v through a new form, so invalid values are dropped the
// same way they are for typed input, and renders the result with the named
// renderer. It is the simplest entry point for callers that only want output.
func Generate(ctx context.Context, v Values, rendererName string, options RenderOptions, formOptions ...form.Option) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	f := form.New(formOptions...)
	if _, err := preset.Apply(f, v); err != nil {
		return nil, fmt.Errorf("deploybutton: %w", err)
	}
	result, err := render.FromForm(f)
	if err != nil {
		return nil, fmt.Errorf("deploybutton: %w", err)
	}
	out, _, err := registry.Render(ctx, rendererName, result, options)
	if err != nil {
		return nil, fmt.Errorf("deploybutton: %w", err)
	}
	return out, nil
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}

// SnippetTemplates exposes the embedded snippet templates.
func SnippetTemplates() fs.FS {
	return snippet.TemplatesFS()
}
