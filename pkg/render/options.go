package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request presentation choices that do not
// affect the derived URL.
type RenderOptions struct {
	// Tab selects the snippet shown first by the page renderer ("markdown",
	// "html" or "url").
	Tab string
	// Title overrides the page heading.
	Title string
	// Action is the form submission target used by the page renderer.
	Action string
	// Theme carries the resolved theme configuration. Nil renders with the
	// built-in palette.
	Theme *theme.RendererConfig
}
