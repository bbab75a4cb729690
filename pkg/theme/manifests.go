// Package theme registers the page themes and resolves a theme/variant pair
// into the renderer configuration consumed by the page renderer.
package theme

import gotheme "github.com/goliatone/go-theme"

const (
	DefaultTheme   = "default"
	DefaultVariant = "light"
)

// DefaultManifest describes the built-in palette. Tokens become CSS custom
// properties ("accent" -> "--accent").
func DefaultManifest() *gotheme.Manifest {
	return &gotheme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent":      "#000000",
			"background":  "#ffffff",
			"foreground":  "#111111",
			"muted":       "#666666",
			"border":      "#eaeaea",
			"error":       "#e00000",
			"radius":      "5px",
			"font-family": "-apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif",
			"font-mono":   "Menlo, Monaco, 'Courier New', monospace",
		},
		Variants: map[string]gotheme.Variant{
			"light": {},
			"dark": {
				Tokens: map[string]string{
					"accent":     "#ffffff",
					"background": "#000000",
					"foreground": "#ededed",
					"muted":      "#a1a1a1",
					"border":     "#333333",
					"error":      "#ff4444",
				},
			},
		},
	}
}
