package theme

import (
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Resolve flattens a selection: variant tokens, templates and asset files
// override the manifest's, tokens are mirrored as "--token" CSS variables,
// and AssetURL joins the asset prefix with the resolved file.
func Resolve(selection *gotheme.Selection) *gotheme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &gotheme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	variant := manifest.Variants[selection.Variant]

	cfg.Tokens = merge(manifest.Tokens, variant.Tokens)
	cfg.Partials = merge(manifest.Templates, variant.Templates)
	cfg.CSSVars = cssVars(cfg.Tokens)

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := merge(manifest.Assets.Files, variant.Assets.Files)
	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		return joinAsset(prefix, file)
	}
	return cfg
}

func merge(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimPrefix(strings.TrimSpace(key), "--")
		if name == "" {
			continue
		}
		out["--"+name] = value
	}
	return out
}

func joinAsset(prefix, file string) string {
	if strings.HasPrefix(file, "http://") ||
		strings.HasPrefix(file, "https://") ||
		strings.HasPrefix(file, "//") ||
		prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}
