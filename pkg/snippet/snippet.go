// Package snippet renders the copy-paste forms of a deploy URL: the bare URL,
// a Markdown image link, an HTML anchor, and a highlighted HTML rendering of
// the URL with each parameter emphasised.
package snippet

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	gotemplatepkg "github.com/goliatone/go-template"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	rendertemplate "github.com/goliatone/go-deploybutton/pkg/render/template"
	"github.com/goliatone/go-deploybutton/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultLabel is the alt text and Markdown label of the button image.
const DefaultLabel = "Deploy with Vercel"

// Format names one snippet rendering.
type Format string

const (
	FormatURL      Format = "url"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the snippet formats in tab order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatURL}
}

// Title returns the tab title of the format.
func (f Format) Title() string {
	switch f {
	case FormatMarkdown:
		return "Markdown"
	case FormatHTML:
		return "HTML"
	case FormatURL:
		return "URL"
	default:
		return string(f)
	}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(raw string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Formats() {
		if known == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("snippet: unknown format %q", raw)
}

// Set holds every rendering of one deploy URL.
type Set struct {
	URL         string `json:"url" yaml:"url"`
	Markdown    string `json:"markdown" yaml:"markdown"`
	HTML        string `json:"html" yaml:"html"`
	Highlighted string `json:"highlighted,omitempty" yaml:"-"`
}

// Get returns the rendering for format.
func (s Set) Get(format Format) string {
	switch format {
	case FormatMarkdown:
		return s.Markdown
	case FormatHTML:
		return s.HTML
	default:
		return s.URL
	}
}

// TemplatesFS exposes the embedded snippet templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures a Generator.
type Option func(*Generator)

// WithButtonImage overrides the button image URL.
func WithButtonImage(image string) Option {
	return func(g *Generator) {
		if image != "" {
			g.button = image
		}
	}
}

// WithLabel overrides the button label.
func WithLabel(label string) Option {
	return func(g *Generator) {
		if label != "" {
			g.label = label
		}
	}
}

// WithTemplateRenderer injects a custom template renderer. Its output is used
// as returned, apart from sanitizing the highlighted markup.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(g *Generator) {
		if renderer != nil {
			g.templates = renderer
		}
	}
}

// Generator renders snippet sets from deploy URL parameters.
type Generator struct {
	templates rendertemplate.TemplateRenderer
	button    string
	label     string
}

// New constructs a Generator backed by the embedded templates.
func New(options ...Option) (*Generator, error) {
	g := &Generator{
		button: deployurl.DefaultButtonImage,
		label:  DefaultLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithPostHook(trimOutput),
		)
		if err != nil {
			return nil, fmt.Errorf("snippet: configure templates: %w", err)
		}
		g.templates = engine
	}
	return g, nil
}

// Build renders every format for the URL assembled from endpoint and params.
func (g *Generator) Build(endpoint string, params []deployurl.Param) (Set, error) {
	data := g.context(endpoint, params)

	var set Set
	targets := []struct {
		name string
		dest *string
	}{
		{"url", &set.URL},
		{"markdown", &set.Markdown},
		{"html", &set.HTML},
		{"highlighted", &set.Highlighted},
	}
	for _, target := range targets {
		out, err := g.templates.RenderTemplate(target.name, data)
		if err != nil {
			return Set{}, fmt.Errorf("snippet: render %s: %w", target.name, err)
		}
		*target.dest = out
	}
	set.Highlighted = sanitizeHighlighted(set.Highlighted)
	return set, nil
}

// Render renders a single format.
func (g *Generator) Render(format Format, endpoint string, params []deployurl.Param) (string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return "", err
	}
	out, err := g.templates.RenderTemplate(string(format), g.context(endpoint, params))
	if err != nil {
		return "", fmt.Errorf("snippet: render %s: %w", format, err)
	}
	return out, nil
}

// trimOutput drops the trailing newline template files end with.
func trimOutput(ctx *gotemplatepkg.HookContext) (string, error) {
	return strings.TrimSpace(ctx.Output), nil
}

func (g *Generator) context(endpoint string, params []deployurl.Param) map[string]any {
	items := make([]any, 0, len(params))
	for _, p := range params {
		items = append(items, map[string]any{"key": p.Key, "value": p.Value})
	}
	return map[string]any{
		"url":      deployurl.Join(endpoint, params),
		"endpoint": endpoint,
		"params":   items,
		"button":   g.button,
		"label":    g.label,
	}
}

var (
	highlightPolicyOnce sync.Once
	highlightPolicy     *bluemonday.Policy
)

func sanitizeHighlighted(raw string) string {
	highlightPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("span", "b")
		highlightPolicy = policy
	})
	return strings.TrimSpace(highlightPolicy.Sanitize(raw))
}
