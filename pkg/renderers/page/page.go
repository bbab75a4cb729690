// Package page renders the Deploy Button generator as a server-side HTML
// document: live button, snippet tabs, and the form with inline errors.
package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/render"
	rendertemplate "github.com/goliatone/go-deploybutton/pkg/render/template"
	"github.com/goliatone/go-deploybutton/pkg/render/template/gotemplate"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

const (
	templateName = "templates/page.tpl"

	// DefaultTitle heads the page when RenderOptions.Title is empty.
	DefaultTitle = "Deploy Button Generator"

	themeAssetStylesheet = "page.stylesheet"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	assetURLPrefix   string
	stylesheet       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet links an external stylesheet. Theme assets take precedence.
func WithStylesheet(path string) Option {
	return func(cfg *config) {
		cfg.stylesheet = path
	}
}

// WithAssetURLPrefix prefixes relative stylesheet paths (e.g. "/static").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
	}
}

// Renderer turns a render.Result into the generator page.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	assetURLPrefix string
	stylesheet     string
}

// New constructs a page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("page renderer: template %q not found: %w", templateName, err)
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates:      templates,
		assetURLPrefix: cfg.assetURLPrefix,
		stylesheet:     cfg.stylesheet,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "page"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the generator page for result.
func (r *Renderer) Render(_ context.Context, result render.Result, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = DefaultTitle
	}
	action := options.Action
	if action == "" {
		action = "/"
	}
	active, err := snippet.ParseFormat(options.Tab)
	if err != nil {
		active = snippet.FormatMarkdown
	}

	mapping := render.MapIssues(result.Validation.Issues)

	data := map[string]any{
		"title":          title,
		"label":          snippet.DefaultLabel,
		"action":         action,
		"tab":            string(active),
		"result":         result,
		"highlighted":    result.Snippets.Highlighted,
		"tabs":           buildTabs(result.Snippets, active),
		"fields":         buildFields(result.Fields),
		"env":            result.Env,
		"env_error":      result.EnvError,
		"can_add_env":    result.CanAddEnv,
		"can_remove_env": result.CanRemoveEnv,
		"form_errors":    mapping.Form,
		"theme":          buildThemeContext(options.Theme),
		"stylesheet":     r.stylesheetURL(options.Theme),
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

type pageTab struct {
	Format string `json:"format"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Active bool   `json:"active"`
}

func buildTabs(set snippet.Set, active snippet.Format) []pageTab {
	formats := snippet.Formats()
	tabs := make([]pageTab, 0, len(formats))
	for _, format := range formats {
		tabs = append(tabs, pageTab{
			Format: string(format),
			Title:  format.Title(),
			Body:   set.Get(format),
			Active: format == active,
		})
	}
	return tabs
}

type pageField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	Input       string `json:"input"`
	Error       string `json:"error,omitempty"`
}

func buildFields(fields []model.Field) []pageField {
	out := make([]pageField, 0, len(fields))
	for _, field := range fields {
		input := field.Input
		if input == "" {
			input = field.Value
		}
		out = append(out, pageField{
			Name:        string(field.Name),
			Label:       field.Name.Label(),
			Placeholder: field.Name.Placeholder(),
			Input:       input,
			Error:       field.Error,
		})
	}
	return out
}

type pageTheme struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) pageTheme {
	if cfg == nil {
		return pageTheme{}
	}
	return pageTheme{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Tokens:       cfg.Tokens,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

func (r *Renderer) stylesheetURL(cfg *theme.RendererConfig) string {
	path := r.stylesheet
	if cfg != nil && cfg.AssetURL != nil {
		if resolved := strings.TrimSpace(cfg.AssetURL(themeAssetStylesheet)); resolved != "" {
			path = resolved
		}
	}
	return expandAssetURL(r.assetURLPrefix, path)
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//") ||
		strings.HasPrefix(name, "/") {
		return name
	}
	p := strings.TrimRight(prefix, "/")
	if p == "" {
		return name
	}
	return p + "/" + strings.TrimLeft(name, "/")
}
