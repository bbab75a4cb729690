// Package gotemplate adapts the go-template pongo2 engine to
// template.TemplateRenderer.
package gotemplate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-deploybutton/pkg/render/template"
)

const defaultExtension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	files     fs.FS
	extension string
	globals   map[string]any
	postHooks []gotemplatepkg.PostHook
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithExtension overrides the ".tpl" suffix appended to bare template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithGlobalData seeds values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		for key, value := range data {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if cfg.globals == nil {
				cfg.globals = make(map[string]any, len(data))
			}
			cfg.globals[key] = value
		}
	}
}

// WithPostHook runs hook on every rendered output, in registration order.
func WithPostHook(hook gotemplatepkg.PostHook) Option {
	return func(cfg *config) {
		if hook != nil {
			cfg.postHooks = append(cfg.postHooks, hook)
		}
	}
}

// Engine renders templates through go-template. Data is flattened through
// JSON, so templates address struct fields by their json names and numbers
// arrive as floats.
type Engine struct {
	engine *gotemplatepkg.Engine
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. A template source is required.
func New(options ...Option) (*Engine, error) {
	cfg := config{extension: defaultExtension}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.files == nil {
		return nil, errors.New("gotemplate: template fs is required")
	}

	engine, err := gotemplatepkg.NewRenderer(
		gotemplatepkg.WithFS(cfg.files),
		gotemplatepkg.WithExtension(cfg.extension),
		gotemplatepkg.WithGlobalData(cfg.globals),
	)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: %w", err)
	}
	for _, hook := range cfg.postHooks {
		engine.RegisterPostHook(hook)
	}
	return &Engine{engine: engine}, nil
}

// RenderTemplate renders the named template, appending the configured
// extension when name has none.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.engine.RenderTemplate(name, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}

// RenderString parses and renders templateContent.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.engine == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	rendered, err := e.engine.RenderString(templateContent, data, out...)
	if err != nil {
		return "", fmt.Errorf("gotemplate: %w", err)
	}
	return rendered, nil
}
