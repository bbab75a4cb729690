package render

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrRendererNotFound is returned when no renderer has the requested name.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrRendererExists is returned when a name is registered twice.
	ErrRendererExists = errors.New("render: renderer already registered")
)

// Registry maps output names ("url", "json", "page", ...) to renderers. It is
// safe for concurrent use; the server shares one across requests.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry creates a registry holding renderers.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{byName: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds renderer under its Name().
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrRendererExists, name)
	}
	r.byName[name] = renderer
	return nil
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Render renders result with the named renderer and reports the output's
// content type.
func (r *Registry) Render(ctx context.Context, name string, result Result, options RenderOptions) ([]byte, string, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, "", err
	}
	out, err := renderer.Render(ctx, result, options)
	if err != nil {
		return nil, "", fmt.Errorf("render %s: %w", name, err)
	}
	return out, renderer.ContentType(), nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
