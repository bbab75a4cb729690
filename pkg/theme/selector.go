package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

var (
	ErrUnknownTheme   = errors.New("theme: unknown theme")
	ErrUnknownVariant = errors.New("theme: unknown variant")
)

type manifestRegistry interface {
	Register(*gotheme.Manifest) error
}

// Selector resolves theme and variant names against registered manifests.
// It satisfies go-theme's ThemeSelector so it can stand in wherever a
// selector is accepted.
type Selector struct {
	mu             sync.RWMutex
	registry       manifestRegistry
	manifests      map[string]*gotheme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ gotheme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests, falling back to DefaultManifest when none
// are supplied.
func NewSelector(defaultTheme, defaultVariant string, manifests ...*gotheme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*gotheme.Manifest{DefaultManifest()}
	}
	s := &Selector{
		registry:       gotheme.NewRegistry(),
		manifests:      make(map[string]*gotheme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	if s.defaultTheme == "" {
		s.defaultTheme = DefaultTheme
	}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	if _, ok := s.manifests[s.defaultTheme]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownTheme, s.defaultTheme)
	}
	return s, nil
}

// Register adds a manifest. Names must be unique.
func (s *Selector) Register(manifest *gotheme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("theme: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("theme: manifest %q already registered", manifest.Name)
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("theme: register %q: %w", manifest.Name, err)
	}
	s.manifests[manifest.Name] = manifest
	return nil
}

// Themes lists the registered theme names.
func (s *Selector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select picks a manifest and variant. Empty names use the defaults.
func (s *Selector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q for theme %q", ErrUnknownVariant, variant, name)
		}
	}

	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Config selects name/variant and resolves it into renderer configuration.
func (s *Selector) Config(name, variant string) (*gotheme.RendererConfig, error) {
	selection, err := s.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return Resolve(selection), nil
}
