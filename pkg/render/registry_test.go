package render_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deploybutton/pkg/render"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, result render.Result, _ render.RenderOptions) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.name + ":" + result.URL), nil
}

func TestRegistryRender(t *testing.T) {
	registry, err := render.NewRegistry(stubRenderer{name: "b"}, stubRenderer{name: "a"})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	out, contentType, err := registry.Render(context.Background(), "a", render.Result{URL: "u"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "a:u" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryErrors(t *testing.T) {
	if _, err := render.NewRegistry(stubRenderer{name: "a"}, stubRenderer{name: "a"}); !errors.Is(err, render.ErrRendererExists) {
		t.Fatalf("expected ErrRendererExists, got %v", err)
	}
	if _, err := render.NewRegistry(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}

	boom := errors.New("boom")
	registry, err := render.NewRegistry(stubRenderer{name: "broken", err: boom})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if _, _, err := registry.Render(context.Background(), "missing", render.Result{}, render.RenderOptions{}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, _, err := registry.Render(context.Background(), "broken", render.Result{}, render.RenderOptions{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
	if registry.Has("missing") || !registry.Has("broken") {
		t.Fatal("Has() reported the wrong membership")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry, err := render.NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		wg.Add(2)
		go func(name string) {
			defer wg.Done()
			if err := registry.Register(stubRenderer{name: name}); err != nil {
				t.Errorf("register %s: %v", name, err)
			}
		}(name)
		go func() {
			defer wg.Done()
			_ = registry.List()
		}()
	}
	wg.Wait()

	if got := len(registry.List()); got != 4 {
		t.Fatalf("expected 4 renderers, got %d", got)
	}
}
