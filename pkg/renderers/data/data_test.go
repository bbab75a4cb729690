package data_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/renderers/data"
)

func sampleResult(t *testing.T) render.Result {
	t.Helper()
	f := form.New()
	f.SetRepository("https://github.com/foo/bar")
	f.SetProjectName("My_Project")
	result, err := render.FromForm(f)
	if err != nil {
		t.Fatalf("from form: %v", err)
	}
	return result
}

func TestJSONRenderer(t *testing.T) {
	out, err := data.NewJSON().Render(context.Background(), sampleResult(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		URL        string `json:"url"`
		Validation struct {
			Valid  bool `json:"valid"`
			Issues []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"issues"`
		} `json:"validation"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if decoded.URL != "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar" {
		t.Fatalf("unexpected url %q", decoded.URL)
	}
	if decoded.Validation.Valid {
		t.Fatal("expected invalid result")
	}
	if len(decoded.Validation.Issues) != 1 || decoded.Validation.Issues[0].Field != "project-name" {
		t.Fatalf("unexpected issues %+v", decoded.Validation.Issues)
	}
	if strings.Contains(string(out), `&`) {
		t.Fatalf("expected unescaped ampersands, got %s", out)
	}
}

func TestYAMLRenderer(t *testing.T) {
	out, err := data.NewYAML().Render(context.Background(), sampleResult(t), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	snippets, ok := decoded["snippets"].(map[string]any)
	if !ok {
		t.Fatalf("expected snippets mapping, got %#v", decoded["snippets"])
	}
	if _, ok := snippets["highlighted"]; ok {
		t.Fatal("highlighted markup should not be emitted in yaml")
	}
	if !strings.HasPrefix(snippets["markdown"].(string), "[![Deploy with Vercel]") {
		t.Fatalf("unexpected markdown %v", snippets["markdown"])
	}
}
