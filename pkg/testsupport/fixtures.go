package testsupport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/render"
)

// SequentialIDs returns an env row id generator yielding "env-1", "env-2", ...
// so rendered output is stable across runs.
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("env-%d", n)
	}
}

// NewForm builds a form with deterministic env row ids.
func NewForm(options ...form.Option) *form.Form {
	options = append(options, form.WithIDGenerator(SequentialIDs()))
	return form.New(options...)
}

// MustLoadPreset reads a preset fixture and replays it into a new form.
func MustLoadPreset(t *testing.T, path string) *form.Form {
	t.Helper()

	p, err := preset.Load(path)
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	f := NewForm()
	if _, err := preset.Apply(f, p.Values()); err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	return f
}

// MustResult derives a render.Result from f.
func MustResult(t *testing.T, f *form.Form) render.Result {
	t.Helper()

	result, err := render.FromForm(f)
	if err != nil {
		t.Fatalf("result from form: %v", err)
	}
	return result
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
