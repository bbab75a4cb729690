package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/renderers/tui"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(a)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerate_RepositoryOnly(t *testing.T) {
	stdout, stderr, err := execute(t, newApp(), "generate", "--repository", "https://github.com/foo/bar")
	require.NoError(t, err)

	assert.Equal(t, "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar\n", stdout)
	assert.Empty(t, stderr)
}

func TestGenerate_InvalidValueStillProducesOutput(t *testing.T) {
	stdout, stderr, err := execute(t, newApp(), "generate",
		"--repository", "https://github.com/foo/bar",
		"--project-name", "My_Project",
	)
	require.NoError(t, err)

	assert.NotContains(t, stdout, "project-name")
	assert.Contains(t, stdout, "s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar")
	assert.Contains(t, stderr, validation.MsgProjectNameFormat)
}

func TestGenerate_EnvParameters(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "generate",
		"--repository", "https://github.com/foo/bar",
		"--env", "API_KEY",
		"--env-description", "desc",
		"--env-link", "https://x.com",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "env=API_KEY&envDescription=desc&envLink=https://x.com")
}

func TestGenerate_MarkdownFormat(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "generate",
		"--repository", "https://github.com/foo/bar",
		"--format", "markdown",
	)
	require.NoError(t, err)

	assert.Equal(t,
		"[![Deploy with Vercel](https://vercel.com/button)](https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar)\n",
		stdout)
}

func TestGenerate_JSONFormat(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "generate",
		"--repository", "https://github.com/foo/bar",
		"--format", "json",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, `"url": "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar"`)
	assert.Contains(t, stdout, `"valid": true`)
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, newApp(), "generate", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "pdf"`)
}

func TestGenerate_PresetRoundTrip(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "generate",
		"--repository", "https://github.com/foo/bar",
		"--env", "API_KEY",
		"--env", "SECRET",
		"--project-name", "my-app",
		"--name", "demo",
		"--format", "preset",
	)
	require.NoError(t, err)

	p, err := preset.Parse([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "demo", p.Name)
	assert.Equal(t, "https://github.com/foo/bar", p.Repository)
	assert.Equal(t, []string{"API_KEY", "SECRET"}, p.Env)
	assert.Equal(t, "my-app", p.ProjectName)

	path := filepath.Join(t.TempDir(), "button.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stdout), 0o600))

	replayed, _, err := execute(t, newApp(), "generate", "--preset", path)
	require.NoError(t, err)
	assert.Equal(t,
		"https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar&env=API_KEY,SECRET&project-name=my-app\n",
		replayed)
}

func TestGenerate_FlagsOverridePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "button.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repository: https://github.com/foo/bar\nproject-name: from-preset\n"), 0o600))

	stdout, _, err := execute(t, newApp(), "generate", "--preset", path, "--project-name", "from-flag")
	require.NoError(t, err)
	assert.Contains(t, stdout, "project-name=from-flag")
	assert.NotContains(t, stdout, "from-preset")
}

func TestGenerate_Open(t *testing.T) {
	a := newApp()
	var opened string
	a.openURL = func(url string) error {
		opened = url
		return nil
	}

	_, _, err := execute(t, a, "generate", "--repository", "https://github.com/foo/bar", "--open")
	require.NoError(t, err)
	assert.Equal(t, "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar", opened)
}

func TestGenerate_OpenFailure(t *testing.T) {
	a := newApp()
	a.openURL = func(string) error { return errors.New("no browser") }

	_, _, err := execute(t, a, "generate", "--open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening browser: no browser")
}

func TestValidate_Valid(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "validate", "--repository", "https://gitlab.com/foo/bar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "valid")
	assert.Contains(t, stdout, "s=https%3A%2F%2Fgitlab.com%2Ffoo%2Fbar")
}

func TestValidate_InvalidPrintsTable(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "validate",
		"--env-description", "desc",
		"--developer-id", "oac_123",
	)
	require.ErrorIs(t, err, errInvalid)

	assert.Contains(t, stdout, "FIELD")
	assert.Contains(t, stdout, "env-description")
	assert.Contains(t, stdout, validation.MsgDeveloperIDNeedsURL)
}

func TestValidate_URL(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "validate",
		"--url", "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar&env=API_KEY&project-name=my-app",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "env=API_KEY")
	assert.Contains(t, stdout, "project-name=my-app")
}

func TestValidate_URLKeepsLiteralPlus(t *testing.T) {
	stdout, _, err := execute(t, newApp(), "validate",
		"--url", "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar&env=API_KEY&envDescription=desc&envLink=https://x.com/c++",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "envLink=https://x.com/c++")
}

func TestValidate_URLWithoutSource(t *testing.T) {
	_, _, err := execute(t, newApp(), "validate", "--url", "https://vercel.com/import/git?env=A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading --url")
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, _, err := execute(t, newApp(), "--config", path, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func TestRoot_ConfigEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  endpoint: https://example.com/new\n"), 0o600))

	stdout, _, err := execute(t, newApp(), "--config", path, "generate", "--repository", "https://github.com/foo/bar")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar\n", stdout)
}

type scriptedDriver struct {
	inputs   map[string]string
	confirms []bool
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	if value, ok := d.inputs[cfg.Message]; ok {
		return value, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, nil
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func TestWizard_UsesPrefilledValues(t *testing.T) {
	a := newApp()
	driver := &scriptedDriver{inputs: map[string]string{}}
	a.newDriver = func(io.Writer) tui.PromptDriver { return driver }

	stdout, _, err := execute(t, a, "wizard", "--repository", "https://github.com/foo/bar", "--format", "url")
	require.NoError(t, err)
	assert.Equal(t, "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Ffoo%2Fbar\n", stdout)
}

func TestWizard_InvalidFormat(t *testing.T) {
	a := newApp()
	a.newDriver = func(io.Writer) tui.PromptDriver { return &scriptedDriver{} }

	_, _, err := execute(t, a, "wizard", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --format")
}
