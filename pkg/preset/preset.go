// Package preset reads and writes YAML files of Deploy Button field values
// and replays them into a form.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
)

// ErrEmptyPreset is returned when a preset document carries no values.
var ErrEmptyPreset = errors.New("preset: document is empty")

// Preset is the on-disk shape. Keys match the form's field names.
type Preset struct {
	Name           string   `yaml:"name,omitempty"`
	Repository     string   `yaml:"repository,omitempty"`
	Env            []string `yaml:"env,omitempty"`
	EnvDescription string   `yaml:"env-description,omitempty"`
	EnvLink        string   `yaml:"env-link,omitempty"`
	ProjectName    string   `yaml:"project-name,omitempty"`
	RepoName       string   `yaml:"repo-name,omitempty"`
	RedirectURL    string   `yaml:"redirect-url,omitempty"`
	DeveloperID    string   `yaml:"developer-id,omitempty"`
}

// Load reads and parses the preset at path.
func Load(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML preset. Unknown keys are rejected.
func Parse(data []byte) (Preset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Preset{}, ErrEmptyPreset
	}
	var p Preset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("decode yaml: %w", err)
	}
	return p, nil
}

// FromValues converts derived values into a preset.
func FromValues(v model.Values) Preset {
	return Preset{
		Repository:     v.Repository,
		Env:            append([]string(nil), v.Env...),
		EnvDescription: v.EnvDescription,
		EnvLink:        v.EnvLink,
		ProjectName:    v.ProjectName,
		RepoName:       v.RepoName,
		RedirectURL:    v.RedirectURL,
		DeveloperID:    v.DeveloperID,
	}
}

// Values converts the preset into form values.
func (p Preset) Values() model.Values {
	return model.Values{
		Repository:     p.Repository,
		Env:            append([]string(nil), p.Env...),
		EnvDescription: p.EnvDescription,
		EnvLink:        p.EnvLink,
		ProjectName:    p.ProjectName,
		RepoName:       p.RepoName,
		RedirectURL:    p.RedirectURL,
		DeveloperID:    p.DeveloperID,
	}
}

// Marshal encodes the preset as YAML.
func (p Preset) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(p); err != nil {
		return nil, fmt.Errorf("preset: encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("preset: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Apply replays v into f through the controller setters, env keys first so
// the description and link rules see them. Empty values are skipped so
// earlier inputs survive layering. The returned map holds the messages the
// edits produced, keyed like form.Errors.
func Apply(f *form.Form, v model.Values) (map[string]string, error) {
	if f == nil {
		return nil, fmt.Errorf("preset: form is required")
	}

	if len(v.Env) > 0 {
		if err := f.SetEnv(v.Env); err != nil && !errors.Is(err, form.ErrTooManyEnvVars) {
			return nil, fmt.Errorf("preset: %w", err)
		}
	}
	for _, name := range []model.FieldName{
		model.FieldRepository,
		model.FieldEnvDescription,
		model.FieldEnvLink,
		model.FieldProjectName,
		model.FieldRepoName,
		model.FieldRedirectURL,
		model.FieldDeveloperID,
	} {
		value := v.Get(name)
		if value == "" {
			continue
		}
		if _, err := f.Set(name, value); err != nil {
			return nil, fmt.Errorf("preset: %w", err)
		}
	}
	return f.Errors(), nil
}
