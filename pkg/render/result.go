package render

import (
	"fmt"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// Result is everything a renderer needs to present one form state.
type Result struct {
	Values       model.Values      `json:"values" yaml:"values"`
	Fields       []model.Field     `json:"fields" yaml:"fields"`
	Env          []model.EnvVar    `json:"env" yaml:"env"`
	EnvError     string            `json:"envError,omitempty" yaml:"envError,omitempty"`
	CanAddEnv    bool              `json:"canAddEnv" yaml:"-"`
	CanRemoveEnv bool              `json:"canRemoveEnv" yaml:"-"`
	Validation   validation.Result `json:"validation" yaml:"validation"`
	Endpoint     string            `json:"endpoint" yaml:"endpoint"`
	ButtonImage  string            `json:"buttonImage" yaml:"buttonImage"`
	Params       []deployurl.Param `json:"-" yaml:"-"`
	URL          string            `json:"url" yaml:"url"`
	Snippets     snippet.Set       `json:"snippets" yaml:"snippets"`
}

// FromForm derives a Result from the current state of f.
func FromForm(f *form.Form) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("render: form is required")
	}
	snippets, err := f.Snippets()
	if err != nil {
		return Result{}, fmt.Errorf("render: %w", err)
	}
	return Result{
		Values:       f.Values(),
		Fields:       f.Fields(),
		Env:          f.Env(),
		EnvError:     f.EnvError(),
		CanAddEnv:    f.CanAddEnv(),
		CanRemoveEnv: f.CanRemoveEnv(),
		Validation:   f.Validate(),
		Endpoint:     f.URLOptions().Endpoint,
		ButtonImage:  f.ButtonImage(),
		Params:       f.Params(),
		URL:          f.DeployURL(),
		Snippets:     snippets,
	}, nil
}
