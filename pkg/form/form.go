package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// Form holds the field set of one Deploy Button generator session.
type Form struct {
	fields   map[model.FieldName]*model.Field
	env      []model.EnvVar
	envError string

	urlOptions  deployurl.Options
	buttonImage string
	newID       func() string
	snippets    *snippet.Generator
}

// New constructs a form with one empty env row.
func New(options ...Option) *Form {
	f := &Form{
		fields:      make(map[model.FieldName]*model.Field, len(model.FieldNames())),
		urlOptions:  defaultURLOptions(),
		buttonImage: deployurl.DefaultButtonImage,
		newID:       defaultIDGenerator,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	for _, name := range model.FieldNames() {
		f.fields[name] = &model.Field{Name: name}
	}
	f.env = []model.EnvVar{{ID: f.newID()}}
	return f
}

// dependencies captures the inputs of the cross-field rules.
type dependencies struct {
	env         string
	description string
	link        string
	redirectURL string
	developerID string
}

func (f *Form) dependencies() dependencies {
	keys := make([]string, len(f.env))
	for i, row := range f.env {
		keys[i] = row.Value
	}
	return dependencies{
		env:         strconv.Itoa(len(keys)) + "\x00" + strings.Join(keys, "\x00"),
		description: f.fields[model.FieldEnvDescription].Value,
		link:        f.fields[model.FieldEnvLink].Value,
		redirectURL: f.fields[model.FieldRedirectURL].Value,
		developerID: f.fields[model.FieldDeveloperID].Value,
	}
}

// edit applies mutate and re-evaluates the cross-field rules whose inputs
// changed.
func (f *Form) edit(mutate func()) {
	before := f.dependencies()
	mutate()
	after := f.dependencies()

	if before.env != after.env || before.description != after.description || before.link != after.link {
		f.envError = ""
		hasEnv := f.hasEnv()
		f.fields[model.FieldEnvLink].Error = validation.EnvLinkDependency(hasEnv, after.description, after.link)
		f.fields[model.FieldEnvDescription].Error = validation.EnvDescriptionDependency(hasEnv, after.description)
	}
	if before.redirectURL != after.redirectURL || before.developerID != after.developerID {
		f.fields[model.FieldDeveloperID].Error = validation.DeveloperIDDependency(after.redirectURL, after.developerID)
	}
}

// apply records input on the named field and accepts it when msg is empty.
func (f *Form) apply(name model.FieldName, input, msg string) string {
	f.edit(func() {
		field := f.fields[name]
		field.Input = input
		field.Error = msg
		if msg == "" {
			field.Value = input
		}
	})
	return f.fields[name].Error
}

// Set dispatches an edit by field name and returns the resulting message.
func (f *Form) Set(name model.FieldName, value string) (string, error) {
	switch name {
	case model.FieldRepository:
		return f.SetRepository(value), nil
	case model.FieldEnvDescription:
		return f.SetEnvDescription(value), nil
	case model.FieldEnvLink:
		return f.SetEnvLink(value), nil
	case model.FieldProjectName:
		return f.SetProjectName(value), nil
	case model.FieldRepoName:
		return f.SetRepoName(value), nil
	case model.FieldRedirectURL:
		return f.SetRedirectURL(value), nil
	case model.FieldDeveloperID:
		return f.SetDeveloperID(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// SetRepository edits the source repository.
func (f *Form) SetRepository(value string) string {
	return f.apply(model.FieldRepository, value, validation.Repository(value))
}

// SetEnvDescription edits the env description.
func (f *Form) SetEnvDescription(value string) string {
	return f.apply(model.FieldEnvDescription, value, validation.EnvDescription(value, f.hasEnv()))
}

// SetEnvLink edits the env documentation link.
func (f *Form) SetEnvLink(value string) string {
	description := f.fields[model.FieldEnvDescription].Value
	return f.apply(model.FieldEnvLink, value, validation.EnvLink(value, f.hasEnv(), description))
}

// SetProjectName edits the default project name.
func (f *Form) SetProjectName(value string) string {
	return f.apply(model.FieldProjectName, value, validation.ProjectName(value))
}

// SetRepoName edits the default git repository name.
func (f *Form) SetRepoName(value string) string {
	return f.apply(model.FieldRepoName, value, validation.RepoName(value))
}

// SetRedirectURL edits the redirect target.
func (f *Form) SetRedirectURL(value string) string {
	return f.apply(model.FieldRedirectURL, value, validation.RedirectURL(value))
}

// SetDeveloperID edits the integration developer id. The value is always
// accepted; its only rule depends on the redirect URL.
func (f *Form) SetDeveloperID(value string) string {
	f.edit(func() {
		field := f.fields[model.FieldDeveloperID]
		field.Input = value
		field.Value = value
	})
	return f.fields[model.FieldDeveloperID].Error
}

func (f *Form) hasEnv() bool {
	for _, row := range f.env {
		if row.Value != "" {
			return true
		}
	}
	return false
}

// Field returns a copy of the named field.
func (f *Form) Field(name model.FieldName) model.Field {
	if field, ok := f.fields[name]; ok {
		return *field
	}
	return model.Field{Name: name}
}

// Fields returns copies of all single-valued fields in form order.
func (f *Form) Fields() []model.Field {
	names := model.FieldNames()
	out := make([]model.Field, 0, len(names))
	for _, name := range names {
		out = append(out, *f.fields[name])
	}
	return out
}

// Values snapshots the accepted values. Env rows keep their value even when
// the key failed validation.
func (f *Form) Values() model.Values {
	env := make([]string, len(f.env))
	for i, row := range f.env {
		env[i] = row.Value
	}
	return model.Values{
		Repository:     f.fields[model.FieldRepository].Value,
		Env:            env,
		EnvDescription: f.fields[model.FieldEnvDescription].Value,
		EnvLink:        f.fields[model.FieldEnvLink].Value,
		ProjectName:    f.fields[model.FieldProjectName].Value,
		RepoName:       f.fields[model.FieldRepoName].Value,
		RedirectURL:    f.fields[model.FieldRedirectURL].Value,
		DeveloperID:    f.fields[model.FieldDeveloperID].Value,
	}
}

// Errors returns the current messages keyed by field. Env rows use
// "env.<index>" and the list-level message uses "env".
func (f *Form) Errors() map[string]string {
	out := make(map[string]string)
	for _, field := range f.Fields() {
		if field.Error != "" {
			out[string(field.Name)] = field.Error
		}
	}
	if f.envError != "" {
		out[string(model.FieldEnv)] = f.envError
	}
	for i, row := range f.env {
		if row.Error != "" {
			out[EnvKey(i)] = row.Error
		}
	}
	return out
}

// Validate summarises the current messages in form order.
func (f *Form) Validate() validation.Result {
	var issues []validation.Issue
	for _, field := range f.Fields() {
		issues = append(issues, validation.Issue{Field: string(field.Name), Message: field.Error})
	}
	issues = append(issues, validation.Issue{Field: string(model.FieldEnv), Message: f.envError})
	for i, row := range f.env {
		issues = append(issues, validation.Issue{Field: EnvKey(i), Message: row.Error})
	}
	return validation.NewResult(issues...)
}

// URLOptions reports the derivation options in effect.
func (f *Form) URLOptions() deployurl.Options {
	return f.urlOptions
}

// ButtonImage reports the button artwork URL.
func (f *Form) ButtonImage() string {
	return f.buttonImage
}

// Params derives the ordered deploy URL parameters.
func (f *Form) Params() []deployurl.Param {
	return deployurl.Parts(f.Values(), f.urlOptions)
}

// DeployURL derives the deploy URL from the current values.
func (f *Form) DeployURL() string {
	return deployurl.Build(f.Values(), f.urlOptions)
}

// Snippets renders the copy-paste snippets for the current values.
func (f *Form) Snippets() (snippet.Set, error) {
	if f.snippets == nil {
		gen, err := snippet.New(snippet.WithButtonImage(f.buttonImage))
		if err != nil {
			return snippet.Set{}, fmt.Errorf("form: snippets: %w", err)
		}
		f.snippets = gen
	}
	return f.snippets.Build(f.urlOptions.Endpoint, f.Params())
}

// EnvKey returns the error key of the env row at index.
func EnvKey(index int) string {
	return string(model.FieldEnv) + "." + strconv.Itoa(index)
}
