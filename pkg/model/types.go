package model

// FieldName identifies a single-valued form input. The string form doubles as
// the error key and the query parameter name accepted by the HTTP surface.
type FieldName string

const (
	FieldRepository     FieldName = "repository"
	FieldEnvDescription FieldName = "env-description"
	FieldEnvLink        FieldName = "env-link"
	FieldRedirectURL    FieldName = "redirect-url"
	FieldDeveloperID    FieldName = "developer-id"
	FieldProjectName    FieldName = "project-name"
	FieldRepoName       FieldName = "repo-name"
)

// FieldEnv is the error key used for list-level environment variable errors.
// Row errors are keyed "env.<index>".
const FieldEnv FieldName = "env"

// FieldNames lists the single-valued fields in form order.
func FieldNames() []FieldName {
	return []FieldName{
		FieldRepository,
		FieldEnvDescription,
		FieldEnvLink,
		FieldProjectName,
		FieldRepoName,
		FieldRedirectURL,
		FieldDeveloperID,
	}
}

// Label returns the human readable label shown next to the input.
func (n FieldName) Label() string {
	switch n {
	case FieldRepository:
		return "Git Repository"
	case FieldEnvDescription:
		return "Environment Variables Description"
	case FieldEnvLink:
		return "Environment Variables Link"
	case FieldRedirectURL:
		return "Redirect URL"
	case FieldDeveloperID:
		return "Developer ID"
	case FieldProjectName:
		return "Default Project Name"
	case FieldRepoName:
		return "Default Git Repository Name"
	case FieldEnv:
		return "Environment Variables Keys"
	default:
		return string(n)
	}
}

// Placeholder returns the example value rendered inside empty inputs.
func (n FieldName) Placeholder() string {
	switch n {
	case FieldEnvDescription:
		return "Enter your API Keys to deploy"
	case FieldEnvLink:
		return "https://myheadlessproject.com/docs/env-vars"
	case FieldRedirectURL:
		return "https://myheadlessproject.com"
	case FieldDeveloperID:
		return "oac_7rUTiCMow23Gyfao9RQQ3Es2"
	case FieldProjectName, FieldRepoName:
		return "my-awesome-project"
	case FieldEnv:
		return "MY_API_KEY"
	default:
		return ""
	}
}

// Valid reports whether n names a known single-valued field.
func (n FieldName) Valid() bool {
	for _, name := range FieldNames() {
		if name == n {
			return true
		}
	}
	return false
}

// Field holds one user-editable input. Value is the last accepted input,
// Input the most recent raw edit and Error the message derived from it.
type Field struct {
	Name  FieldName `json:"name" yaml:"name"`
	Value string    `json:"value" yaml:"value"`
	Input string    `json:"input,omitempty" yaml:"input,omitempty"`
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// HasError reports whether the field currently carries a validation message.
func (f Field) HasError() bool {
	return f.Error != ""
}

// EnvVar is one key-only environment variable row.
type EnvVar struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Values is a snapshot of the accepted field values. It is the sole input of
// deploy URL derivation.
type Values struct {
	Repository     string   `json:"repository,omitempty" yaml:"repository,omitempty"`
	Env            []string `json:"env,omitempty" yaml:"env,omitempty"`
	EnvDescription string   `json:"envDescription,omitempty" yaml:"envDescription,omitempty"`
	EnvLink        string   `json:"envLink,omitempty" yaml:"envLink,omitempty"`
	ProjectName    string   `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	RepoName       string   `json:"repoName,omitempty" yaml:"repoName,omitempty"`
	RedirectURL    string   `json:"redirectURL,omitempty" yaml:"redirectURL,omitempty"`
	DeveloperID    string   `json:"developerID,omitempty" yaml:"developerID,omitempty"`
}

// EnvKeys returns the non-empty keys in list order.
func (v Values) EnvKeys() []string {
	out := make([]string, 0, len(v.Env))
	for _, key := range v.Env {
		if key != "" {
			out = append(out, key)
		}
	}
	return out
}

// HasEnv reports whether at least one non-empty key is present.
func (v Values) HasEnv() bool {
	for _, key := range v.Env {
		if key != "" {
			return true
		}
	}
	return false
}

// Get returns the value stored for a single-valued field.
func (v Values) Get(name FieldName) string {
	switch name {
	case FieldRepository:
		return v.Repository
	case FieldEnvDescription:
		return v.EnvDescription
	case FieldEnvLink:
		return v.EnvLink
	case FieldRedirectURL:
		return v.RedirectURL
	case FieldDeveloperID:
		return v.DeveloperID
	case FieldProjectName:
		return v.ProjectName
	case FieldRepoName:
		return v.RepoName
	default:
		return ""
	}
}
