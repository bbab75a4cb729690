package deployurl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-deploybutton/pkg/model"
)

const (
	// DefaultEndpoint is the import endpoint the button links to.
	DefaultEndpoint = "https://vercel.com/import/git"
	// DefaultRepository is used as the source when no repository is set.
	DefaultRepository = "https://github.com/vercel/next.js/tree/canary/examples/hello-world"
	// DefaultButtonImage is the button artwork referenced by the snippets.
	DefaultButtonImage = "https://vercel.com/button"
)

// Query parameter names in emission order.
const (
	ParamSource         = "s"
	ParamEnv            = "env"
	ParamEnvDescription = "envDescription"
	ParamEnvLink        = "envLink"
	ParamProjectName    = "project-name"
	ParamRepoName       = "repo-name"
	ParamRedirectURL    = "redirect-url"
	ParamDeveloperID    = "developer-id"
)

// ErrNotDeployURL is returned by Parse when the input lacks a source parameter.
var ErrNotDeployURL = errors.New("deployurl: missing source parameter")

// Param is one query parameter with its already-encoded value.
type Param struct {
	Key   string
	Value string
}

// String renders the parameter as key=value.
func (p Param) String() string {
	return p.Key + "=" + p.Value
}

// Options tunes derivation.
type Options struct {
	Endpoint          string
	DefaultRepository string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Endpoint) == "" {
		o.Endpoint = DefaultEndpoint
	}
	if strings.TrimSpace(o.DefaultRepository) == "" {
		o.DefaultRepository = DefaultRepository
	}
	return o
}

// Parts returns the ordered query parameters derived from v.
func Parts(v model.Values, opts Options) []Param {
	opts = opts.withDefaults()

	source := v.Repository
	if source == "" {
		source = opts.DefaultRepository
	}

	params := []Param{{Key: ParamSource, Value: EncodeURIComponent(source)}}

	keys := v.EnvKeys()
	hasEnv := len(keys) > 0
	if hasEnv {
		params = append(params, Param{Key: ParamEnv, Value: strings.Join(keys, ",")})
	}
	if hasEnv && v.EnvDescription != "" {
		params = append(params, Param{Key: ParamEnvDescription, Value: EncodeURIComponent(v.EnvDescription)})
	}
	if hasEnv && v.EnvDescription != "" && v.EnvLink != "" {
		params = append(params, Param{Key: ParamEnvLink, Value: v.EnvLink})
	}
	if v.ProjectName != "" {
		params = append(params, Param{Key: ParamProjectName, Value: EncodeURIComponent(v.ProjectName)})
	}
	if v.RepoName != "" {
		params = append(params, Param{Key: ParamRepoName, Value: EncodeURIComponent(v.RepoName)})
	}
	if v.RedirectURL != "" {
		params = append(params, Param{Key: ParamRedirectURL, Value: EncodeURIComponent(v.RedirectURL)})
	}
	if v.DeveloperID != "" {
		params = append(params, Param{Key: ParamDeveloperID, Value: v.DeveloperID})
	}
	return params
}

// Build derives the complete deploy URL for v.
func Build(v model.Values, opts Options) string {
	opts = opts.withDefaults()
	return Join(opts.Endpoint, Parts(v, opts))
}

// Join assembles endpoint and params into a URL string.
func Join(endpoint string, params []Param) string {
	var b strings.Builder
	b.WriteString(endpoint)
	for i, param := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(param.String())
	}
	return b.String()
}

// encodedParams lists the parameters Parts writes through EncodeURIComponent.
// The rest are emitted verbatim and are read back verbatim.
var encodedParams = map[string]bool{
	ParamSource:         true,
	ParamEnvDescription: true,
	ParamProjectName:    true,
	ParamRepoName:       true,
	ParamRedirectURL:    true,
}

// Parse reads a deploy URL back into values. Parameters the generator never
// emits are ignored. Only component-encoded parameters are unescaped, so a
// literal "+" or "%" in envLink, developer-id or env survives the round trip.
func Parse(raw string) (model.Values, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return model.Values{}, fmt.Errorf("deployurl: parse %q: %w", raw, err)
	}

	query := make(map[string]string)
	for _, pair := range strings.Split(parsed.RawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if _, seen := query[key]; seen {
			continue
		}
		if encodedParams[key] {
			decoded, err := url.PathUnescape(value)
			if err != nil {
				return model.Values{}, fmt.Errorf("deployurl: parse %s: %w", key, err)
			}
			value = decoded
		}
		query[key] = value
	}
	source, ok := query[ParamSource]
	if !ok {
		return model.Values{}, ErrNotDeployURL
	}

	values := model.Values{
		Repository:     source,
		EnvDescription: query[ParamEnvDescription],
		EnvLink:        query[ParamEnvLink],
		ProjectName:    query[ParamProjectName],
		RepoName:       query[ParamRepoName],
		RedirectURL:    query[ParamRedirectURL],
		DeveloperID:    query[ParamDeveloperID],
	}
	if env := query[ParamEnv]; env != "" {
		for _, key := range strings.Split(env, ",") {
			if key = strings.TrimSpace(key); key != "" {
				values.Env = append(values.Env, key)
			}
		}
	}
	return values, nil
}
