package form

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-deploybutton/pkg/deployurl"
)

// Option configures a Form.
type Option func(*Form)

// WithEndpoint overrides the import endpoint used for URL derivation.
func WithEndpoint(endpoint string) Option {
	return func(f *Form) {
		if endpoint != "" {
			f.urlOptions.Endpoint = endpoint
		}
	}
}

// WithDefaultRepository overrides the source used when no repository is set.
func WithDefaultRepository(repository string) Option {
	return func(f *Form) {
		if repository != "" {
			f.urlOptions.DefaultRepository = repository
		}
	}
}

// WithButtonImage overrides the button artwork URL used by the snippets.
func WithButtonImage(image string) Option {
	return func(f *Form) {
		if image != "" {
			f.buttonImage = image
		}
	}
}

// WithIDGenerator replaces the env row id generator.
func WithIDGenerator(fn func() string) Option {
	return func(f *Form) {
		if fn != nil {
			f.newID = fn
		}
	}
}

func defaultIDGenerator() string {
	return uuid.NewString()
}

func defaultURLOptions() deployurl.Options {
	return deployurl.Options{
		Endpoint:          deployurl.DefaultEndpoint,
		DefaultRepository: deployurl.DefaultRepository,
	}
}
