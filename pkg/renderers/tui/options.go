package tui

import "github.com/goliatone/go-deploybutton/pkg/snippet"

// Theme captures optional formatting hints applied to printed messages.
type Theme struct {
	ErrorPrefix string
}

// Option configures the wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the prompt driver used by the wizard.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithOutputFormat fixes the snippet format instead of asking for one.
func WithOutputFormat(format snippet.Format) Option {
	return func(w *Wizard) {
		w.format = format
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}
