// Package tui walks a terminal user through the Deploy Button form one field
// at a time and prints the resulting snippet.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// Wizard drives prompts against a form controller. Every answer goes through
// the controller setters, so the terminal sees the same messages as the page.
type Wizard struct {
	driver PromptDriver
	format snippet.Format
	theme  Theme
}

// New constructs a wizard with defaults (survey driver, ask for the format).
func New(options ...Option) *Wizard {
	w := &Wizard{
		theme: Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.driver == nil {
		w.driver = NewSurveyDriver(nil)
	}
	return w
}

// Run prompts for every field in form order, starting from the form's
// current values, and returns the chosen snippet rendering.
func (w *Wizard) Run(ctx context.Context, f *form.Form) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if f == nil {
		return nil, ErrNoForm
	}

	for _, name := range model.FieldNames() {
		if err := w.promptField(ctx, f, name); err != nil {
			return nil, err
		}
		if name == model.FieldRepository {
			if err := w.promptEnv(ctx, f); err != nil {
				return nil, err
			}
		}
	}

	format, err := w.chooseFormat(ctx)
	if err != nil {
		return nil, err
	}
	set, err := f.Snippets()
	if err != nil {
		return nil, fmt.Errorf("tui: render snippets: %w", err)
	}
	return []byte(set.Get(format)), nil
}

func (w *Wizard) promptField(ctx context.Context, f *form.Form, name model.FieldName) error {
	current := f.Field(name)
	def := current.Input
	if def == "" {
		def = current.Value
	}
	for {
		answer, err := w.driver.Input(ctx, InputConfig{
			Message: name.Label(),
			Default: def,
			Help:    name.Placeholder(),
		})
		if err != nil {
			return err
		}
		msg, err := f.Set(name, answer)
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		if msg == "" {
			return nil
		}
		if err := w.reportError(ctx, msg); err != nil {
			return err
		}
		def = ""
	}
}

func (w *Wizard) promptEnv(ctx context.Context, f *form.Form) error {
	rows := f.Env()
	prefilled := len(rows) > 1 || rows[0].Value != ""

	add, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Require Environment Variables?",
		Default: prefilled,
	})
	if err != nil {
		return err
	}
	if !add {
		return f.SetEnv(nil)
	}

	for index := 0; ; index++ {
		if index >= len(f.Env()) {
			if _, err := f.AddEnv(); err != nil {
				if errors.Is(err, form.ErrTooManyEnvVars) {
					return w.reportError(ctx, validation.MsgEnvLimit)
				}
				return err
			}
		}
		if err := w.promptEnvKey(ctx, f, index); err != nil {
			return err
		}
		more, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another?",
			Default: index+1 < len(f.Env()),
		})
		if err != nil {
			return err
		}
		if !more {
			return w.trimEnv(f, index+1)
		}
	}
}

func (w *Wizard) promptEnvKey(ctx context.Context, f *form.Form, index int) error {
	def := f.Env()[index].Value
	for {
		answer, err := w.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Environment Variable Key #%d", index+1),
			Default: def,
		})
		if err != nil {
			return err
		}
		msg, err := f.UpdateEnv(index, answer)
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		if msg == "" {
			return nil
		}
		if err := w.reportError(ctx, msg); err != nil {
			return err
		}
		def = ""
	}
}

// trimEnv drops prefilled rows past keep.
func (w *Wizard) trimEnv(f *form.Form, keep int) error {
	for len(f.Env()) > keep {
		if err := f.RemoveEnv(len(f.Env()) - 1); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
	}
	return nil
}

func (w *Wizard) chooseFormat(ctx context.Context) (snippet.Format, error) {
	if w.format != "" {
		return snippet.ParseFormat(string(w.format))
	}
	formats := snippet.Formats()
	options := make([]string, len(formats))
	for i, format := range formats {
		options[i] = format.Title()
	}
	idx, err := w.driver.Select(ctx, SelectConfig{
		Message: "Snippet format",
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(formats) {
		return "", fmt.Errorf("tui: invalid format selection %d", idx)
	}
	return formats[idx], nil
}

func (w *Wizard) reportError(ctx context.Context, msg string) error {
	return w.driver.Info(ctx, w.theme.ErrorPrefix+msg)
}
