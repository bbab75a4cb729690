package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a free text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// PromptDriver is the terminal seam of the wizard. Tests script it; the CLI
// uses NewSurveyDriver.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns the survey-backed driver. Prompts and Info lines go
// to out (stderr when nil) so stdout stays free for the generated snippet.
// Prompts can only be redirected when out is a terminal file; other writers
// receive Info lines only.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stderr
	}
	d := &surveyDriver{out: out}
	if file, ok := out.(*os.File); ok {
		d.opts = append(d.opts, survey.WithStdio(os.Stdin, file, file))
	}
	return d
}

func (d *surveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, d.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var answer string
	err := d.ask(ctx, &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &answer)
	return answer, err
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &answer)
	return answer, err
}

// Select returns the chosen index, or -1 when the answer matches no option.
func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{
		Message:  cfg.Message,
		Options:  cfg.Options,
		Help:     cfg.Help,
		PageSize: cfg.PageSize,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	var answer string
	if err := d.ask(ctx, prompt, &answer); err != nil {
		return 0, err
	}
	for i, option := range cfg.Options {
		if option == answer {
			return i, nil
		}
	}
	return -1, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
