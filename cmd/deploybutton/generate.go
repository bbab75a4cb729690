package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	deploybutton "github.com/goliatone/go-deploybutton"
	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/render"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

const formatPreset = "preset"

type generateOptions struct {
	inputs inputFlags
	format string
	name   string
	open   bool
}

func newGenerateCommand(a *app) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a Deploy Button URL or snippet for the given values.",
		Long: `Print a Deploy Button URL or snippet for the given values.

Values are layered: --preset first, then --from-git, then the field flags.
Validation messages are written to stderr; the output is always produced
from the values that were accepted.`,
		Example: `  deploybutton generate --repository https://github.com/acme/app --env API_KEY
  deploybutton generate --from-git --format markdown
  deploybutton generate --preset button.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd, a, opts)
		},
	}

	opts.inputs.bind(cmd, false)
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(snippet.FormatURL),
		"Output format: url, markdown, html, json, yaml, page or preset.")
	cmd.Flags().StringVar(&opts.name, "name", "", "Preset name recorded by --format preset.")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Open the deploy URL in a browser.")
	return cmd
}

func generate(cmd *cobra.Command, a *app, opts generateOptions) error {
	f, err := opts.inputs.build(a)
	if err != nil {
		return err
	}

	if result := f.Validate(); !result.Valid {
		printIssues(cmd.ErrOrStderr(), result)
	}

	format := strings.ToLower(strings.TrimSpace(opts.format))
	var out []byte
	if format == formatPreset {
		p := preset.FromValues(f.Values())
		p.Name = opts.name
		if out, err = p.Marshal(); err != nil {
			return errors.Wrap(err, "encoding preset")
		}
	} else {
		registry, err := newOutputRegistry()
		if err != nil {
			return err
		}
		if !registry.Has(format) {
			return errors.Errorf("unknown format %q (expected one of %s, %s)",
				opts.format, strings.Join(registry.List(), ", "), formatPreset)
		}
		result, err := render.FromForm(f)
		if err != nil {
			return errors.Wrap(err, "building result")
		}
		if out, _, err = registry.Render(cmd.Context(), format, result, render.RenderOptions{}); err != nil {
			return errors.Wrapf(err, "rendering %s", format)
		}
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n")); err != nil {
		return err
	}

	if opts.open {
		url := f.DeployURL()
		a.logger.Debug("opening deploy URL", "url", url)
		if err := a.openURL(url); err != nil {
			return errors.Wrap(err, "opening browser")
		}
	}
	return nil
}

// newOutputRegistry registers the renderers the CLI can print.
func newOutputRegistry() (*render.Registry, error) {
	registry, err := deploybutton.NewRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "registering renderers")
	}
	return registry, nil
}
