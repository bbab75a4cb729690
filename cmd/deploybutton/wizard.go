package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deploybutton/pkg/renderers/tui"
	"github.com/goliatone/go-deploybutton/pkg/snippet"
)

func newWizardCommand(a *app) *cobra.Command {
	inputs := inputFlags{}
	var format string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build a Deploy Button interactively.",
		Long: `Build a Deploy Button interactively.

Field flags, --preset and --from-git prefill the answers. Without --format
the wizard asks which snippet to print.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := inputs.build(a)
			if err != nil {
				return err
			}

			options := []tui.Option{
				tui.WithPromptDriver(a.newDriver(cmd.ErrOrStderr())),
			}
			if format != "" {
				parsed, err := snippet.ParseFormat(format)
				if err != nil {
					return errors.Wrap(err, "invalid --format")
				}
				options = append(options, tui.WithOutputFormat(parsed))
			}

			out, err := tui.New(options...).Run(cmd.Context(), f)
			if err != nil {
				return errors.Wrap(err, "running wizard")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return err
		},
	}

	inputs.bind(cmd, false)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Snippet to print: url, markdown or html.")
	return cmd
}
