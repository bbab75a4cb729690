package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var errInvalid = errors.New("deploy button configuration is invalid")

func newValidateCommand(a *app) *cobra.Command {
	inputs := inputFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check Deploy Button values or an existing deploy URL.",
		Example: `  deploybutton validate --url "https://vercel.com/import/git?s=https%3A%2F%2Fgithub.com%2Facme%2Fapp"
  deploybutton validate --preset button.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := inputs.build(a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result := f.Validate()
			if result.Valid {
				fmt.Fprintf(out, "%s %s\n", color.GreenString("valid"), f.DeployURL())
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Field", "Message"})
			table.SetAutoWrapText(false)
			for _, issue := range result.Issues {
				table.Append([]string{issue.Field, issue.Message})
			}
			table.Render()
			return errInvalid
		},
	}

	inputs.bind(cmd, true)
	return cmd
}
