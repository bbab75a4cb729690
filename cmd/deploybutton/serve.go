package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deploybutton/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator page and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.config.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.config.Server.Port = port
			}

			srv, err := server.New(cmd.Context(), a.config, a.logger)
			if err != nil {
				return errors.Wrap(err, "creating server")
			}
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (overrides server.host).")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides server.port).")
	return cmd
}
