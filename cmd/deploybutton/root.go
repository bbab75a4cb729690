package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deploybutton/internal/config"
	"github.com/goliatone/go-deploybutton/pkg/renderers/tui"
)

// app carries state shared by the commands once the root pre-run has loaded
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	config *config.Config
	logger *slog.Logger

	openURL   func(string) error
	newDriver func(io.Writer) tui.PromptDriver
	gitDir    func() (string, error)
}

func newApp() *app {
	return &app{
		openURL:   browser.OpenURL,
		newDriver: tui.NewSurveyDriver,
		gitDir:    os.Getwd,
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "deploybutton",
		Short:         "Generate Vercel Deploy Button URLs and snippets.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file.")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error.")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json.")

	root.AddCommand(newGenerateCommand(a))
	root.AddCommand(newValidateCommand(a))
	root.AddCommand(newWizardCommand(a))
	root.AddCommand(newServeCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	a.config = cfg
	a.logger = config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	return nil
}
