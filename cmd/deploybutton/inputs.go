package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-deploybutton/internal/gitremote"
	"github.com/goliatone/go-deploybutton/pkg/deployurl"
	"github.com/goliatone/go-deploybutton/pkg/form"
	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/preset"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// inputFlags are the field flags shared by generate, validate and wizard.
type inputFlags struct {
	values     model.Values
	presetPath string
	fromGit    bool
	remote     string
	deployURL  string
}

func (in *inputFlags) bind(cmd *cobra.Command, withURL bool) {
	flags := cmd.Flags()
	flags.StringVar(&in.values.Repository, "repository", "", "Git repository URL to clone.")
	flags.StringArrayVar(&in.values.Env, "env", nil, "Required environment variable key (repeatable).")
	flags.StringVar(&in.values.EnvDescription, "env-description", "", "Description shown next to the environment variables.")
	flags.StringVar(&in.values.EnvLink, "env-link", "", "Link to documentation for the environment variables.")
	flags.StringVar(&in.values.ProjectName, "project-name", "", "Default project name.")
	flags.StringVar(&in.values.RepoName, "repo-name", "", "Default git repository name.")
	flags.StringVar(&in.values.RedirectURL, "redirect-url", "", "URL to redirect to after deployment.")
	flags.StringVar(&in.values.DeveloperID, "developer-id", "", "Integration developer ID.")
	flags.StringVar(&in.presetPath, "preset", "", "YAML preset file with field values.")
	flags.BoolVar(&in.fromGit, "from-git", false, "Use the current git repository's remote as the repository.")
	flags.StringVar(&in.remote, "remote", gitremote.DefaultRemote, "Git remote consulted by --from-git.")
	if withURL {
		flags.StringVar(&in.deployURL, "url", "", "Existing deploy URL to read values from.")
	}
}

// build layers the inputs into a new form: deploy URL, preset file, git
// remote, then explicit flags. Later layers win.
func (in *inputFlags) build(a *app) (*form.Form, error) {
	f := form.New(
		form.WithEndpoint(a.config.Generator.Endpoint),
		form.WithDefaultRepository(a.config.Generator.DefaultRepository),
		form.WithButtonImage(a.config.Generator.ButtonImage),
	)

	if in.deployURL != "" {
		values, err := deployurl.Parse(in.deployURL)
		if err != nil {
			return nil, errors.Wrap(err, "reading --url")
		}
		if _, err := preset.Apply(f, values); err != nil {
			return nil, err
		}
	}

	if in.presetPath != "" {
		p, err := preset.Load(in.presetPath)
		if err != nil {
			return nil, errors.Wrap(err, "loading preset")
		}
		if _, err := preset.Apply(f, p.Values()); err != nil {
			return nil, err
		}
		a.logger.Debug("applied preset", "path", in.presetPath, "name", p.Name)
	}

	if in.fromGit {
		dir, err := a.gitDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolving working directory")
		}
		repository, err := gitremote.RepositoryURL(dir, in.remote)
		if err != nil {
			return nil, errors.Wrap(err, "inferring repository from git")
		}
		f.SetRepository(repository)
		a.logger.Debug("inferred repository", "remote", in.remote, "repository", repository)
	}

	if _, err := preset.Apply(f, in.values); err != nil {
		return nil, err
	}
	return f, nil
}

var (
	issueField   = color.New(color.FgYellow, color.Bold).SprintFunc()
	issueMessage = color.New(color.FgRed).SprintFunc()
)

// printIssues writes one colored line per issue.
func printIssues(w io.Writer, result validation.Result) {
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "%s: %s\n", issueField(issue.Field), issueMessage(issue.Message))
	}
}
