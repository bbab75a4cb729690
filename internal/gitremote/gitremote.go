// Package gitremote infers the repository URL of a working copy from its git
// remotes.
package gitremote

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
)

// DefaultRemote is the remote consulted when none is named.
const DefaultRemote = "origin"

var (
	ErrNotRepository = errors.New("gitremote: not inside a git repository")
	ErrNoRemote      = errors.New("gitremote: remote not found")
	ErrUnknownRemote = errors.New("gitremote: unrecognised remote url")
)

var remoteParsers = []*regexp.Regexp{
	regexp.MustCompile(`^(?:ssh://)?[^@/\s]+@([^:/\s]+)(?::\d+)?[:/](.+)$`),
	regexp.MustCompile(`^(?:https?|git)://(?:[^@/\s]+@)?([^:/\s]+)(?::\d+)?/(.+)$`),
}

// RepositoryURL opens the repository containing dir (walking up to the
// .git directory) and returns the https form of the named remote.
func RepositoryURL(dir, remote string) (string, error) {
	if remote == "" {
		remote = DefaultRemote
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}
		return "", fmt.Errorf("gitremote: open %s: %w", dir, err)
	}

	r, err := repo.Remote(remote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNoRemote, remote)
		}
		return "", fmt.Errorf("gitremote: read remote %s: %w", remote, err)
	}

	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no url", ErrNoRemote, remote)
	}
	return Normalize(urls[0])
}

// Normalize converts SSH, git and credentialed https remotes into a plain
// https URL without the .git suffix:
//
//	git@github.com:org/repo.git -> https://github.com/org/repo
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	for _, parser := range remoteParsers {
		matches := parser.FindStringSubmatch(trimmed)
		if matches == nil {
			continue
		}
		host := strings.ToLower(matches[1])
		path := strings.TrimSuffix(strings.Trim(matches[2], "/"), ".git")
		if path == "" {
			break
		}
		return "https://" + host + "/" + path, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownRemote, raw)
}
