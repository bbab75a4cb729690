package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	urlPattern = regexp.MustCompile(`^([hH][tT][tT][pP][sS]?://)?` + // protocol
		`((([a-zA-Z\d]([a-zA-Z\d-]*[a-zA-Z\d])*)\.)+[a-zA-Z]{2,}|` + // domain name
		`((\d{1,3}\.){3}\d{1,3}))` + // or ipv4
		`(:\d+)?(/[-a-zA-Z\d%_.~+]*)*` + // port and path
		`(\?[;&a-zA-Z\d%_.~+=-]*)?` + // query
		`(#[-a-zA-Z\d_]*)?$`) // fragment

	envKeyPattern      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	projectNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9]|-[a-z0-9])*$`)
	repoNamePattern    = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// GitHosts are the substrings a repository URL must contain.
var GitHosts = []string{"github.com", "bitbucket.com", "gitlab.com"}

// URL reports whether s looks like a web address. The check is deliberately
// loose: scheme optional, domain or IPv4 host, optional port, path, query and
// fragment.
func URL(s string) bool {
	return urlPattern.MatchString(s)
}

// Repository validates the source repository input.
func Repository(s string) string {
	if s == "" {
		return ""
	}
	if !URL(s) {
		return MsgRepositoryURL
	}
	for _, host := range GitHosts {
		if strings.Contains(s, host) {
			return ""
		}
	}
	return MsgRepositoryHost
}

// EnvKey validates one environment variable key.
func EnvKey(s string) string {
	if utf8.RuneCountInString(s) > MaxEnvKeyLength {
		return MsgEnvKeyLength
	}
	if s != "" && !envKeyPattern.MatchString(s) {
		return MsgEnvKeyFormat
	}
	return ""
}

// EnvDescription validates the description input. The length cap only
// applies once the form has at least one key.
func EnvDescription(s string, hasEnv bool) string {
	if hasEnv && utf8.RuneCountInString(s) > MaxDescriptionChars {
		return MsgEnvDescriptionLength
	}
	return ""
}

// EnvLink validates the documentation link input. The URL check only applies
// when the link would actually be emitted.
func EnvLink(s string, hasEnv bool, description string) string {
	if hasEnv && description != "" && s != "" && !URL(s) {
		return MsgEnvLinkURL
	}
	return ""
}

// ProjectName validates the default project name.
func ProjectName(s string) string {
	if utf8.RuneCountInString(s) > MaxNameLength {
		return MsgProjectNameLength
	}
	if s != "" && !projectNamePattern.MatchString(s) {
		return MsgProjectNameFormat
	}
	return ""
}

// RepoName validates the default git repository name.
func RepoName(s string) string {
	if utf8.RuneCountInString(s) > MaxNameLength {
		return MsgRepoNameLength
	}
	if s != "" && !repoNamePattern.MatchString(s) {
		return MsgRepoNameFormat
	}
	return ""
}

// RedirectURL validates the post-deploy redirect target.
func RedirectURL(s string) string {
	if s != "" && !URL(s) {
		return MsgRedirectURL
	}
	return ""
}
