package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestURL(t *testing.T) {
	valid := []string{
		"https://github.com/foo/bar",
		"http://example.com",
		"example.com",
		"https://x.com",
		"https://github.com/vercel/next.js/tree/canary/examples/hello-world",
		"http://127.0.0.1:8080/path?q=1&b=2#frag",
		"HTTPS://GITLAB.COM/Group/Repo",
		"https://myheadlessproject.com/docs/env-vars",
	}
	for _, input := range valid {
		if !URL(input) {
			t.Errorf("expected %q to be a valid URL", input)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"ftp://example.com",
		"https://localhost",
		"https://exa mple.com",
		"https://example.c",
		"https://-bad.com",
		"https://github.com/\u017f",
		"https://\u212a.com",
		"\u017fTTPS://github.com",
	}
	for _, input := range invalid {
		if URL(input) {
			t.Errorf("expected %q to be rejected", input)
		}
	}
}

func TestRepository(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", ""},
		{"https://github.com/foo/bar", ""},
		{"https://gitlab.com/group/project", ""},
		{"https://bitbucket.com/team/repo", ""},
		{"github.com/foo/bar", ""},
		{"not a url", MsgRepositoryURL},
		{"https://example.com/foo/bar", MsgRepositoryHost},
		{"https://bitbucket.org/team/repo", MsgRepositoryHost},
		{"https://gitea.company.com/repo", MsgRepositoryHost},
	}
	for _, tc := range cases {
		if got := Repository(tc.input); got != tc.want {
			t.Errorf("Repository(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRepositoryHostCheckIsSubstringMatch(t *testing.T) {
	// The host restriction only looks for the substring anywhere in the input.
	if got := Repository("https://example.com/github.com"); got != "" {
		t.Fatalf("expected substring match to pass, got %q", got)
	}
}

func TestEnvKey(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", ""},
		{"API_KEY", ""},
		{"a1_b2", ""},
		{"1API", MsgEnvKeyFormat},
		{"_API", MsgEnvKeyFormat},
		{"API-KEY", MsgEnvKeyFormat},
		{"API KEY", MsgEnvKeyFormat},
		{"ÄPI", MsgEnvKeyFormat},
		{strings.Repeat("A", 256), ""},
		{strings.Repeat("A", 257), MsgEnvKeyLength},
	}
	for _, tc := range cases {
		if got := EnvKey(tc.input); got != tc.want {
			t.Errorf("EnvKey(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEnvDescription(t *testing.T) {
	long := strings.Repeat("d", 257)
	if got := EnvDescription(long, true); got != MsgEnvDescriptionLength {
		t.Fatalf("expected length error, got %q", got)
	}
	if got := EnvDescription(long, false); got != "" {
		t.Fatalf("expected no length error without env, got %q", got)
	}
	if got := EnvDescription(strings.Repeat("d", 256), true); got != "" {
		t.Fatalf("expected 256 characters to pass, got %q", got)
	}
}

func TestEnvLink(t *testing.T) {
	if got := EnvLink("nope", true, "desc"); got != MsgEnvLinkURL {
		t.Fatalf("expected url error, got %q", got)
	}
	if got := EnvLink("nope", false, "desc"); got != "" {
		t.Fatalf("expected no url check without env, got %q", got)
	}
	if got := EnvLink("nope", true, ""); got != "" {
		t.Fatalf("expected no url check without description, got %q", got)
	}
	if got := EnvLink("https://x.com", true, "desc"); got != "" {
		t.Fatalf("expected valid link, got %q", got)
	}
}

func TestProjectName(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"my-awesome-project":     "",
		"a":                      "",
		"abc123":                 "",
		"My_Project":             MsgProjectNameFormat,
		"-lead":                  MsgProjectNameFormat,
		"trail-":                 MsgProjectNameFormat,
		"double--hyphen":         MsgProjectNameFormat,
		strings.Repeat("a", 100): "",
		strings.Repeat("a", 101): MsgProjectNameLength,
	}
	for input, want := range cases {
		if got := ProjectName(input); got != want {
			t.Errorf("ProjectName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRepoName(t *testing.T) {
	cases := map[string]string{
		"":                       "",
		"My_Repo.v2-final":       "",
		"has space":              MsgRepoNameFormat,
		"slash/name":             MsgRepoNameFormat,
		strings.Repeat("r", 101): MsgRepoNameLength,
	}
	for input, want := range cases {
		if got := RepoName(input); got != want {
			t.Errorf("RepoName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRedirectURL(t *testing.T) {
	if got := RedirectURL("https://myheadlessproject.com"); got != "" {
		t.Fatalf("expected valid redirect, got %q", got)
	}
	if got := RedirectURL("::"); got != MsgRedirectURL {
		t.Fatalf("expected redirect error, got %q", got)
	}
}

func TestDependencies(t *testing.T) {
	if got := EnvLinkDependency(false, "", "https://x.com"); got != MsgEnvLinkNeedsEnv {
		t.Fatalf("link without env: got %q", got)
	}
	if got := EnvLinkDependency(true, "", "https://x.com"); got != MsgEnvLinkNeedsDesc {
		t.Fatalf("link without description: got %q", got)
	}
	if got := EnvLinkDependency(true, "desc", "https://x.com"); got != "" {
		t.Fatalf("complete link: got %q", got)
	}
	if got := EnvDescriptionDependency(false, "desc"); got != MsgEnvDescriptionNeedsEnv {
		t.Fatalf("description without env: got %q", got)
	}
	if got := EnvDescriptionDependency(true, "desc"); got != "" {
		t.Fatalf("description with env: got %q", got)
	}
	if got := DeveloperIDDependency("", "oac_1"); got != MsgDeveloperIDNeedsURL {
		t.Fatalf("developer id without redirect: got %q", got)
	}
	if got := DeveloperIDDependency("https://x.com", "oac_1"); got != "" {
		t.Fatalf("developer id with redirect: got %q", got)
	}
}

func TestNewResultDropsBlankAndDuplicateIssues(t *testing.T) {
	result := NewResult(
		Issue{Field: "repository", Message: MsgRepositoryURL},
		Issue{Field: "env.0", Message: "  "},
		Issue{Field: "repository", Message: MsgRepositoryURL + " "},
		Issue{Field: "project-name", Message: MsgProjectNameFormat},
	)
	want := Result{
		Valid: false,
		Issues: []Issue{
			{Field: "repository", Message: MsgRepositoryURL},
			{Field: "project-name", Message: MsgProjectNameFormat},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if got := result.For("project-name"); len(got) != 1 {
		t.Fatalf("expected one project-name issue, got %v", got)
	}
	if empty := NewResult(); !empty.Valid || empty.Issues != nil {
		t.Fatalf("expected empty result to be valid, got %#v", empty)
	}
}
