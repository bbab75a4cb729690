package validation

import "strings"

// Issue represents a validation message attached to a form input. Field is
// the input's error key ("repository", "env.2", ...).
type Issue struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Result summarises the validation state of a whole form.
type Result struct {
	Valid  bool    `json:"valid" yaml:"valid"`
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// NewResult builds a Result from issues, dropping blank messages and exact
// duplicates while preserving order.
func NewResult(issues ...Issue) Result {
	out := make([]Issue, 0, len(issues))
	seen := make(map[Issue]struct{}, len(issues))
	for _, issue := range issues {
		issue.Field = strings.TrimSpace(issue.Field)
		issue.Message = strings.TrimSpace(issue.Message)
		if issue.Message == "" {
			continue
		}
		if _, exists := seen[issue]; exists {
			continue
		}
		seen[issue] = struct{}{}
		out = append(out, issue)
	}
	if len(out) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Issues: out}
}

// For returns the messages attached to a field key.
func (r Result) For(field string) []string {
	var out []string
	for _, issue := range r.Issues {
		if issue.Field == field {
			out = append(out, issue.Message)
		}
	}
	return out
}
