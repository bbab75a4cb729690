package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// ErrorMapping splits issues into per-input messages and form-level messages.
// Field keys are canonical: single-valued fields by name, env rows as
// "env.<index>", the env list as "env".
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// For returns the messages attached to key.
func (m ErrorMapping) For(key string) []string {
	if m.Fields == nil {
		return nil
	}
	return m.Fields[key]
}

// MergeFormErrors concatenates and normalises form-level messages, trimming
// whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapIssues maps validation issues onto canonical field keys. Keys may use
// dotted, slash or bracket notation ("env[2]", "/env/2", "#/repository").
// Unknown keys become form-level messages so nothing is lost.
func MapIssues(issues []validation.Issue) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	for _, issue := range issues {
		key, ok := canonicalKey(issue.Field)
		if !ok {
			mapping.Form = append(mapping.Form, issue.Message)
			continue
		}
		mapping.Fields[key] = append(mapping.Fields[key], issue.Message)
	}
	for key, messages := range mapping.Fields {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			delete(mapping.Fields, key)
			continue
		}
		mapping.Fields[key] = normalized
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func canonicalKey(raw string) (string, bool) {
	segments := parsePathSegments(raw)
	switch len(segments) {
	case 1:
		name := model.FieldName(segments[0])
		if name.Valid() || name == model.FieldEnv {
			return string(name), true
		}
	case 2:
		if segments[0] != string(model.FieldEnv) {
			return "", false
		}
		if idx, err := strconv.Atoi(segments[1]); err == nil && idx >= 0 {
			return string(model.FieldEnv) + "." + strconv.Itoa(idx), true
		}
	}
	return "", false
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if segment := strings.TrimSpace(part); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
