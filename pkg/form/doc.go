// Package form implements the Deploy Button form controller. A Form owns the
// field set exclusively: each edit runs the field's validator, accepts or
// rejects the new value, and re-evaluates the cross-field rules whose inputs
// changed. Derived values (deploy URL, snippets, validation summary) are
// computed from the current state on every call and never cached.
//
// A Form is not safe for concurrent use; give each session or request its
// own instance.
package form
