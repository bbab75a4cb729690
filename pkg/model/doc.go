// Package model defines the typed form state shared by the controller,
// validators and renderers. Every user-editable input is a Field carrying the
// last accepted value, the raw input that produced it, and the validation
// message attached to that input. Environment variables are key-only rows
// with stable identifiers so front-ends can address a row across edits and
// removals. Values is the immutable snapshot consumed by URL derivation.
package model
