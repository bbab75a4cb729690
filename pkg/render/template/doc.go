// Package template defines the template seam used by the snippet and page
// renderers. Implementations live in subpackages; gotemplate wraps the
// go-template engine used by default.
package template
