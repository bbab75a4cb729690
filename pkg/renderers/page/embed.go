package page

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page templates so callers can start from
// the built-in layout when supplying their own bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
