package markup

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// ThumbnailTemplate is the template rendered for a missing post thumbnail.
const ThumbnailTemplate = "templates/thumbnail"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
