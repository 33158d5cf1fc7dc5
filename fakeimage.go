package fakeimage

import (
	"io/fs"

	"github.com/goliatone/go-fakeimage/pkg/filler"
	"github.com/goliatone/go-fakeimage/pkg/markup"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/plugin"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// Plugin aliases plugin.Plugin for callers wiring the fillers into a host.
type Plugin = plugin.Plugin

// Host aliases the capability interface hosts implement.
type Host = plugin.Host

// ImageObject is the structured value synthesised for empty image fields.
type ImageObject = filler.ImageObject

// SizeRegistry aliases the host-owned size lookup.
type SizeRegistry = sizes.Registry

// New constructs the plugin from the top-level module.
func New(options ...plugin.Option) (*Plugin, error) {
	return plugin.New(options...)
}

// Ref resolves size against reg and returns its placeholder reference. It is
// the simplest entry point for callers that only need a URL string.
func Ref(reg SizeRegistry, size sizes.Name, options ...placeholder.Option) string {
	return placeholder.New(options...).BuildSize(size, reg)
}

// EmbeddedTemplates exposes the built-in markup templates so callers can
// reuse or override them without importing the markup package directly.
func EmbeddedTemplates() fs.FS {
	return markup.TemplatesFS()
}
