// Package filler synthesises placeholder values for missing images. Each
// filler is a single pass-through-or-synthesise decision: a value the host
// already has is returned untouched, an empty one is replaced with markup, an
// ImageObject, a bare reference or a gallery of ImageObjects.
package filler
