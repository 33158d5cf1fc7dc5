// Package markup renders placeholder markup. Templates are pongo2 files
// embedded under templates/ and every rendered fragment passes through a
// bluemonday policy that only admits <img> elements.
package markup
