// Package placeholder formats the references a client-side placeholder library
// (holder.js by default) expands into inline graphics. References have the form
// "{base}/{width}x{height}", optionally followed by holder.js options derived
// from a go-theme selection ("?bg=223344&fg=ffffff").
package placeholder
