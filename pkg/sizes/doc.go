// Package sizes resolves named image sizes to pixel dimensions. The host owns
// the registry: built-in sizes (thumbnail, medium, large) are stored as
// "{name}_size_w"/"{name}_size_h" options while theme-defined sizes live in a
// separate custom table. Lookups are read-only and never fail; a size the host
// does not know about resolves to unset dimensions.
package sizes
