// Package hooks is an explicit filter/action registry. Hosts create a
// Registry, plugins register typed callbacks against named hooks, and the host
// threads values through ApplyFilters or fires DoAction at the matching point
// of its render pipeline.
package hooks
