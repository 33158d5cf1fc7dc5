package sizes

import (
	"sort"
	"strconv"
	"strings"
)

// Name identifies an image size registered with the host ("thumbnail",
// "medium", a theme-defined "hero", ...).
type Name = string

// Built-in size names. Their dimensions live in host options rather than in
// the custom size table.
const (
	Thumbnail Name = "thumbnail"
	Medium    Name = "medium"
	Large     Name = "large"
)

// Builtins lists the host's default sizes in resolution order.
var Builtins = []Name{Thumbnail, Medium, Large}

// Dimensions holds a width/height pair in pixels. Zero means the host had no
// value for that side.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// WidthString renders the width, or an empty string when unset.
func (d Dimensions) WidthString() string {
	return pixels(d.Width)
}

// HeightString renders the height, or an empty string when unset.
func (d Dimensions) HeightString() string {
	return pixels(d.Height)
}

// Complete reports whether both sides are set.
func (d Dimensions) Complete() bool {
	return d.Width > 0 && d.Height > 0
}

func pixels(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// Registry is the host-owned view of configured sizes. Implementations are
// only ever read here.
type Registry interface {
	// Option returns a host configuration value such as "medium_size_w".
	Option(key string) (string, bool)
	// CustomSizes returns the sizes added on top of the built-ins, keyed by
	// name.
	CustomSizes() map[string]Dimensions
}

// IsBuiltin reports whether name is one of the host's default sizes.
func IsBuiltin(name Name) bool {
	for _, builtin := range Builtins {
		if builtin == name {
			return true
		}
	}
	return false
}

// Resolve returns the dimensions registered for name. Built-ins are read from
// the "{name}_size_w" and "{name}_size_h" options; anything else comes from the
// custom table. Unknown names resolve to unset dimensions.
func Resolve(name Name, reg Registry) Dimensions {
	if reg == nil {
		return Dimensions{}
	}
	if IsBuiltin(name) {
		return Dimensions{
			Width:  optionPixels(reg, name+"_size_w"),
			Height: optionPixels(reg, name+"_size_h"),
		}
	}
	custom := reg.CustomSizes()
	if custom == nil {
		return Dimensions{}
	}
	return custom[name]
}

// ResolveAll returns every built-in size plus every custom size. A custom
// entry sharing a built-in name replaces it.
func ResolveAll(reg Registry) map[Name]Dimensions {
	out := make(map[Name]Dimensions, len(Builtins))
	for _, name := range Builtins {
		out[name] = Resolve(name, reg)
	}
	if reg == nil {
		return out
	}
	for name, dims := range reg.CustomSizes() {
		out[name] = dims
	}
	return out
}

// Names lists the sizes ResolveAll would return: built-ins first in their
// fixed order, then custom names sorted.
func Names(reg Registry) []Name {
	names := append([]Name(nil), Builtins...)
	if reg == nil {
		return names
	}
	custom := make([]Name, 0)
	for name := range reg.CustomSizes() {
		if IsBuiltin(name) {
			continue
		}
		custom = append(custom, name)
	}
	sort.Strings(custom)
	return append(names, custom...)
}

func optionPixels(reg Registry, key string) int {
	raw, ok := reg.Option(key)
	if !ok {
		return 0
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
