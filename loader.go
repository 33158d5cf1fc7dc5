package fakeimage

import (
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// LoadSizes reads a YAML or JSON size registry document from disk.
func LoadSizes(path string) (*sizes.Static, error) {
	return sizes.LoadFile(path)
}

// ParseSizes decodes a size registry document held in memory. source is only
// used in error messages.
func ParseSizes(data []byte, source string) (*sizes.Static, error) {
	return sizes.Parse(data, source)
}
