package sizes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a size registry file has no content.
var ErrEmptyDocument = errors.New("sizes: document is empty")

// LoadFile reads a JSON or YAML size registry from disk.
func LoadFile(path string) (*Static, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("sizes: path is required")
	}
	return LoadFS(os.DirFS(filepath.Dir(trimmed)), filepath.Base(trimmed))
}

// LoadFS reads a size registry document from fsys. The document may be JSON
// or YAML:
//
//	options:
//	  thumbnail_size_w: "150"
//	  thumbnail_size_h: "150"
//	sizes:
//	  hero: {width: 1600, height: 600}
func LoadFS(fsys fs.FS, path string) (*Static, error) {
	if fsys == nil {
		return nil, errors.New("sizes: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("sizes: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a registry document. source is only used in error messages.
func Parse(data []byte, source string) (*Static, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("sizes: parse %s: invalid JSON or YAML", source)
		}
	}

	return normaliseDocument(doc, source)
}

type documentFile struct {
	Options map[string]any        `json:"options" yaml:"options"`
	Sizes   map[string]Dimensions `json:"sizes" yaml:"sizes"`
}

func normaliseDocument(doc documentFile, source string) (*Static, error) {
	out := &Static{}

	if len(doc.Options) > 0 {
		out.Options = make(map[string]string, len(doc.Options))
		for key, value := range doc.Options {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return nil, fmt.Errorf("sizes: file %s defines an empty option key", source)
			}
			out.Options[trimmed] = optionString(value)
		}
	}

	for name, dims := range doc.Sizes {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, fmt.Errorf("sizes: file %s defines an empty size name", source)
		}
		if dims.Width < 0 || dims.Height < 0 {
			return nil, fmt.Errorf("sizes: file %s size %q has negative dimensions", source, trimmed)
		}
		out.AddSize(trimmed, dims)
	}

	return out, nil
}

// optionString flattens scalar option values; both `150` and `"150"` are
// accepted in the document.
func optionString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}
