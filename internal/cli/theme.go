package cli

import (
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fakeimage/pkg/placeholder"
)

type themeFile struct {
	Themes map[string]themeEntry `yaml:"themes"`
}

type themeEntry struct {
	Version  string                       `yaml:"version"`
	Tokens   map[string]string            `yaml:"tokens"`
	Variants map[string]map[string]string `yaml:"variants"`
}

// loadThemeSelector reads a YAML document of named themes:
//
//	themes:
//	  slate:
//	    tokens: {bg: "#223344", fg: "#ffffff"}
//	    variants:
//	      light: {bg: "#eeeeee"}
func loadThemeSelector(path string) (*placeholder.StaticSelector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	var doc themeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	if len(doc.Themes) == 0 {
		return nil, fmt.Errorf("theme file %s defines no themes", path)
	}

	selector := &placeholder.StaticSelector{Manifests: make(map[string]*theme.Manifest, len(doc.Themes))}
	for name, entry := range doc.Themes {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("theme file %s defines an unnamed theme", path)
		}
		manifest := &theme.Manifest{
			Name:    name,
			Version: entry.Version,
			Tokens:  entry.Tokens,
		}
		if len(entry.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(entry.Variants))
			for variant, tokens := range entry.Variants {
				manifest.Variants[variant] = theme.Variant{Tokens: tokens}
			}
		}
		selector.Manifests[name] = manifest
	}
	return selector, nil
}
