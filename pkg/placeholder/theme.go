package placeholder

import (
	"fmt"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeTokens lists the go-theme token names forwarded to holder.js as
// reference options. Other tokens in a manifest are ignored.
var ThemeTokens = []string{"bg", "fg", "text", "font", "size", "theme"}

type themeRequest struct {
	selector theme.ThemeSelector
	name     string
	variant  string
}

// WithTheme resolves a go-theme selection once, at construction, and appends
// its holder.js tokens (bg, fg, text, ...) to every reference. Variant tokens
// override manifest tokens. A nil selector disables theming.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		if selector == nil {
			cfg.hasTheme = false
			return
		}
		cfg.hasTheme = true
		cfg.theme = themeRequest{
			selector: selector,
			name:     strings.TrimSpace(name),
			variant:  strings.TrimSpace(variant),
		}
	}
}

func resolveThemeQuery(req themeRequest, logger *slog.Logger) string {
	selection, err := req.selector.Select(req.name, req.variant)
	if err != nil {
		logger.Warn("placeholder theme unavailable, using defaults",
			"theme", req.name,
			"variant", req.variant,
			"error", err,
		)
		return ""
	}
	tokens := SelectionTokens(selection)
	logger.Debug("placeholder theme resolved",
		"theme", req.name,
		"variant", req.variant,
		"tokens", len(tokens),
	)
	return encodeQuery(tokens)
}

// SelectionTokens merges manifest and variant tokens from a selection and
// keeps the ones holder.js understands. Colour values lose a leading '#'.
func SelectionTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	merged := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		merged[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			merged[key] = value
		}
	}

	out := make(map[string]string)
	for _, key := range ThemeTokens {
		value := strings.TrimSpace(merged[key])
		if value == "" {
			continue
		}
		if key == "bg" || key == "fg" {
			value = strings.TrimPrefix(value, "#")
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// StaticSelector serves a fixed set of manifests by name. It satisfies
// theme.ThemeSelector for callers that load themes from a file rather than a
// full go-theme provider.
type StaticSelector struct {
	Manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*StaticSelector)(nil)

// Select returns the named manifest. An empty variant keeps the manifest's
// base tokens.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil || len(s.Manifests) == 0 {
		return nil, ErrThemeNotFound{Name: name}
	}
	manifest, ok := s.Manifests[name]
	if !ok || manifest == nil {
		return nil, ErrThemeNotFound{Name: name}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// ErrThemeNotFound reports an unknown theme name.
type ErrThemeNotFound struct {
	Name string
}

func (e ErrThemeNotFound) Error() string {
	return fmt.Sprintf("placeholder: theme %q not found", e.Name)
}
