package markup

import (
	"fmt"
	"sort"
	"strings"
)

// Attr is a single rendered attribute.
type Attr struct {
	Name  string
	Value string
}

// Option configures a ThumbnailRenderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	templates TemplateRenderer
	name      string
}

// WithTemplateRenderer injects a custom template renderer.
func WithTemplateRenderer(renderer TemplateRenderer) Option {
	return func(cfg *rendererConfig) {
		if renderer != nil {
			cfg.templates = renderer
		}
	}
}

// WithTemplateName renders a different template from the engine's bundle.
func WithTemplateName(name string) Option {
	return func(cfg *rendererConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// ThumbnailRenderer turns a placeholder reference into the <img> markup the
// client-side library picks up on page load.
type ThumbnailRenderer struct {
	templates TemplateRenderer
	name      string
}

// NewThumbnailRenderer constructs a renderer over the embedded templates
// unless a template renderer is injected.
func NewThumbnailRenderer(options ...Option) (*ThumbnailRenderer, error) {
	cfg := rendererConfig{name: ThumbnailTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templates == nil {
		engine, err := NewEngine()
		if err != nil {
			return nil, fmt.Errorf("markup: configure template renderer: %w", err)
		}
		cfg.templates = engine
	}

	return &ThumbnailRenderer{templates: cfg.templates, name: cfg.name}, nil
}

// Render produces sanitized <img data-src="{ref}" ...> markup. Attributes
// outside ImageAttributes are ignored; the rest render in name order.
func (r *ThumbnailRenderer) Render(ref string, attrs map[string]string) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("markup: template renderer is nil")
	}

	out, err := r.templates.RenderTemplate(r.name, map[string]any{
		"ref":   ref,
		"attrs": filterAttrs(attrs),
	})
	if err != nil {
		return "", fmt.Errorf("markup: render thumbnail: %w", err)
	}
	return Sanitize(out), nil
}

func filterAttrs(attrs map[string]string) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, 0, len(attrs))
	for name, value := range attrs {
		key := strings.ToLower(strings.TrimSpace(name))
		if !allowedAttribute(key) {
			continue
		}
		out = append(out, Attr{Name: key, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
