package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// TemplateRenderer is the seam the thumbnail renderer relies on. Engine is the
// pongo2-backed implementation; tests and callers may substitute their own.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}

// EngineOption configures an Engine before construction.
type EngineOption func(*engineConfig)

type engineConfig struct {
	templates fs.FS
	extension string
}

// WithFS loads templates from files instead of the embedded bundle.
func WithFS(files fs.FS) EngineOption {
	return func(cfg *engineConfig) {
		cfg.templates = files
	}
}

// WithExtension overrides the template extension appended to names passed to
// RenderTemplate.
func WithExtension(ext string) EngineOption {
	return func(cfg *engineConfig) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// Engine renders pongo2 templates from an fs.FS, caching parsed templates by
// path.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	ext       string
}

var _ TemplateRenderer = (*Engine)(nil)

// NewEngine constructs an Engine over the embedded templates unless WithFS
// supplies another bundle.
func NewEngine(options ...EngineOption) (*Engine, error) {
	cfg := &engineConfig{
		templates: TemplatesFS(),
		extension: ".tmpl",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("markup: template filesystem is required")
	}

	return &Engine{
		set:       pongo2.NewSet("fakeimage", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		ext:       cfg.extension,
	}, nil
}

// RenderTemplate executes the named template. The configured extension is
// appended when missing.
func (e *Engine) RenderTemplate(name string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("markup: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.ext) {
		path += e.ext
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}
	out, err := execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("markup: execute template %q: %w", path, err)
	}
	return out, nil
}

// RenderString parses and executes an inline template.
func (e *Engine) RenderString(content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("markup: engine is nil")
	}
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("markup: parse template string: %w", err)
	}
	out, err := execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("markup: execute template string: %w", err)
	}
	return out, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.templates[path]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("markup: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data map[string]any) (string, error) {
	ctx := make(pongo2.Context, len(data))
	for key, value := range data {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		ctx[key] = value
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
