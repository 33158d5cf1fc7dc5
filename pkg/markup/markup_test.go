package markup

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestThumbnailRenderer_RendersDataSrc(t *testing.T) {
	renderer, err := NewThumbnailRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("holder.js/150x150", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<img data-src="holder.js/150x150">` {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestThumbnailRenderer_FiltersAndOrdersAttributes(t *testing.T) {
	renderer, err := NewThumbnailRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("holder.js/300x200", map[string]string{
		"onerror": "alert(1)",
		"Class":   "wp-post-image",
		"alt":     "Cover",
		"style":   "display:none",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(got, "onerror") || strings.Contains(got, "style") {
		t.Fatalf("disallowed attributes leaked: %q", got)
	}
	alt := strings.Index(got, `alt="Cover"`)
	class := strings.Index(got, `class="wp-post-image"`)
	if alt < 0 || class < 0 || alt > class {
		t.Fatalf("expected sorted alt then class attributes, got %q", got)
	}
	if !strings.HasPrefix(got, `<img data-src="holder.js/300x200"`) {
		t.Fatalf("expected data-src first, got %q", got)
	}
}

func TestThumbnailRenderer_EscapesAttributeValues(t *testing.T) {
	renderer, err := NewThumbnailRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("holder.js/1x1", map[string]string{
		"alt": `"><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("script injected through attribute: %q", got)
	}
}

func TestThumbnailRenderer_CustomTemplates(t *testing.T) {
	engine, err := NewEngine(WithFS(fstest.MapFS{
		"templates/lazy.tmpl": {Data: []byte(`<img class="lazy" data-src="{{ ref }}">`)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	renderer, err := NewThumbnailRenderer(
		WithTemplateRenderer(engine),
		WithTemplateName("templates/lazy"),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render("holder.js/2x2", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<img class="lazy" data-src="holder.js/2x2">` {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestThumbnailRenderer_PropagatesTemplateErrors(t *testing.T) {
	renderer, err := NewThumbnailRenderer(WithTemplateRenderer(failingRenderer{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render("holder.js/1x1", nil); !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped template error, got %v", err)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.RenderString("{{ w }}x{{ h }}", map[string]any{"w": 4, "h": 3})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "4x3" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "  ", want: ""},
		{name: "strips script", input: `<img data-src="holder.js/1x1"><script>alert(1)</script>`, want: `<img data-src="holder.js/1x1">`},
		{name: "strips handler", input: `<img data-src="holder.js/1x1" onload="x()">`, want: `<img data-src="holder.js/1x1">`},
		{name: "drops wrappers", input: `<div><img data-src="holder.js/1x1"></div>`, want: `<img data-src="holder.js/1x1">`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tc.input); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

var errBoom = errors.New("boom")

type failingRenderer struct{}

func (failingRenderer) RenderTemplate(string, map[string]any) (string, error) {
	return "", errBoom
}

func (failingRenderer) RenderString(string, map[string]any) (string, error) {
	return "", errBoom
}
