package sizes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"sizes.yaml": {Data: []byte(`
options:
  thumbnail_size_w: "150"
  thumbnail_size_h: 150
sizes:
  hero:
    width: 1600
    height: 600
`)},
	}

	reg, err := LoadFS(fsys, "sizes.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := Resolve(Thumbnail, reg); got != (Dimensions{Width: 150, Height: 150}) {
		t.Fatalf("thumbnail mismatch: %+v", got)
	}
	if got := Resolve("hero", reg); got != (Dimensions{Width: 1600, Height: 600}) {
		t.Fatalf("hero mismatch: %+v", got)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"sizes.json": {Data: []byte(`{
  "options": {"large_size_w": 1024, "large_size_h": "768"},
  "sizes": {"card": {"width": 400, "height": 250}}
}`)},
	}

	reg, err := LoadFS(fsys, "sizes.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &Static{
		Options: map[string]string{"large_size_w": "1024", "large_size_h": "768"},
		Custom:  map[string]Dimensions{"card": {Width: 400, Height: 250}},
	}
	if diff := cmp.Diff(want, reg); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "  \n", want: "empty"},
		{name: "garbage", content: "{: [", want: "invalid JSON or YAML"},
		{name: "blank size name", content: "sizes:\n  \" \": {width: 1, height: 1}\n", want: "empty size name"},
		{name: "negative", content: "sizes:\n  hero: {width: -1, height: 1}\n", want: "negative dimensions"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			fsys := fstest.MapFS{"doc.yaml": {Data: []byte(tc.content)}}
			_, err := LoadFS(fsys, "doc.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFS_EmptyDocumentSentinel(t *testing.T) {
	fsys := fstest.MapFS{"doc.yaml": {Data: []byte("")}}
	_, err := LoadFS(fsys, "doc.yaml")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sizes.yaml")
	if err := os.WriteFile(path, []byte("sizes:\n  banner: {width: 728, height: 90}\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	reg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if got := Resolve("banner", reg); got != (Dimensions{Width: 728, Height: 90}) {
		t.Fatalf("banner mismatch: %+v", got)
	}

	if _, err := LoadFile(" "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}
