package fakeimage

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

func TestRef(t *testing.T) {
	reg := sizes.Defaults()

	if got := Ref(reg, sizes.Thumbnail); got != "holder.js/150x150" {
		t.Fatalf("unexpected ref %q", got)
	}
	if got := Ref(reg, "hero", placeholder.WithBaseURL("cdn/holder.js")); got != "cdn/holder.js/x" {
		t.Fatalf("unexpected degraded ref %q", got)
	}
}

func TestEmbeddedTemplatesContainsThumbnail(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "templates/thumbnail.tmpl")
	if err != nil {
		t.Fatalf("expected thumbnail template to be readable: %v", err)
	}
	if !strings.Contains(string(data), "data-src") {
		t.Fatalf("expected thumbnail template to carry data-src")
	}
}

func TestNewAndParseSizes(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if p.Script().Path != "js/holder.js" {
		t.Fatalf("unexpected script %+v", p.Script())
	}

	reg, err := ParseSizes([]byte("options:\n  thumbnail_size_w: 64\n  thumbnail_size_h: 48\n"), "inline.yaml")
	if err != nil {
		t.Fatalf("parse sizes: %v", err)
	}
	if got := Ref(reg, sizes.Thumbnail); got != "holder.js/64x48" {
		t.Fatalf("unexpected ref %q", got)
	}
}
