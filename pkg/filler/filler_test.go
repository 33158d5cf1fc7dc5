package filler

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
	"github.com/goliatone/go-fakeimage/pkg/testsupport"
)

func TestFillers_PassThroughNonEmpty(t *testing.T) {
	reg := testsupport.Registry()
	ctx := testsupport.Context()

	thumb, err := NewThumbnail()
	if err != nil {
		t.Fatalf("new thumbnail: %v", err)
	}
	existingHTML := `<img src="/uploads/real.jpg">`
	got, err := thumb.Fill(ctx, reg, existingHTML, sizes.Thumbnail, nil)
	if err != nil {
		t.Fatalf("fill thumbnail: %v", err)
	}
	if got != existingHTML {
		t.Fatalf("thumbnail overwrote existing markup: %q", got)
	}

	image := NewImage()
	gallery := NewGallery()
	existing := []any{
		42,
		"https://example.com/real.jpg",
		map[string]any{"id": 7},
		[]ImageObject{{ID: 9}},
		true,
	}
	for _, value := range existing {
		for _, format := range []SaveFormat{FormatObject, FormatURL, FormatID} {
			if diff := cmp.Diff(value, image.Fill(reg, value, format)); diff != "" {
				t.Fatalf("image %s overwrote %v (-want +got):\n%s", format, value, diff)
			}
		}
		if diff := cmp.Diff(value, gallery.Fill(reg, value)); diff != "" {
			t.Fatalf("gallery overwrote %v (-want +got):\n%s", value, diff)
		}
	}
}

func TestThumbnail_FillEmpty(t *testing.T) {
	thumb, err := NewThumbnail()
	if err != nil {
		t.Fatalf("new thumbnail: %v", err)
	}

	got, err := thumb.Fill(testsupport.Context(), testsupport.Registry(), "", "hero", map[string]string{"class": "cover"})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if !strings.Contains(got, `data-src="holder.js/1600x600"`) {
		t.Fatalf("expected hero ref in markup, got %q", got)
	}
	if !strings.Contains(got, `class="cover"`) {
		t.Fatalf("expected class attribute, got %q", got)
	}
}

func TestThumbnail_UnknownSizeDegrades(t *testing.T) {
	thumb, err := NewThumbnail(WithBuilder(placeholder.New(placeholder.WithBaseURL("base"))))
	if err != nil {
		t.Fatalf("new thumbnail: %v", err)
	}

	got, err := thumb.Fill(testsupport.Context(), &sizes.Static{}, "", "missing", nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if got != `<img data-src="base/x">` {
		t.Fatalf("unexpected degraded markup %q", got)
	}
}

func TestThumbnail_CancelledContext(t *testing.T) {
	thumb, err := NewThumbnail()
	if err != nil {
		t.Fatalf("new thumbnail: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := thumb.Fill(ctx, testsupport.Registry(), "", sizes.Medium, nil)
	if err == nil {
		t.Fatalf("expected context error")
	}
	if got != "" {
		t.Fatalf("expected the empty input back on error, got %q", got)
	}
}

func TestImage_FillObject(t *testing.T) {
	got := NewImage().Fill(testsupport.Registry(), nil, FormatObject)
	obj, ok := got.(ImageObject)
	if !ok {
		t.Fatalf("expected ImageObject, got %T", got)
	}
	testsupport.AssertGoldenJSON(t, "testdata/image_object.golden.json", obj)
}

func TestImage_FillURLAndID(t *testing.T) {
	reg := testsupport.Registry()
	for _, format := range []SaveFormat{FormatURL, FormatID} {
		for _, registry := range []sizes.Registry{reg, &sizes.Static{}, nil} {
			got := NewImage().Fill(registry, "", format)
			if got != "holder.js/1280x800" {
				t.Fatalf("format %s: expected fixed fallback, got %v", format, got)
			}
		}
	}
}

func TestImage_UnknownFormatLeavesEmptyValue(t *testing.T) {
	got := NewImage().Fill(testsupport.Registry(), "", SaveFormat("array"))
	if got != "" {
		t.Fatalf("unknown format should not synthesise, got %v", got)
	}
}

func TestGallery_FillEmpty(t *testing.T) {
	reg := testsupport.Registry()

	got, ok := NewGallery().Fill(reg, []any{}).([]ImageObject)
	if !ok {
		t.Fatalf("expected []ImageObject")
	}
	if len(got) != DefaultGalleryCount {
		t.Fatalf("expected %d images, got %d", DefaultGalleryCount, len(got))
	}

	want := NewImageObject(placeholder.New(), reg)
	for idx, obj := range got {
		if diff := cmp.Diff(want, obj); diff != "" {
			t.Fatalf("image %d differs (-want +got):\n%s", idx, diff)
		}
	}

	got[0].Sizes["hero"] = "mutated"
	if got[1].Sizes["hero"] != "holder.js/1600x600" {
		t.Fatalf("gallery entries share their sizes map")
	}
}

func TestGallery_Count(t *testing.T) {
	cases := []struct {
		name  string
		count int
		want  int
	}{
		{name: "custom", count: 3, want: 3},
		{name: "zero keeps default", count: 0, want: DefaultGalleryCount},
		{name: "negative keeps default", count: -2, want: DefaultGalleryCount},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gallery := NewGallery(WithGalleryCount(tc.count))
			got := gallery.Fill(testsupport.Registry(), nil).([]ImageObject)
			if len(got) != tc.want || gallery.Count() != tc.want {
				t.Fatalf("want %d images, got %d", tc.want, len(got))
			}
		})
	}
}

func TestFillers_LogSynthesis(t *testing.T) {
	logger, buf := testsupport.Logger()
	NewImage(WithLogger(logger)).Fill(testsupport.Registry(), nil, FormatURL)

	if !strings.Contains(buf.String(), "placeholder image") || !strings.Contains(buf.String(), "format=url") {
		t.Fatalf("expected debug trace, got %q", buf.String())
	}
}

func TestParseSaveFormat(t *testing.T) {
	for _, raw := range []string{"object", "url", "id"} {
		if got, ok := ParseSaveFormat(raw); !ok || string(got) != raw {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseSaveFormat("array"); ok {
		t.Fatalf("unexpected parse of array")
	}
}
