package sizes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve_BuiltinReadsOptions(t *testing.T) {
	reg := &Static{Options: map[string]string{
		"thumbnail_size_w": "150",
		"thumbnail_size_h": "150",
	}}

	got := Resolve(Thumbnail, reg)
	if diff := cmp.Diff(Dimensions{Width: 150, Height: 150}, got); diff != "" {
		t.Fatalf("resolve thumbnail mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CustomSize(t *testing.T) {
	reg := &Static{Custom: map[string]Dimensions{
		"hero": {Width: 1600, Height: 600},
	}}

	got := Resolve("hero", reg)
	if got.Width != 1600 || got.Height != 600 {
		t.Fatalf("expected 1600x600, got %+v", got)
	}
}

func TestResolve_UnknownSizeIsUnset(t *testing.T) {
	cases := []struct {
		name string
		reg  Registry
	}{
		{name: "empty registry", reg: &Static{}},
		{name: "nil registry", reg: nil},
		{name: "defaults", reg: Defaults()},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve("hero", tc.reg)
			if got != (Dimensions{}) {
				t.Fatalf("expected unset dimensions, got %+v", got)
			}
			if got.WidthString() != "" || got.HeightString() != "" {
				t.Fatalf("unset dimensions should render empty, got %q/%q", got.WidthString(), got.HeightString())
			}
		})
	}
}

func TestResolve_InvalidOptionIsUnset(t *testing.T) {
	reg := &Static{Options: map[string]string{
		"medium_size_w": "wide",
		"medium_size_h": " 300 ",
	}}

	got := Resolve(Medium, reg)
	if got.Width != 0 {
		t.Fatalf("non-numeric width should be unset, got %d", got.Width)
	}
	if got.Height != 300 {
		t.Fatalf("expected trimmed height 300, got %d", got.Height)
	}
	if got.Complete() {
		t.Fatalf("partially set dimensions should not be complete")
	}
}

func TestResolveAll_IncludesBuiltinsAndCustom(t *testing.T) {
	reg := Defaults()
	reg.AddSize("hero", Dimensions{Width: 1600, Height: 600})
	reg.AddSize("card", Dimensions{Width: 400, Height: 250})

	got := ResolveAll(reg)
	want := map[Name]Dimensions{
		Thumbnail: {Width: 150, Height: 150},
		Medium:    {Width: 300, Height: 300},
		Large:     {Width: 1024, Height: 1024},
		"hero":    {Width: 1600, Height: 600},
		"card":    {Width: 400, Height: 250},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("resolve all mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAll_CustomOverridesBuiltin(t *testing.T) {
	reg := Defaults()
	reg.AddSize(Large, Dimensions{Width: 2048, Height: 1536})

	got := ResolveAll(reg)
	if got[Large] != (Dimensions{Width: 2048, Height: 1536}) {
		t.Fatalf("expected custom large to win, got %+v", got[Large])
	}
	if len(got) != 3 {
		t.Fatalf("expected no duplicate entries, got %d", len(got))
	}
}

func TestNames_BuiltinsFirstThenSorted(t *testing.T) {
	reg := Defaults()
	reg.AddSize("zeta", Dimensions{Width: 1, Height: 1})
	reg.AddSize("alpha", Dimensions{Width: 1, Height: 1})
	reg.AddSize(Medium, Dimensions{Width: 2, Height: 2})

	want := []Name{Thumbnail, Medium, Large, "alpha", "zeta"}
	if diff := cmp.Diff(want, Names(reg)); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Builtins, Names(nil)); diff != "" {
		t.Fatalf("nil registry names mismatch (-want +got):\n%s", diff)
	}
}

func TestStatic_CustomSizesReturnsCopy(t *testing.T) {
	reg := &Static{}
	reg.AddSize("hero", Dimensions{Width: 10, Height: 10})

	custom := reg.CustomSizes()
	custom["hero"] = Dimensions{Width: 99, Height: 99}

	if got := Resolve("hero", reg); got.Width != 10 {
		t.Fatalf("registry mutated through CustomSizes copy: %+v", got)
	}
}
