package filler

import (
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// FakeLabel fills the title, caption and description of synthesised images.
const FakeLabel = "a Fake Image"

// ImageObject mirrors the structured value a custom image field yields when it
// is configured to return full objects.
type ImageObject struct {
	ID          int                            `json:"id"`
	Title       string                         `json:"title"`
	Caption     string                         `json:"caption"`
	Description string                         `json:"description"`
	URL         placeholder.Ref                `json:"url"`
	Sizes       map[sizes.Name]placeholder.Ref `json:"sizes"`
}

// SaveFormat is the shape a custom image field materialises its value in.
type SaveFormat string

const (
	FormatObject SaveFormat = "object"
	FormatURL    SaveFormat = "url"
	FormatID     SaveFormat = "id"
)

// ParseSaveFormat normalises a format name. Unknown names return false.
func ParseSaveFormat(raw string) (SaveFormat, bool) {
	switch SaveFormat(raw) {
	case FormatObject, FormatURL, FormatID:
		return SaveFormat(raw), true
	}
	return "", false
}

// NewImageObject builds a placeholder image object: the URL uses the large
// size and Sizes carries a reference for every registered size.
func NewImageObject(builder *placeholder.Builder, reg sizes.Registry) ImageObject {
	return ImageObject{
		ID:          0,
		Title:       FakeLabel,
		Caption:     FakeLabel,
		Description: FakeLabel,
		URL:         builder.BuildSize(sizes.Large, reg),
		Sizes:       builder.BuildAll(reg),
	}
}

// Clone returns a copy that does not share the Sizes map.
func (o ImageObject) Clone() ImageObject {
	out := o
	if o.Sizes != nil {
		out.Sizes = make(map[sizes.Name]placeholder.Ref, len(o.Sizes))
		for name, ref := range o.Sizes {
			out.Sizes[name] = ref
		}
	}
	return out
}
