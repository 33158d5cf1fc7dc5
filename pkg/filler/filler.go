package filler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-fakeimage/pkg/markup"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// DefaultGalleryCount is how many placeholder images an empty gallery gets.
const DefaultGalleryCount = 6

// Option configures the fillers.
type Option func(*config)

type config struct {
	builder  *placeholder.Builder
	renderer *markup.ThumbnailRenderer
	logger   *slog.Logger
	count    int
}

// WithBuilder sets the reference builder. Defaults to placeholder.New().
func WithBuilder(builder *placeholder.Builder) Option {
	return func(cfg *config) {
		if builder != nil {
			cfg.builder = builder
		}
	}
}

// WithRenderer sets the thumbnail markup renderer.
func WithRenderer(renderer *markup.ThumbnailRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// WithLogger sets the logger used for debug traces of synthesised values.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithGalleryCount sets the number of images in a synthesised gallery.
// Values below one keep the default.
func WithGalleryCount(count int) Option {
	return func(cfg *config) {
		if count > 0 {
			cfg.count = count
		}
	}
}

func newConfig(options []Option) *config {
	cfg := &config{count: DefaultGalleryCount}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.builder == nil {
		cfg.builder = placeholder.New()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// Thumbnail replaces empty post thumbnail markup.
type Thumbnail struct {
	builder  *placeholder.Builder
	renderer *markup.ThumbnailRenderer
	logger   *slog.Logger
}

// NewThumbnail constructs the thumbnail filler. It fails only when the
// embedded markup templates cannot be loaded.
func NewThumbnail(options ...Option) (*Thumbnail, error) {
	cfg := newConfig(options)
	renderer := cfg.renderer
	if renderer == nil {
		var err error
		renderer, err = markup.NewThumbnailRenderer()
		if err != nil {
			return nil, fmt.Errorf("filler: thumbnail renderer: %w", err)
		}
	}
	return &Thumbnail{builder: cfg.builder, renderer: renderer, logger: cfg.logger}, nil
}

// Fill returns existing unchanged when the host already rendered a
// thumbnail. Otherwise it resolves size against reg and returns placeholder
// <img> markup whose data-src is the size's reference.
func (t *Thumbnail) Fill(ctx context.Context, reg sizes.Registry, existing string, size sizes.Name, attrs map[string]string) (string, error) {
	if existing != "" {
		return existing, nil
	}
	if err := ctx.Err(); err != nil {
		return existing, err
	}

	ref := t.builder.BuildSize(size, reg)
	html, err := t.renderer.Render(ref, attrs)
	if err != nil {
		return existing, fmt.Errorf("filler: thumbnail %q: %w", size, err)
	}
	t.logger.Debug("placeholder thumbnail", "size", size, "ref", ref)
	return html, nil
}

// Image replaces empty custom image field values.
type Image struct {
	builder *placeholder.Builder
	logger  *slog.Logger
}

// NewImage constructs the single image filler.
func NewImage(options ...Option) *Image {
	cfg := newConfig(options)
	return &Image{builder: cfg.builder, logger: cfg.logger}
}

// Fill returns existing unchanged unless IsEmpty reports it missing. Empty
// object fields get a full ImageObject; url and id fields get the fixed
// 1280x800 reference since the intended size is unknown for those formats.
// Unknown formats leave the value untouched.
func (i *Image) Fill(reg sizes.Registry, existing any, format SaveFormat) any {
	if !IsEmpty(existing) {
		return existing
	}

	switch format {
	case FormatObject:
		obj := NewImageObject(i.builder, reg)
		i.logger.Debug("placeholder image", "format", format, "ref", obj.URL)
		return obj
	case FormatURL, FormatID:
		ref := i.builder.Fallback()
		i.logger.Debug("placeholder image", "format", format, "ref", ref)
		return ref
	}
	return existing
}

// Gallery replaces empty custom gallery field values.
type Gallery struct {
	builder *placeholder.Builder
	logger  *slog.Logger
	count   int
}

// NewGallery constructs the gallery filler.
func NewGallery(options ...Option) *Gallery {
	cfg := newConfig(options)
	return &Gallery{builder: cfg.builder, logger: cfg.logger, count: cfg.count}
}

// Count returns the number of images a synthesised gallery holds.
func (g *Gallery) Count() int {
	return g.count
}

// Fill returns existing unchanged unless it is empty, in which case it
// returns Count identical placeholder image objects.
func (g *Gallery) Fill(reg sizes.Registry, existing any) any {
	if !IsEmpty(existing) {
		return existing
	}

	image := NewImageObject(g.builder, reg)
	out := make([]ImageObject, g.count)
	for idx := range out {
		out[idx] = image.Clone()
	}
	g.logger.Debug("placeholder gallery", "count", g.count, "ref", image.URL)
	return out
}
