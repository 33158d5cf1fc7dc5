package plugin

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-fakeimage/pkg/filler"
	"github.com/goliatone/go-fakeimage/pkg/hooks"
	"github.com/goliatone/go-fakeimage/pkg/placeholder"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

const (
	// ScriptHandle identifies the client-side placeholder script.
	ScriptHandle = "holder"
	// ThumbnailPriority is the priority of the post thumbnail filter.
	ThumbnailPriority = 10
	// FieldPriority is the priority of the custom field filters. It runs after
	// the host's own formatting at the default priority.
	FieldPriority = 11
)

// Call argument keys read by the registered filters.
const (
	ArgSize       = "size"
	ArgAttrs      = "attrs"
	ArgSaveFormat = "save_format"
)

// Script describes a client-side script the host should load.
type Script struct {
	Handle string
	Path   string
}

// Host is the capability set the plugin needs from the content platform.
type Host interface {
	sizes.Registry
	Hooks() *hooks.Registry
	IsAdmin() bool
	CustomFieldsEnabled() bool
	EnqueueScript(script Script) error
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithBaseURL sets the placeholder base URL. Defaults to holder.js.
func WithBaseURL(base string) Option {
	return func(p *Plugin) {
		p.builderOptions = append(p.builderOptions, placeholder.WithBaseURL(base))
	}
}

// WithGalleryCount sets how many images an empty gallery receives.
func WithGalleryCount(count int) Option {
	return func(p *Plugin) {
		p.fillerOptions = append(p.fillerOptions, filler.WithGalleryCount(count))
	}
}

// WithTheme appends the holder.js colour query of the selected theme to
// every generated reference.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(p *Plugin) {
		p.builderOptions = append(p.builderOptions, placeholder.WithTheme(selector, name, variant))
	}
}

// WithLogger sets the logger shared with the builder and fillers.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithScriptPath overrides the script path derived from the base URL.
func WithScriptPath(path string) Option {
	return func(p *Plugin) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			p.scriptPath = trimmed
		}
	}
}

// Plugin wires the placeholder fillers into a host's hook registry.
type Plugin struct {
	builderOptions []placeholder.Option
	fillerOptions  []filler.Option
	scriptPath     string
	logger         *slog.Logger

	builder   *placeholder.Builder
	thumbnail *filler.Thumbnail
	image     *filler.Image
	gallery   *filler.Gallery
}

// New constructs a plugin. It fails only when the embedded markup templates
// cannot be loaded.
func New(options ...Option) (*Plugin, error) {
	p := &Plugin{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p.builder = placeholder.New(append(p.builderOptions, placeholder.WithLogger(p.logger))...)
	if p.scriptPath == "" {
		p.scriptPath = p.builder.ScriptPath()
	}

	shared := append([]filler.Option{
		filler.WithBuilder(p.builder),
		filler.WithLogger(p.logger),
	}, p.fillerOptions...)

	thumbnail, err := filler.NewThumbnail(shared...)
	if err != nil {
		return nil, fmt.Errorf("plugin: %w", err)
	}
	p.thumbnail = thumbnail
	p.image = filler.NewImage(shared...)
	p.gallery = filler.NewGallery(shared...)
	return p, nil
}

// Builder exposes the reference builder the fillers share.
func (p *Plugin) Builder() *placeholder.Builder {
	return p.builder
}

// Script returns the client-side script the plugin asks hosts to load.
func (p *Plugin) Script() Script {
	return Script{Handle: ScriptHandle, Path: p.scriptPath}
}

// Register adds the enqueue action and the thumbnail filter to the host's
// registry. The custom field filters are only added when the host reports
// custom fields support.
func (p *Plugin) Register(host Host) error {
	if host == nil {
		return fmt.Errorf("plugin: host is required")
	}
	registry := host.Hooks()
	if registry == nil {
		return fmt.Errorf("plugin: host returned no hook registry")
	}

	if err := registry.AddAction(hooks.EnqueueScripts, hooks.DefaultPriority, p.enqueueAction(host)); err != nil {
		return fmt.Errorf("plugin: register %s: %w", hooks.EnqueueScripts, err)
	}
	if err := registry.AddFilter(hooks.PostThumbnailHTML, ThumbnailPriority, p.ThumbnailFilter(host)); err != nil {
		return fmt.Errorf("plugin: register %s: %w", hooks.PostThumbnailHTML, err)
	}

	if !host.CustomFieldsEnabled() {
		p.logger.Debug("custom fields disabled, skipping field filters")
		return nil
	}
	if err := registry.AddFilter(hooks.ImageFieldValue, FieldPriority, p.ImageFilter(host)); err != nil {
		return fmt.Errorf("plugin: register %s: %w", hooks.ImageFieldValue, err)
	}
	if err := registry.AddFilter(hooks.GalleryFieldValue, FieldPriority, p.GalleryFilter(host)); err != nil {
		return fmt.Errorf("plugin: register %s: %w", hooks.GalleryFieldValue, err)
	}
	return nil
}

func (p *Plugin) enqueueAction(host Host) hooks.Action {
	return func(ctx context.Context) error {
		if host.IsAdmin() {
			return nil
		}
		script := p.Script()
		if err := host.EnqueueScript(script); err != nil {
			return fmt.Errorf("plugin: enqueue %s: %w", script.Handle, err)
		}
		p.logger.Debug("enqueued placeholder script", "handle", script.Handle, "path", script.Path)
		return nil
	}
}

// ThumbnailFilter adapts the thumbnail filler to the post thumbnail hook.
// Non-string values other than nil are returned untouched.
func (p *Plugin) ThumbnailFilter(reg sizes.Registry) hooks.Filter {
	return hooks.FilterFunc(func(ctx context.Context, value any, call hooks.Call) (any, error) {
		var existing string
		switch v := value.(type) {
		case nil:
		case string:
			existing = v
		default:
			return value, nil
		}
		return p.thumbnail.Fill(ctx, reg, existing, call.String(ArgSize), attrsArg(call))
	})
}

// ImageFilter adapts the image filler to the custom image field hook. A
// missing save_format argument is treated as object.
func (p *Plugin) ImageFilter(reg sizes.Registry) hooks.Filter {
	return hooks.FilterFunc(func(_ context.Context, value any, call hooks.Call) (any, error) {
		format := filler.FormatObject
		if raw := call.String(ArgSaveFormat); raw != "" {
			format = filler.SaveFormat(raw)
		}
		return p.image.Fill(reg, value, format), nil
	})
}

// GalleryFilter adapts the gallery filler to the custom gallery field hook.
func (p *Plugin) GalleryFilter(reg sizes.Registry) hooks.Filter {
	return hooks.FilterFunc(func(_ context.Context, value any, _ hooks.Call) (any, error) {
		return p.gallery.Fill(reg, value), nil
	})
}

func attrsArg(call hooks.Call) map[string]string {
	switch raw := call.Args[ArgAttrs].(type) {
	case map[string]string:
		return raw
	case map[string]any:
		out := make(map[string]string, len(raw))
		for key, value := range raw {
			if s, ok := value.(string); ok {
				out[key] = s
			} else if value != nil {
				out[key] = fmt.Sprint(value)
			}
		}
		return out
	}
	return nil
}
