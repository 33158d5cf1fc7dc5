package placeholder

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

const (
	// DefaultBaseURL is the client-side library identifier prefixed to every
	// reference.
	DefaultBaseURL = "holder.js"

	// FallbackWidth and FallbackHeight size the reference used when a caller
	// cannot say which size it wants (bare URL or ID field formats).
	FallbackWidth  = 1280
	FallbackHeight = 800
)

// Ref is a placeholder reference such as "holder.js/300x200". The client-side
// library expands it into an inline graphic.
type Ref = string

// Option configures a Builder.
type Option func(*config)

type config struct {
	baseURL  string
	theme    themeRequest
	logger   *slog.Logger
	hasTheme bool
}

// WithBaseURL overrides the reference prefix. Trailing slashes are dropped;
// blank values keep the default.
func WithBaseURL(base string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimRight(strings.TrimSpace(base), "/")
		if trimmed == "" {
			return
		}
		cfg.baseURL = trimmed
	}
}

// WithLogger sets the logger used for theme resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Builder formats placeholder references. It holds no per-call state and is
// safe for concurrent use.
type Builder struct {
	baseURL string
	query   string
}

// New constructs a Builder applying the provided options.
func New(options ...Option) *Builder {
	cfg := &config{
		baseURL: DefaultBaseURL,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	b := &Builder{baseURL: cfg.baseURL}
	if cfg.hasTheme {
		b.query = resolveThemeQuery(cfg.theme, cfg.logger)
	}
	return b
}

// BaseURL returns the configured reference prefix.
func (b *Builder) BaseURL() string {
	return b.baseURL
}

// Query returns the holder.js option query appended to every reference, or an
// empty string when no theme is active.
func (b *Builder) Query() string {
	return b.query
}

// BuildRef formats "{base}/{width}x{height}". Values are not validated; zero
// or negative sides render as empty segments.
func (b *Builder) BuildRef(width, height int) Ref {
	return b.BuildDimensions(sizes.Dimensions{Width: width, Height: height})
}

// BuildDimensions formats a reference for already resolved dimensions.
func (b *Builder) BuildDimensions(dims sizes.Dimensions) Ref {
	var sb strings.Builder
	sb.Grow(len(b.baseURL) + len(b.query) + 12)
	sb.WriteString(b.baseURL)
	sb.WriteByte('/')
	sb.WriteString(dims.WidthString())
	sb.WriteByte('x')
	sb.WriteString(dims.HeightString())
	if b.query != "" {
		sb.WriteByte('?')
		sb.WriteString(b.query)
	}
	return sb.String()
}

// BuildSize resolves name against reg and formats the reference.
func (b *Builder) BuildSize(name sizes.Name, reg sizes.Registry) Ref {
	return b.BuildDimensions(sizes.Resolve(name, reg))
}

// BuildAll formats a reference for every size the registry knows about.
func (b *Builder) BuildAll(reg sizes.Registry) map[sizes.Name]Ref {
	all := sizes.ResolveAll(reg)
	out := make(map[sizes.Name]Ref, len(all))
	for name, dims := range all {
		out[name] = b.BuildDimensions(dims)
	}
	return out
}

// Fallback returns the fixed 1280x800 reference.
func (b *Builder) Fallback() Ref {
	return b.BuildRef(FallbackWidth, FallbackHeight)
}

// ScriptPath returns the plugin-relative path of the client-side library,
// e.g. "js/holder.js".
func (b *Builder) ScriptPath() string {
	base := b.baseURL
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	return "js/" + base
}

func encodeQuery(tokens map[string]string) string {
	if len(tokens) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range tokens {
		values.Set(key, value)
	}
	return values.Encode()
}
