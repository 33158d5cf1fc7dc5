package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-fakeimage/pkg/hooks"
	"github.com/goliatone/go-fakeimage/pkg/plugin"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

// Option configures a Memory host.
type Option func(*Memory)

// WithAdmin marks the host as rendering an administrative screen.
func WithAdmin(admin bool) Option {
	return func(m *Memory) {
		m.admin = admin
	}
}

// WithCustomFields toggles custom field support.
func WithCustomFields(enabled bool) Option {
	return func(m *Memory) {
		m.customFields = enabled
	}
}

// WithHooks shares an existing hook registry.
func WithHooks(registry *hooks.Registry) Option {
	return func(m *Memory) {
		if registry != nil {
			m.hooks = registry
		}
	}
}

// Memory is an in-process host backed by a static size registry. It records
// enqueued scripts instead of emitting them.
type Memory struct {
	*sizes.Static

	hooks        *hooks.Registry
	admin        bool
	customFields bool

	mu      sync.Mutex
	scripts []plugin.Script
}

var _ plugin.Host = (*Memory)(nil)

// NewMemory creates a host over static. A nil static registry starts from
// sizes.Defaults(). Custom fields are enabled by default.
func NewMemory(static *sizes.Static, options ...Option) *Memory {
	if static == nil {
		static = sizes.Defaults()
	}
	m := &Memory{
		Static:       static,
		hooks:        hooks.NewRegistry(),
		customFields: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

// Hooks returns the host's hook registry.
func (m *Memory) Hooks() *hooks.Registry {
	return m.hooks
}

// IsAdmin reports whether the host is in an administrative context.
func (m *Memory) IsAdmin() bool {
	return m.admin
}

// CustomFieldsEnabled reports whether custom field filters should be added.
func (m *Memory) CustomFieldsEnabled() bool {
	return m.customFields
}

// EnqueueScript records script. Enqueuing the same handle twice keeps the
// first registration.
func (m *Memory) EnqueueScript(script plugin.Script) error {
	if script.Handle == "" {
		return fmt.Errorf("host: script handle is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.scripts {
		if existing.Handle == script.Handle {
			return nil
		}
	}
	m.scripts = append(m.scripts, script)
	return nil
}

// Scripts returns the scripts enqueued so far.
func (m *Memory) Scripts() []plugin.Script {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]plugin.Script(nil), m.scripts...)
}

// RenderThumbnail runs the post thumbnail filters for contentID.
func (m *Memory) RenderThumbnail(ctx context.Context, contentID int, html string, size sizes.Name, attrs map[string]string) (string, error) {
	value, err := m.hooks.ApplyFilters(ctx, hooks.PostThumbnailHTML, html, hooks.Call{
		ContentID: contentID,
		Args:      map[string]any{plugin.ArgSize: size, plugin.ArgAttrs: attrs},
	})
	if err != nil {
		return html, err
	}
	out, _ := value.(string)
	return out, nil
}

// FormatImageField runs the custom image field filters.
func (m *Memory) FormatImageField(ctx context.Context, contentID int, value any, saveFormat string) (any, error) {
	return m.hooks.ApplyFilters(ctx, hooks.ImageFieldValue, value, hooks.Call{
		ContentID: contentID,
		Args:      map[string]any{plugin.ArgSaveFormat: saveFormat},
	})
}

// FormatGalleryField runs the custom gallery field filters.
func (m *Memory) FormatGalleryField(ctx context.Context, contentID int, value any) (any, error) {
	return m.hooks.ApplyFilters(ctx, hooks.GalleryFieldValue, value, hooks.Call{ContentID: contentID})
}

// EnqueueScripts fires the script enqueue action.
func (m *Memory) EnqueueScripts(ctx context.Context) error {
	return m.hooks.DoAction(ctx, hooks.EnqueueScripts)
}
