package hooks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Hook names the fake image plugin registers against.
const (
	PostThumbnailHTML = "post_thumbnail_html"
	ImageFieldValue   = "fields/format_value/type=image"
	GalleryFieldValue = "fields/format_value/type=gallery"
	EnqueueScripts    = "enqueue_scripts"
)

// DefaultPriority is the priority hosts conventionally use for filters that
// do not care about ordering.
const DefaultPriority = 10

var (
	// ErrHookRequired is returned when registering against a blank hook name.
	ErrHookRequired = errors.New("hooks: hook name is required")
	// ErrFilterRequired is returned when registering a nil filter or action.
	ErrFilterRequired = errors.New("hooks: callback is required")
)

// Call carries the extra arguments a host passes alongside the filtered
// value: the content the value belongs to and hook-specific metadata.
type Call struct {
	ContentID int
	Args      map[string]any
}

// String returns Args[key] when it is a string.
func (c Call) String(key string) string {
	if c.Args == nil {
		return ""
	}
	value, _ := c.Args[key].(string)
	return value
}

// Filter transforms a hook value. Returning the input unchanged is the normal
// way to decline.
type Filter interface {
	Filter(ctx context.Context, value any, call Call) (any, error)
}

// FilterFunc adapts a function into a Filter.
type FilterFunc func(ctx context.Context, value any, call Call) (any, error)

// Filter calls the underlying function.
func (fn FilterFunc) Filter(ctx context.Context, value any, call Call) (any, error) {
	return fn(ctx, value, call)
}

// Action is a side-effecting hook callback.
type Action func(ctx context.Context) error

type entry struct {
	priority int
	order    int
	filter   Filter
	action   Action
}

// Registry stores filters and actions by hook name. Callbacks run in
// ascending priority; ties run in registration order. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	filters map[string][]entry
	actions map[string][]entry
	seq     int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		filters: make(map[string][]entry),
		actions: make(map[string][]entry),
	}
}

// AddFilter registers filter under hook.
func (r *Registry) AddFilter(hook string, priority int, filter Filter) error {
	name := strings.TrimSpace(hook)
	if name == "" {
		return ErrHookRequired
	}
	if filter == nil {
		return fmt.Errorf("%w: filter for %q", ErrFilterRequired, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.filters[name] = append(r.filters[name], entry{priority: priority, order: r.seq, filter: filter})
	r.seq++
	return nil
}

// AddAction registers action under hook.
func (r *Registry) AddAction(hook string, priority int, action Action) error {
	name := strings.TrimSpace(hook)
	if name == "" {
		return ErrHookRequired
	}
	if action == nil {
		return fmt.Errorf("%w: action for %q", ErrFilterRequired, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions[name] = append(r.actions[name], entry{priority: priority, order: r.seq, action: action})
	r.seq++
	return nil
}

// ApplyFilters threads value through every filter registered for hook. With
// no filters the value is returned as-is. The first error stops the chain.
func (r *Registry) ApplyFilters(ctx context.Context, hook string, value any, call Call) (any, error) {
	for _, e := range r.sorted(r.filters, hook) {
		next, err := e.filter.Filter(ctx, value, call)
		if err != nil {
			return value, fmt.Errorf("hooks: filter %q: %w", hook, err)
		}
		value = next
	}
	return value, nil
}

// DoAction runs every action registered for hook.
func (r *Registry) DoAction(ctx context.Context, hook string) error {
	for _, e := range r.sorted(r.actions, hook) {
		if err := e.action(ctx); err != nil {
			return fmt.Errorf("hooks: action %q: %w", hook, err)
		}
	}
	return nil
}

// Has reports whether any filter or action is registered for hook.
func (r *Registry) Has(hook string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.filters[hook]) > 0 || len(r.actions[hook]) > 0
}

// Hooks returns the sorted names of every hook with a registration.
func (r *Registry) Hooks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.filters)+len(r.actions))
	for name := range r.filters {
		seen[name] = struct{}{}
	}
	for name := range r.actions {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) sorted(table map[string][]entry, hook string) []entry {
	r.mu.RLock()
	entries := append([]entry(nil), table[hook]...)
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority == entries[j].priority {
			return entries[i].order < entries[j].order
		}
		return entries[i].priority < entries[j].priority
	})
	return entries
}
