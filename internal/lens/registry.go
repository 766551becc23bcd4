package lens

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry holds the live widget instances keyed by the host-supplied
// instance key, so multiple widgets on one page never share pointer or lens
// state.
//
// Registry is safe for concurrent use. Individual widgets are not; the
// registry's lock also serializes event application through With.
type Registry struct {
	mu      sync.Mutex
	widgets map[string]*Widget
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]*Widget)}
}

// Put registers a widget under the given key and returns the key. An empty
// key gets a generated UUID. Re-using a key replaces the previous instance
// wholesale — the host re-mounted the widget, so all pointer state starts
// fresh with the new image.
func (r *Registry) Put(key string, w *Widget) string {
	if key == "" {
		key = uuid.NewString()
	}
	r.mu.Lock()
	r.widgets[key] = w
	r.mu.Unlock()
	return key
}

// With runs fn against the widget for key while holding the registry lock,
// serializing event application per the single-dispatch model.
func (r *Registry) With(key string, fn func(*Widget) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.widgets[key]
	if !ok {
		return fmt.Errorf("unknown widget key %q", key)
	}
	return fn(w)
}

// Delete removes a widget instance. Deleting an unknown key does nothing.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	delete(r.widgets, key)
	r.mu.Unlock()
}

// Keys returns the registered instance keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, 0, len(r.widgets))
	for k := range r.widgets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}
