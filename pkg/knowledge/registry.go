package knowledge

import (
	"context"
	"sort"
	"sync"
)

// Registry maps friendly collection keys to physical store names.
//
// All mutation goes through the registry's mutex, so concurrent
// get-or-create calls for the same key resolve to a single physical name.
type Registry struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]string)}
}

// Resolve returns the physical name registered for a friendly key.
func (r *Registry) Resolve(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.names[key]
	return name, ok
}

// GetOrCreate returns the physical name for a friendly key, deriving and
// registering it atomically when the key is unknown.
func (r *Registry) GetOrCreate(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if name, ok := r.names[key]; ok {
		return name
	}
	name := PhysicalName(key)
	r.names[key] = name
	return name
}

// Put registers an explicit friendly-to-physical mapping.
func (r *Registry) Put(key, physical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names[key] = physical
}

// Delete removes a friendly key from the registry.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.names, key)
}

// Keys returns the registered friendly keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.names))
	for key := range r.names {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}

// LoadFromStore seeds the registry from the collections already present
// in the store. Names following the suffix convention are registered
// under their friendly key; anything else maps to itself.
func (r *Registry) LoadFromStore(ctx context.Context, store Store) error {
	names, err := store.ListCollections(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if IsPhysicalName(name) {
			r.names[FriendlyName(name)] = name
		} else {
			r.names[name] = name
		}
	}
	return nil
}
