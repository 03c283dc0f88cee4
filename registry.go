package injectable

import (
	"slices"
	"strings"
	"sync"
)

// Factory produces an override for a service. Returning ok=false means
// "no override" and resolution falls through to the default path.
type Factory func() (service any, ok bool)

// registry maps identity keys to override factories.
// Factories are copied out under the lock and invoked after releasing it,
// so a factory may resolve other services from the same container.
type registry struct {
	factories map[Key]Factory
	mu        sync.RWMutex
}

// newRegistry creates an empty registry.
func newRegistry() *registry {
	return &registry{
		factories: make(map[Key]Factory),
	}
}

// register inserts or replaces the factory for key. Last write wins.
func (r *registry) register(key Key, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[key] = factory
}

// registerAll inserts all overrides in one critical section.
func (r *registry) registerAll(overrides []Override) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range overrides {
		r.factories[o.key] = o.factory
	}
}

// swap installs factory for key and returns the entry it replaced.
func (r *registry) swap(key Key, factory Factory) (Factory, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, had := r.factories[key]
	r.factories[key] = factory

	return previous, had
}

// lookup returns the factory registered for key.
func (r *registry) lookup(key Key) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[key]
	return factory, ok
}

// remove drops the factory for key and reports whether one existed.
func (r *registry) remove(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[key]; !ok {
		return false
	}
	delete(r.factories, key)

	return true
}

// clear removes every factory and returns how many were dropped.
func (r *registry) clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.factories)
	r.factories = make(map[Key]Factory)

	return n
}

// keys returns the registered keys sorted by their string form.
func (r *registry) keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.factories))
	for key := range r.factories {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	return keys
}
