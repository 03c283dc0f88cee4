package injectable

import "sync"

// Scope wraps factory invocation with a lifetime policy.
// Implementations must be safe for concurrent use.
type Scope interface {
	// Resolve returns the instance stored for key, calling factory to
	// produce one when the scope holds none.
	Resolve(key Key, factory func() any) any

	// Release forgets the instance stored for key.
	Release(key Key)

	// Reset forgets every stored instance.
	Reset()

	// Len returns the number of live instances held by the scope.
	Len() int
}

// Scoped returns the instance of declared type T held by scope, building it
// with factory on a miss. It is meant to wrap a path's default:
//
//	var SessionPath = injectable.NewPath("session", func(c *injectable.Container) Session {
//	    return injectable.Scoped(c.Cached(), func() Session { return newSession() })
//	})
func Scoped[T any](scope Scope, factory func() T) T {
	service := scope.Resolve(KeyOf[T](), func() any { return factory() })

	typed, ok := service.(T)
	if !ok {
		if service == nil {
			var zero T
			return zero
		}
		// a foreign value under T's key; build a fresh one rather than fail
		return factory()
	}

	return typed
}

// Release forgets the instance of declared type T held by scope.
func Release[T any](scope Scope) {
	scope.Release(KeyOf[T]())
}

// entryTable is the scope-private map shared by the built-in scopes.
// The table lock covers map access only; each entry carries its own lock
// held while its factory runs, so a factory may use the same scope for
// other keys.
type entryTable[E any] struct {
	entries map[Key]*E
	mu      sync.Mutex
}

func newEntryTable[E any]() entryTable[E] {
	return entryTable[E]{entries: make(map[Key]*E)}
}

// get returns the entry for key, creating an empty one on first use.
func (t *entryTable[E]) get(key Key) *E {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[key]
	if !ok {
		entry = new(E)
		t.entries[key] = entry
	}

	return entry
}

func (t *entryTable[E]) release(key Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, key)
}

func (t *entryTable[E]) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[Key]*E)
}

// snapshot copies the current entries so callers can inspect them without
// holding the table lock.
func (t *entryTable[E]) snapshot() []*E {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]*E, 0, len(t.entries))
	for _, entry := range t.entries {
		entries = append(entries, entry)
	}

	return entries
}

// CacheScope keeps a strong reference to every instance it builds until the
// instance is released or the scope is reset.
type CacheScope struct {
	table entryTable[cacheEntry]
}

type cacheEntry struct {
	mu      sync.Mutex
	service any
	filled  bool
}

// NewCacheScope creates an empty cache scope.
func NewCacheScope() *CacheScope {
	return &CacheScope{table: newEntryTable[cacheEntry]()}
}

// Resolve returns the cached instance for key or builds and caches one.
// Concurrent first requests for the same key call factory exactly once.
// A nil result is returned but not cached.
func (s *CacheScope) Resolve(key Key, factory func() any) any {
	entry := s.table.get(key)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.filled {
		return entry.service
	}

	service := factory()
	if !isNil(service) {
		entry.service = service
		entry.filled = true
	}

	return service
}

// Release forgets the instance cached for key.
func (s *CacheScope) Release(key Key) {
	s.table.release(key)
}

// Reset forgets every cached instance.
func (s *CacheScope) Reset() {
	s.table.reset()
}

// Len returns the number of cached instances.
func (s *CacheScope) Len() int {
	n := 0
	for _, entry := range s.table.snapshot() {
		entry.mu.Lock()
		if entry.filled {
			n++
		}
		entry.mu.Unlock()
	}
	return n
}
