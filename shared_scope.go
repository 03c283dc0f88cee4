package injectable

import (
	"reflect"
	"sync"
	"unsafe"
	"weak"
)

// SharedScope hands out the same instance for as long as some other owner
// keeps it alive. It stores only weak references: once every strong owner has
// dropped an instance and the garbage collector has reclaimed it, the next
// request builds a new one.
//
// Only pointer-backed services (a pointer, or an interface holding a pointer
// to a non-empty type) can be tracked weakly. Any other value is returned
// without being stored, so the scope degrades to transient for it. Very small
// pointer-free objects may be batched by the runtime's tiny allocator and
// outlive their last owner.
type SharedScope struct {
	table entryTable[sharedEntry]
}

type sharedEntry struct {
	mu  sync.Mutex
	ref weakRef
}

// NewSharedScope creates an empty shared scope.
func NewSharedScope() *SharedScope {
	return &SharedScope{table: newEntryTable[sharedEntry]()}
}

// Resolve returns the live instance for key or builds a new one.
func (s *SharedScope) Resolve(key Key, factory func() any) any {
	entry := s.table.get(key)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if service, ok := entry.ref.value(); ok {
		return service
	}

	service := factory()
	entry.ref, _ = makeWeakRef(service)

	return service
}

// Release forgets the instance tracked for key.
func (s *SharedScope) Release(key Key) {
	s.table.release(key)
}

// Reset forgets every tracked instance.
func (s *SharedScope) Reset() {
	s.table.reset()
}

// Len returns the number of tracked instances that are still alive.
func (s *SharedScope) Len() int {
	n := 0
	for _, entry := range s.table.snapshot() {
		entry.mu.Lock()
		if entry.ref.alive() {
			n++
		}
		entry.mu.Unlock()
	}
	return n
}

// weakRef is a type-erased weak pointer. It remembers the concrete pointer
// type so the service can be rebuilt as the same dynamic value.
type weakRef struct {
	typ reflect.Type
	ptr weak.Pointer[byte]
}

// makeWeakRef creates a weak reference to the object service points to.
// It reports false for values that cannot be tracked weakly.
func makeWeakRef(service any) (weakRef, bool) {
	if isNil(service) {
		return weakRef{}, false
	}

	rv := reflect.ValueOf(service)
	if rv.Kind() != reflect.Pointer || rv.Type().Elem().Size() == 0 {
		// zero-size allocations share one address and are never collected
		return weakRef{}, false
	}

	return weakRef{
		typ: rv.Type(),
		ptr: weak.Make((*byte)(rv.UnsafePointer())),
	}, true
}

// value returns the referenced service while it is alive.
func (r weakRef) value() (any, bool) {
	if r.typ == nil {
		return nil, false
	}

	p := r.ptr.Value()
	if p == nil {
		return nil, false
	}

	return reflect.NewAt(r.typ.Elem(), unsafe.Pointer(p)).Interface(), true
}

func (r weakRef) alive() bool {
	return r.typ != nil && r.ptr.Value() != nil
}
