package injectable

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectGarbage runs the collector until scope holds no live instance.
func collectGarbage(t *testing.T, scope Scope) {
	t.Helper()

	for range 10 {
		runtime.GC()
		if scope.Len() == 0 {
			return
		}
	}

	t.Fatal("scope instance still alive after garbage collection")
}

func TestCacheScope_ReturnsSameInstance(t *testing.T) {
	scope := NewCacheScope()
	calls := 0
	factory := func() myServiceType {
		calls++
		return newMyService()
	}

	first := Scoped(scope, factory)
	second := Scoped(scope, factory)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, scope.Len())
}

func TestCacheScope_KeysByDeclaredType(t *testing.T) {
	scope := NewCacheScope()

	svc := Scoped(scope, func() myServiceType { return newMyService() })
	ptr := Scoped(scope, func() *myService { return newMyService() })

	assert.NotEqual(t, svc.ID(), ptr.ID())
	assert.Equal(t, 2, scope.Len())
}

func TestCacheScope_Release(t *testing.T) {
	scope := NewCacheScope()

	first := Scoped(scope, func() myServiceType { return newMyService() })
	Release[myServiceType](scope)
	assert.Equal(t, 0, scope.Len())

	second := Scoped(scope, func() myServiceType { return newMyService() })
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestCacheScope_ReleaseLeavesOtherKeys(t *testing.T) {
	scope := NewCacheScope()

	kept := Scoped(scope, func() *myService { return newMyService() })
	_ = Scoped(scope, func() myServiceType { return newMyService() })

	Release[myServiceType](scope)

	assert.Equal(t, 1, scope.Len())
	assert.Same(t, kept, Scoped(scope, func() *myService { return newMyService() }))
}

func TestCacheScope_Reset(t *testing.T) {
	scope := NewCacheScope()

	first := Scoped(scope, func() myServiceType { return newMyService() })
	_ = Scoped(scope, func() *mockService { return newMockService() })
	require.Equal(t, 2, scope.Len())

	scope.Reset()
	assert.Equal(t, 0, scope.Len())

	second := Scoped(scope, func() myServiceType { return newMyService() })
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestCacheScope_NilNotCached(t *testing.T) {
	scope := NewCacheScope()
	calls := 0
	factory := func() myServiceType {
		calls++
		return nil
	}

	assert.Nil(t, Scoped(scope, factory))
	assert.Nil(t, Scoped(scope, factory))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, scope.Len())
}

func TestCacheScope_CachesValues(t *testing.T) {
	scope := NewCacheScope()
	calls := 0

	for range 3 {
		got := Scoped(scope, func() int {
			calls++
			return 42
		})
		assert.Equal(t, 42, got)
	}

	assert.Equal(t, 1, calls)
}

func TestCacheScope_ConcurrentFirstRequest(t *testing.T) {
	scope := NewCacheScope()
	var calls counter

	const n = 64
	results := make([]myServiceType, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Scoped(scope, func() myServiceType {
				calls.inc()
				return newMyService()
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), calls.load())
	for _, svc := range results {
		assert.Same(t, results[0], svc)
	}
}

func TestCacheScope_FactoryMayUseSameScope(t *testing.T) {
	scope := NewCacheScope()

	outer := Scoped(scope, func() myServiceType {
		inner := Scoped(scope, func() *mockService { return newMockService() })
		return &myService{id: inner.ID(), name: "outer"}
	})

	inner := Scoped(scope, func() *mockService { return newMockService() })
	assert.Equal(t, inner.ID(), outer.ID())
}

func TestCacheScope_PanickingFactoryDoesNotPoison(t *testing.T) {
	scope := NewCacheScope()

	assert.Panics(t, func() {
		Scoped(scope, func() myServiceType { panic("boom") })
	})

	svc := Scoped(scope, func() myServiceType { return newMyService() })
	assert.Equal(t, "MyService", svc.Text())
}

func TestSharedScope_SameInstanceWhileHeld(t *testing.T) {
	scope := NewSharedScope()
	calls := 0
	factory := func() myServiceType {
		calls++
		return newMyService()
	}

	held := Scoped(scope, factory)
	runtime.GC()
	again := Scoped(scope, factory)

	assert.Same(t, held, again)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, scope.Len())
	runtime.KeepAlive(held)
}

func TestSharedScope_RebuildsAfterRelease(t *testing.T) {
	scope := NewSharedScope()
	calls := 0
	factory := func() myServiceType {
		calls++
		return newMyService()
	}

	held := Scoped(scope, factory)
	id := held.ID()
	held = nil

	collectGarbage(t, scope)

	rebuilt := Scoped(scope, factory)
	assert.NotEqual(t, id, rebuilt.ID())
	assert.Equal(t, 2, calls)
}

func TestSharedScope_IsNotAnOwner(t *testing.T) {
	scope := NewSharedScope()

	_ = Scoped(scope, func() *myService { return newMyService() })

	collectGarbage(t, scope)
	assert.Equal(t, 0, scope.Len())
}

func TestSharedScope_NonPointerIsTransient(t *testing.T) {
	scope := NewSharedScope()
	calls := 0

	for range 2 {
		_ = Scoped(scope, func() string {
			calls++
			return "value"
		})
	}

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, scope.Len())
}

func TestSharedScope_ReleaseAndReset(t *testing.T) {
	scope := NewSharedScope()

	held := Scoped(scope, func() myServiceType { return newMyService() })
	Release[myServiceType](scope)

	fresh := Scoped(scope, func() myServiceType { return newMyService() })
	assert.NotEqual(t, held.ID(), fresh.ID())

	scope.Reset()
	assert.Equal(t, 0, scope.Len())
	runtime.KeepAlive(held)
	runtime.KeepAlive(fresh)
}

func TestSharedPath_ThroughContainer(t *testing.T) {
	c := New()

	first := Resolve(c, sharedServicePath)
	second := Resolve(c, sharedServicePath)
	assert.Same(t, first, second)

	id := first.ID()
	first, second = nil, nil
	collectGarbage(t, c.Shared())

	assert.NotEqual(t, id, Resolve(c, sharedServicePath).ID())
}

func TestApplicationScope_SharedAcrossContainers(t *testing.T) {
	restore := SetDefaultApplicationScope(NewCacheScope())
	defer restore()

	a := Resolve(New(), applicationServicePath)
	b := Resolve(New(), applicationServicePath)

	assert.Same(t, a, b)
}

func TestApplicationScope_Pinned(t *testing.T) {
	restore := SetDefaultApplicationScope(NewCacheScope())
	defer restore()

	pinned := New(WithApplicationScope(NewCacheScope()))

	a := Resolve(pinned, applicationServicePath)
	b := Resolve(New(), applicationServicePath)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCachedScope_PerContainer(t *testing.T) {
	a := New()
	b := New()

	assert.NotEqual(t, Resolve(a, cachedServicePath).ID(), Resolve(b, cachedServicePath).ID())
	assert.Equal(t, Resolve(a, cachedServicePath).ID(), Resolve(a, cachedServicePath).ID())

	a.Cached().Reset()
	assert.Equal(t, 0, a.Cached().Len())
}

// foreignScope stores a value of the wrong type under every key.
type foreignScope struct{ *CacheScope }

func (s *foreignScope) Resolve(Key, func() any) any { return "foreign" }

func TestScoped_ForeignValueFallsBackToFactory(t *testing.T) {
	scope := &foreignScope{NewCacheScope()}

	svc := Scoped[myServiceType](scope, func() myServiceType { return newMyService() })
	assert.Equal(t, "MyService", svc.Text())
}
