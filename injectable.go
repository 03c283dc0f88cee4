// Package injectable is a runtime dependency-injection container.
//
// Services are declared as resolution paths: a declared type plus a default
// construction recipe. Consumers resolve a path and receive either the
// default or, when one is registered for the declared type, an override.
// Overrides are meant for tests and startup-time reconfiguration and persist
// until removed or the container is reset.
//
//	var GreeterPath = injectable.NewPath("greeter", func(c *injectable.Container) Greeter {
//	    return &helloGreeter{}
//	})
//
//	injectable.Register(c, func() Greeter { return &mockGreeter{} })
//	g := injectable.Resolve(c, GreeterPath) // *mockGreeter
//	c.Reset()
//	g = injectable.Resolve(c, GreeterPath)  // *helloGreeter
//
// Lifetimes are expressed by wrapping a path's default in a Scope: the
// application scope lives as long as the process, the cached scope until it
// is reset, and the shared scope as long as some consumer holds the instance.
package injectable

import "sync"

// Process-wide defaults. Both are initialized once at package load and can be
// swapped whole, typically for test isolation.
var (
	defaultsMu             sync.RWMutex
	sharedContainer        *Container = newContainer()
	sharedApplicationScope Scope      = NewCacheScope()
)

// New creates a container.
func New(opts ...Option) *Container {
	return newContainer(opts...)
}

// Default returns the process-wide container.
func Default() *Container {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return sharedContainer
}

// SetDefault replaces the process-wide container and returns a function that
// restores the previous one. A nil container installs a fresh one.
//
//	restore := injectable.SetDefault(injectable.New())
//	defer restore()
func SetDefault(c *Container) (restore func()) {
	if c == nil {
		c = newContainer()
	}

	defaultsMu.Lock()
	previous := sharedContainer
	sharedContainer = c
	defaultsMu.Unlock()

	return func() {
		defaultsMu.Lock()
		sharedContainer = previous
		defaultsMu.Unlock()
	}
}

// DefaultApplicationScope returns the process-wide singleton scope.
func DefaultApplicationScope() Scope {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return sharedApplicationScope
}

// SetDefaultApplicationScope replaces the process-wide singleton scope and
// returns a function that restores the previous one. A nil scope installs a
// fresh cache scope.
func SetDefaultApplicationScope(scope Scope) (restore func()) {
	if scope == nil {
		scope = NewCacheScope()
	}

	defaultsMu.Lock()
	previous := sharedApplicationScope
	sharedApplicationScope = scope
	defaultsMu.Unlock()

	return func() {
		defaultsMu.Lock()
		sharedApplicationScope = previous
		defaultsMu.Unlock()
	}
}
