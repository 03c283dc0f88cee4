package injectable

import "sync"

// Source tells where a resolved service came from.
type Source string

const (
	// SourceDefault means the path's default (or Registered's factory) built the service.
	SourceDefault Source = "default"

	// SourceOverride means a registered override produced the service.
	SourceOverride Source = "override"
)

// ResolveEvent describes one completed resolution.
type ResolveEvent struct {
	Key     Key
	Path    string // empty for Registered and ResolveKey
	Source  Source
	Service any
	// Err is set when an override existed but its value could not be viewed
	// as the declared type; the default was used instead.
	Err error
}

// Middleware observes container operations.
// Middleware can be used for logging, metrics, testing, etc. Hooks run after
// the operation completed and must not call back into registration on the
// same container.
type Middleware interface {
	// OnRegister is called after an override was installed.
	OnRegister(key Key)

	// OnUnregister is called after a single override was removed.
	OnUnregister(key Key)

	// OnReset is called after all overrides were discarded.
	OnReset()

	// OnResolve is called after every resolution.
	OnResolve(event ResolveEvent)
}

// middlewareChain manages multiple middleware.
type middlewareChain struct {
	middleware []Middleware
	mu         sync.RWMutex
}

// newMiddlewareChain creates a new middleware chain.
func newMiddlewareChain() *middlewareChain {
	return &middlewareChain{
		middleware: make([]Middleware, 0),
	}
}

// add appends middleware to the chain.
func (m *middlewareChain) add(middleware Middleware) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.middleware = append(m.middleware, middleware)
}

// list returns the current middleware without holding the lock during hooks.
func (m *middlewareChain) list() []Middleware {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.middleware[:len(m.middleware):len(m.middleware)]
}

func (m *middlewareChain) register(key Key) {
	for _, mw := range m.list() {
		mw.OnRegister(key)
	}
}

func (m *middlewareChain) unregister(key Key) {
	for _, mw := range m.list() {
		mw.OnUnregister(key)
	}
}

func (m *middlewareChain) reset() {
	for _, mw := range m.list() {
		mw.OnReset()
	}
}

func (m *middlewareChain) resolve(event ResolveEvent) {
	for _, mw := range m.list() {
		mw.OnResolve(event)
	}
}

// FuncMiddleware wraps functions as Middleware. Nil functions are skipped.
type FuncMiddleware struct {
	OnRegisterFunc   func(key Key)
	OnUnregisterFunc func(key Key)
	OnResetFunc      func()
	OnResolveFunc    func(event ResolveEvent)
}

// OnRegister implements Middleware.
func (f *FuncMiddleware) OnRegister(key Key) {
	if f.OnRegisterFunc != nil {
		f.OnRegisterFunc(key)
	}
}

// OnUnregister implements Middleware.
func (f *FuncMiddleware) OnUnregister(key Key) {
	if f.OnUnregisterFunc != nil {
		f.OnUnregisterFunc(key)
	}
}

// OnReset implements Middleware.
func (f *FuncMiddleware) OnReset() {
	if f.OnResetFunc != nil {
		f.OnResetFunc()
	}
}

// OnResolve implements Middleware.
func (f *FuncMiddleware) OnResolve(event ResolveEvent) {
	if f.OnResolveFunc != nil {
		f.OnResolveFunc(event)
	}
}
