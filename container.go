package injectable

import (
	"reflect"

	"github.com/xraph/go-utils/log"
)

// Container resolves services by declared type. Each resolution first consults
// the override registry and falls through to the path's default on a miss.
//
// The override registry, every scope, and the middleware chain are guarded by
// independent locks; a Container is safe for concurrent use.
type Container struct {
	name        string
	registry    *registry
	application Scope // nil means the process-wide application scope
	cached      Scope
	shared      Scope
	middleware  *middlewareChain
	logger      log.Logger
}

// newContainer creates a container with the given options applied.
func newContainer(opts ...Option) *Container {
	c := &Container{
		name:       "default",
		registry:   newRegistry(),
		cached:     NewCacheScope(),
		shared:     NewSharedScope(),
		middleware: newMiddlewareChain(),
		logger:     log.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the container name used in logs and diagnostics.
func (c *Container) Name() string {
	return c.name
}

// Logger returns the container logger.
func (c *Container) Logger() log.Logger {
	return c.logger
}

// Use adds middleware to the container.
// Middleware is called in the order it was added.
func (c *Container) Use(middleware Middleware) {
	c.middleware.add(middleware)
}

// Application returns the process-lifetime singleton scope.
// Unless WithApplicationScope pinned one, this is the scope installed by
// SetDefaultApplicationScope at the time of the call.
func (c *Container) Application() Scope {
	if c.application != nil {
		return c.application
	}
	return DefaultApplicationScope()
}

// Cached returns the container's cache scope. Instances live until the scope is reset.
func (c *Container) Cached() Scope {
	return c.cached
}

// Shared returns the container's weak scope. Instances live while someone else holds them.
func (c *Container) Shared() Scope {
	return c.shared
}

// RegisterFactory installs an untyped override for key. Last write wins and
// the override persists until Unregister or Reset. Prefer Register, which
// derives the key from the factory's return type.
//
// It panics with ErrInvalidFactory if factory is nil.
func (c *Container) RegisterFactory(key Key, factory Factory) {
	if factory == nil {
		panic(ErrInvalidFactory)
	}

	c.registry.register(key, factory)

	c.logger.Debug("override registered",
		log.String("container", c.name),
		log.String("service", key.String()),
	)
	c.middleware.register(key)
}

// RegisterAll installs several overrides atomically: a concurrent resolution
// observes either none or all of them.
func (c *Container) RegisterAll(overrides ...Override) {
	for _, o := range overrides {
		if o.factory == nil {
			panic(ErrInvalidFactory)
		}
	}

	c.registry.registerAll(overrides)

	for _, o := range overrides {
		c.logger.Debug("override registered",
			log.String("container", c.name),
			log.String("service", o.key.String()),
		)
		c.middleware.register(o.key)
	}
}

// Unregister drops the override for key and reports whether one existed.
func (c *Container) Unregister(key Key) bool {
	if !c.registry.remove(key) {
		return false
	}

	c.logger.Debug("override removed",
		log.String("container", c.name),
		log.String("service", key.String()),
	)
	c.middleware.unregister(key)

	return true
}

// HasOverride reports whether an override is registered for key.
func (c *Container) HasOverride(key Key) bool {
	_, ok := c.registry.lookup(key)
	return ok
}

// Reset discards every override. Scope caches are untouched; reset them
// through their own Reset.
func (c *Container) Reset() {
	n := c.registry.clear()

	c.logger.Debug("overrides reset",
		log.String("container", c.name),
		log.Int("count", n),
	)
	c.middleware.reset()
}

// ResolveKey resolves the service identified by key, calling fallback when no
// usable override exists. It is the untyped form of Resolve.
func (c *Container) ResolveKey(key Key, fallback func() any) any {
	return c.resolve(key, "", fallback)
}

// resolve applies override-first precedence and notifies middleware.
func (c *Container) resolve(key Key, path string, fallback func() any) any {
	service, ok, err := c.override(key)

	source := SourceOverride
	if !ok {
		service = fallback()
		source = SourceDefault
	}

	c.middleware.resolve(ResolveEvent{
		Key:     key,
		Path:    path,
		Source:  source,
		Service: service,
		Err:     err,
	})

	return service
}

// override invokes the registered factory for key, if any, and checks that its
// value can be viewed as the declared type. A mismatch is reported as err but
// is otherwise treated as "no override".
func (c *Container) override(key Key) (service any, ok bool, err error) {
	factory, found := c.registry.lookup(key)
	if !found {
		return nil, false, nil
	}

	service, ok = factory()
	if !ok || isNil(service) {
		return nil, false, nil
	}

	if key.typ != nil && !reflect.TypeOf(service).AssignableTo(key.typ) {
		mismatch := ErrTypeMismatch(key, service)
		c.logger.Debug("override ignored",
			log.String("container", c.name),
			log.String("service", key.String()),
			log.Error(mismatch),
		)

		return nil, false, mismatch
	}

	return service, true, nil
}
