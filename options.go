package injectable

import "github.com/xraph/go-utils/log"

// Option configures a Container.
type Option func(*Container)

// WithName sets the container name used in logs, metrics, and Inspect.
func WithName(name string) Option {
	return func(c *Container) { c.name = name }
}

// WithLogger sets the container logger. A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMiddleware adds middleware in the given order.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Container) {
		for _, mw := range middleware {
			c.middleware.add(mw)
		}
	}
}

// WithApplicationScope pins the container's application scope instead of
// following the process-wide default.
func WithApplicationScope(scope Scope) Option {
	return func(c *Container) { c.application = scope }
}

// WithCachedScope replaces the container's cache scope.
func WithCachedScope(scope Scope) Option {
	return func(c *Container) {
		if scope != nil {
			c.cached = scope
		}
	}
}

// WithSharedScope replaces the container's weak scope.
func WithSharedScope(scope Scope) Option {
	return func(c *Container) {
		if scope != nil {
			c.shared = scope
		}
	}
}
