package injectable

// Injected holds a service resolved when the accessor was created.
// Embed it by value in the owning struct:
//
//	type Handler struct {
//	    greeter injectable.Injected[Greeter]
//	}
//
//	h := &Handler{greeter: injectable.Inject(GreeterPath)}
type Injected[T any] struct {
	service T
}

// Inject resolves path from the default container immediately.
func Inject[T any](path Path[T]) Injected[T] {
	return InjectFrom(Default(), path)
}

// InjectFrom resolves path from c immediately.
func InjectFrom[T any](c *Container, path Path[T]) Injected[T] {
	return Injected[T]{service: Resolve(c, path)}
}

// Get returns the held service.
func (i Injected[T]) Get() T {
	return i.service
}

// Set replaces the held service.
func (i *Injected[T]) Set(service T) {
	i.service = service
}

// LazyInjected resolves its service on first Get and keeps it for the rest of
// its life. It captures the container when created, not when first read.
//
// A LazyInjected is not safe for concurrent first access; owners that share
// it between goroutines must serialize the first Get.
type LazyInjected[T any] struct {
	container *Container
	path      Path[T]
	service   T
	resolved  bool
}

// LazyInject creates a lazy accessor bound to the default container.
func LazyInject[T any](path Path[T]) LazyInjected[T] {
	return LazyInjectFrom(Default(), path)
}

// LazyInjectFrom creates a lazy accessor bound to c.
func LazyInjectFrom[T any](c *Container, path Path[T]) LazyInjected[T] {
	return LazyInjected[T]{container: c, path: path}
}

// Get resolves the service on first call and returns the held service.
func (l *LazyInjected[T]) Get() T {
	if !l.resolved {
		l.service = Resolve(l.container, l.path)
		l.resolved = true
	}
	return l.service
}

// Set replaces the held service; later Get calls return it without resolving.
func (l *LazyInjected[T]) Set(service T) {
	l.service = service
	l.resolved = true
}

// IsResolved reports whether the service has been resolved or set.
func (l *LazyInjected[T]) IsResolved() bool {
	return l.resolved
}

// Provider resolves its path on every call, so overrides and scope resets
// are observed immediately.
type Provider[T any] struct {
	container *Container
	path      Path[T]
}

// NewProvider creates a provider bound to c. A nil container means the
// default container at the time of each call.
func NewProvider[T any](c *Container, path Path[T]) Provider[T] {
	return Provider[T]{container: c, path: path}
}

// Provide resolves and returns the service.
func (p Provider[T]) Provide() T {
	c := p.container
	if c == nil {
		c = Default()
	}
	return Resolve(c, p.path)
}
