package injectable

// Resolve returns the service for path's declared type T.
// A registered override for T wins; otherwise path's default is built. The
// default is evaluated only on that fallback, so any scope wrapped around it
// is left untouched when an override applies.
//
// Example:
//
//	greeter := injectable.Resolve(c, GreeterPath)
func Resolve[T any](c *Container, path Path[T]) T {
	return resolveAs(c, path.name, func() T { return path.build(c) })
}

// Optional resolves like Resolve and reports ok=false when the resulting
// service is nil, for declared types that may legitimately be absent.
func Optional[T any](c *Container, path Path[T]) (T, bool) {
	service := Resolve(c, path)
	return service, !isNil(service)
}

// Registered returns the override registered for T, or factory's result when
// none exists. It is the path-less form of Resolve, keyed purely by T.
//
// Example:
//
//	clock := injectable.Registered(c, func() Clock { return systemClock{} })
func Registered[T any](c *Container, factory func() T) T {
	return resolveAs(c, "", factory)
}

// Register installs factory as the override for its declared return type T.
// The declared type matters, not the concrete one: to override a Greeter path
// the factory must be a func() Greeter.
//
// It panics with ErrInvalidFactory if factory is nil.
func Register[T any](c *Container, factory func() T) {
	if factory == nil {
		panic(ErrInvalidFactory)
	}

	c.RegisterFactory(KeyOf[T](), func() (any, bool) {
		return factory(), true
	})
}

// RegisterOptional installs an override that may decline by returning ok=false,
// in which case resolution falls through to the default path.
func RegisterOptional[T any](c *Container, factory func() (T, bool)) {
	if factory == nil {
		panic(ErrInvalidFactory)
	}

	c.RegisterFactory(KeyOf[T](), func() (any, bool) {
		return factory()
	})
}

// Unregister drops the override for T and reports whether one existed.
func Unregister[T any](c *Container) bool {
	return c.Unregister(KeyOf[T]())
}

// resolveAs resolves by T's key and views the result as T.
func resolveAs[T any](c *Container, path string, fallback func() T) T {
	service := c.resolve(KeyOf[T](), path, func() any { return fallback() })

	typed, ok := service.(T)
	if !ok {
		// only reachable when the default itself yields a nil interface
		var zero T
		return zero
	}

	return typed
}
