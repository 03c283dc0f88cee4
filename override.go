package injectable

import "github.com/xraph/go-utils/log"

// Override pairs a declared type with an override factory for batch
// registration through RegisterAll.
type Override struct {
	key     Key
	factory Factory
}

// OverrideOf creates an override for factory's declared return type T.
//
// Example:
//
//	c.RegisterAll(
//	    injectable.OverrideOf(func() Greeter { return &mockGreeter{} }),
//	    injectable.OverrideOf(func() Clock { return fixedClock{} }),
//	)
func OverrideOf[T any](factory func() T) Override {
	if factory == nil {
		panic(ErrInvalidFactory)
	}

	return Override{
		key: KeyOf[T](),
		factory: func() (any, bool) {
			return factory(), true
		},
	}
}

// Key returns the identity key the override applies to.
func (o Override) Key() Key {
	return o.key
}

// Mock installs factory as the override for T and returns a function that
// puts back whatever was registered for T before, or removes the override if
// nothing was. It is meant for tests:
//
//	defer injectable.Mock(c, func() Greeter { return &mockGreeter{} })()
func Mock[T any](c *Container, factory func() T) (restore func()) {
	if factory == nil {
		panic(ErrInvalidFactory)
	}

	key := KeyOf[T]()
	previous, had := c.registry.swap(key, func() (any, bool) {
		return factory(), true
	})
	c.logger.Debug("override mocked",
		log.String("container", c.name),
		log.String("service", key.String()),
		log.Bool("replaced", had),
	)
	c.middleware.register(key)

	return func() {
		if had {
			c.RegisterFactory(key, previous)
			return
		}
		c.Unregister(key)
	}
}
