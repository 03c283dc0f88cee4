package injectable

// Path is a named default construction recipe for a service of declared type T.
// Paths are usually declared once as package-level variables and shared by
// every consumer of the service:
//
//	var MessagesPath = injectable.NewPath("messages", func(c *injectable.Container) Messages {
//	    return injectable.Scoped(c.Cached(), func() Messages { return newMessages() })
//	})
//
// The build function runs only when no override is registered for T.
type Path[T any] struct {
	name  string
	build func(c *Container) T
}

// NewPath creates a resolution path. It panics with ErrInvalidFactory if build is nil.
func NewPath[T any](name string, build func(c *Container) T) Path[T] {
	if build == nil {
		panic(ErrInvalidFactory)
	}
	return Path[T]{name: name, build: build}
}

// Name returns the path name.
func (p Path[T]) Name() string {
	return p.name
}

// Key returns the identity key of the path's declared type.
func (p Path[T]) Key() Key {
	return KeyOf[T]()
}
