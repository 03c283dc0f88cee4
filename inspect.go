package injectable

// ContainerInfo is a diagnostic snapshot of a container.
type ContainerInfo struct {
	Name        string
	Overrides   []Key // sorted by Key.String
	Application int   // live instances in the application scope
	Cached      int   // live instances in the cached scope
	Shared      int   // live instances in the shared scope
}

// Inspect returns diagnostic information about the container.
// The snapshot is not atomic across the registry and the scopes.
func (c *Container) Inspect() ContainerInfo {
	return ContainerInfo{
		Name:        c.name,
		Overrides:   c.registry.keys(),
		Application: c.Application().Len(),
		Cached:      c.cached.Len(),
		Shared:      c.shared.Len(),
	}
}
