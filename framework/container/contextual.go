package container

// ContextualBuilder implements the fluent contextual binding API.
//
// Contextual bindings let one consumer see a different implementation of an
// abstract than the rest of the scope — useful when two component kits share
// a service key but want distinct defaults.
//
//	c.When("toolbar-presentation").Needs("icon-set").Give(func(c *container.Container) any {
//	    return icons.Sharp()
//	})
type ContextualBuilder struct {
	container *Container
	concrete  string
	needs     string
}

// Needs specifies which abstract the concrete consumer depends on.
func (b *ContextualBuilder) Needs(abstract string) *ContextualBuilder {
	b.needs = abstract
	return b
}

// Give provides the factory used when the concrete consumer resolves the
// specified abstract.
func (b *ContextualBuilder) Give(factory Factory) {
	b.container.mu.Lock()
	defer b.container.mu.Unlock()

	if _, ok := b.container.contextual[b.concrete]; !ok {
		b.container.contextual[b.concrete] = make(map[string]Factory)
	}
	b.container.contextual[b.concrete][b.needs] = factory
}

// GiveValue is a shorthand for Give when the value is a simple scalar or
// pre-built instance (no factory logic needed).
//
//	c.When("toolbar-presentation").Needs("spacing-unit").GiveValue(4)
func (b *ContextualBuilder) GiveValue(value any) {
	b.Give(func(_ *Container) any { return value })
}
