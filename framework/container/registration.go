package container

import "sync"

// ── Registration values ───────────────────────────────────────────────────────

// Registrar is implemented by values that know how to register themselves
// into a container. Element definition factories and service registrations
// both satisfy it.
//
//	// FAST: interface Registry { register(container: Container): void }
type Registrar interface {
	Register(c *Container)
}

// RegistrarFunc adapts a plain function to the Registrar interface.
type RegistrarFunc func(c *Container)

func (f RegistrarFunc) Register(c *Container) { f(c) }

// RegisterWithContext forwards a heterogeneous list of registration values to
// the container while a registration context is active.
//
// Each value is handled in order:
//   - a Registrar (or RegistrarFunc) has its Register method invoked, during
//     which Context and ContextAs observe ctx;
//   - anything else is bound as a pre-built instance keyed by TypeKey.
//
// The previous context is restored on return, so nested registration passes
// each see their own context.
//
//	// FAST: container.registerWithContext(context, ...registrations)
func (c *Container) RegisterWithContext(ctx any, registrations ...any) {
	c.mu.Lock()
	prev := c.regContext
	c.regContext = ctx
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.regContext = prev
		c.mu.Unlock()
	}()

	for _, reg := range registrations {
		switch r := reg.(type) {
		case Registrar:
			r.Register(c)
		case func(*Container):
			r(c)
		default:
			c.Instance(TypeKey(reg), reg)
		}
	}
}

// Register forwards registration values with no active context.
func (c *Container) Register(registrations ...any) {
	c.RegisterWithContext(nil, registrations...)
}

// Context returns the active registration context, or nil outside a
// RegisterWithContext pass.
func (c *Container) Context() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.regContext
}

// ContextAs type-asserts the active registration context.
//
//	ectx, ok := container.ContextAs[*design.ElementContext](c)
func ContextAs[T any](c *Container) (T, bool) {
	ctx, ok := c.Context().(T)
	return ctx, ok
}

// ── Cached factories ──────────────────────────────────────────────────────────

// CachedFactory wraps a factory so its first result is computed once and
// reused for every later resolution, regardless of binding kind.
//
//	// FAST: DI.cachedCallback(() => new DirectionProvider())
//	c.Bind("direction-provider", container.CachedFactory(newDirectionProvider))
func CachedFactory(f Factory) Factory {
	var (
		once  sync.Once
		value any
	)
	return func(c *Container) any {
		once.Do(func() { value = f(c) })
		return value
	}
}
