// Package container provides a hierarchical IoC (Inversion of Control)
// container and Service Provider system for Go, modeled on the DI layer that
// FAST web components use to wire design-system services.
//
// # Overview
//
// The container manages the instantiation and lifecycle of design-system
// services: presentations, token providers, configuration, and anything else
// a component kit needs at definition time. It supports transient bindings,
// singletons, pre-built instances, aliases, tags, contextual bindings,
// extension (decoration), and — the part FAST leans on hardest — scoped
// child containers that delegate resolution to their ancestors.
//
// Because Go has no runtime constructor reflection, auto-wiring is replaced
// by explicit factory functions.
//
// # Container Lifecycle
//
//  1. Create: root := container.New()
//  2. Scope:  scope := container.NewScoped(root)   — one per document subtree
//  3. Register providers: registry.Register(&ThemeServiceProvider{})
//  4. Boot: registry.Boot()   — safe to resolve everything after this
//
// # Bindings
//
//	// Transient — new instance every Make()
//	c.Bind("ruler", func(c *container.Container) any { return &Ruler{} })
//
//	// Singleton — created once, reused
//	c.Singleton("theme", func(c *container.Container) any {
//	    cfg := container.Resolve[*config.Config](c, "config")
//	    return theme.Load(cfg)
//	})
//
//	// Pre-built value
//	c.Instance("config", myConfig)
//
//	// Alias
//	c.Alias("theme", "palette")
//
// # Resolving
//
//	// Untyped — FAST: container.get(key)
//	raw := c.Make("theme")
//
//	// Generic (preferred — no type assertion required)
//	th := container.Resolve[*theme.Theme](c, "theme")
//
//	// Probe without resolving — FAST: container.has(key, searchAncestors)
//	if c.Has("theme", true) { ... }
//
// # Scoped containers
//
// A child container answers Make() from its own bindings first and falls
// back to its ancestor chain, so a document subtree can shadow a service
// while inheriting everything else:
//
//	scope := container.NewScoped(root)
//	scope.Instance("theme", darkTheme)
//	scope.Make("theme")   // darkTheme
//	scope.Make("config")  // root's config
//
// # Registration values
//
// RegisterWithContext forwards opaque registration values — Registrar
// implementations, plain functions, or pre-built instances — while exposing
// a caller-supplied context to each of them:
//
//	// FAST: container.registerWithContext(context, ...registrations)
//	c.RegisterWithContext(ectx,
//	    button.Definition(),
//	    card.Definition(),
//	    myService,
//	)
//
// # Service Providers
//
//	type KitServiceProvider struct{ container.BaseProvider }
//
//	func (p *KitServiceProvider) Register(app *container.Container) {
//	    app.Singleton("icon-set", func(c *container.Container) any {
//	        return icons.Default()
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&KitServiceProvider{})
//	registry.Boot()
//
// Deferred providers declare Provides() and IsDeferred() and are registered
// lazily on the first Make() of one of their abstracts.
package container
