package providers

import (
	"github.com/uilab/go-fast/framework/config"
	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/design"
	"github.com/uilab/go-fast/framework/elements"
	"github.com/uilab/go-fast/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router for applications that
// expose their component catalog over HTTP.
//
// Bound abstracts:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New()
	})
}

// ── DesignSystemServiceProvider ───────────────────────────────────────────────

// DesignSystemServiceProvider binds the root design system, configured from
// "config" (prefix, shadow mode, token emission).
//
// Bound abstracts:
//   - design.Key ("design-system") → *design.DesignSystem
//   - "platform"                   → *elements.Platform
type DesignSystemServiceProvider struct {
	container.BaseProvider
}

func (p *DesignSystemServiceProvider) Register(app *container.Container) {
	app.Singleton(design.Key, func(c *container.Container) any {
		cfg := container.Resolve[*config.Config](c, "config")
		ds := design.New(c).
			WithPrefix(cfg.Design.Prefix).
			WithShadowRootMode(elements.ShadowRootMode(cfg.Design.ShadowRootMode))
		if !cfg.Design.TokensEnabled {
			ds.WithDesignTokenRoot(nil)
		}
		return ds
	})
	app.Singleton("platform", func(c *container.Container) any {
		return elements.Default
	})
}
