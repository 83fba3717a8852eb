package design

import (
	"sync"

	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/dom"
	"github.com/uilab/go-fast/framework/elements"
	"github.com/uilab/go-fast/framework/tokens"
)

// DefaultPrefix is the tag prefix used by design systems that never called
// WithPrefix.
const DefaultPrefix = "fast"

// Attachment / container keys for design systems and their DI scopes.
const (
	// Key is the abstract a design system is bound under in its container.
	Key = "design-system"
	// ContainerKey is the node attachment slot holding a node's DI scope.
	ContainerKey = "di-container"
)

// ── Design system ─────────────────────────────────────────────────────────────

// DesignSystem owns registration configuration for one document scope and
// drives the registration pipeline end to end: it forwards registration
// values to its DI container under a fresh ElementContext, then runs every
// pending entry's callback and materializes the surviving definitions in
// order.
//
//	// FAST: DesignSystem.getOrCreate(node).withPrefix("my").register(...)
type DesignSystem struct {
	mu sync.Mutex

	prefix string
	shadow elements.ShadowRootMode
	policy DisambiguationPolicy

	scope *container.Container
	owner *dom.Node

	registry *TagRegistry
	platform *elements.Platform

	tokenRoot         *dom.Node
	tokenRootDisabled bool
	tokensInitialized bool
}

// New creates a design system bound to a DI container, with the default
// prefix, policy, registry, and platform.
func New(scope *container.Container) *DesignSystem {
	return &DesignSystem{
		prefix:   DefaultPrefix,
		policy:   SkipOnCollision,
		scope:    scope,
		registry: defaultRegistry,
		platform: elements.Default,
	}
}

// Container returns the DI container the design system registers against.
func (ds *DesignSystem) Container() *container.Container { return ds.scope }

// Owner returns the node the design system is attached to, or nil for the
// process root instance.
func (ds *DesignSystem) Owner() *dom.Node { return ds.owner }

// Prefix returns the current tag prefix.
func (ds *DesignSystem) Prefix() string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return ds.prefix
}

// ── Configuration (fluent, applies to later Register calls only) ──────────────

// WithPrefix sets the tag prefix for subsequent registrations.
func (ds *DesignSystem) WithPrefix(prefix string) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.prefix = prefix
	return ds
}

// WithShadowRootMode sets the shadow root mode for subsequent registrations.
func (ds *DesignSystem) WithShadowRootMode(mode elements.ShadowRootMode) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.shadow = mode
	return ds
}

// WithElementDisambiguation sets the collision policy for subsequent
// registrations.
func (ds *DesignSystem) WithElementDisambiguation(policy DisambiguationPolicy) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.policy = policy
	return ds
}

// WithDesignTokenRoot sets the node default token values are emitted to on
// the first Register call. Passing nil disables token root registration.
func (ds *DesignSystem) WithDesignTokenRoot(root *dom.Node) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.tokenRoot = root
	ds.tokenRootDisabled = root == nil
	return ds
}

// WithTagRegistry points the design system at an isolated tag registry.
// Intended for tests and embedded hosts; most callers share the default.
func (ds *DesignSystem) WithTagRegistry(r *TagRegistry) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.registry = r
	return ds
}

// WithPlatform points the design system at an isolated platform registry.
func (ds *DesignSystem) WithPlatform(p *elements.Platform) *DesignSystem {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.platform = p
	return ds
}

// TagFor returns the tag on file for a type in this design system's
// registry, or "" for an unregistered type.
func (ds *DesignSystem) TagFor(t *elements.Type) string {
	tag, _ := ds.registry.TagFor(t)
	return tag
}

// ── Registration pipeline ─────────────────────────────────────────────────────

// Register forwards a heterogeneous list of registration values (services,
// element definition factories) through the DI container and completes the
// two-phase definition protocol:
//
//  1. On the first call only, the design-token root is registered unless
//     explicitly disabled.
//  2. A fresh ElementContext bound to the current prefix, shadow mode, and
//     policy is handed to the container along with all registrations.
//     Element-defining registrations call TryDefineElement zero or more
//     times, producing this call's pending entries.
//  3. Every pending entry's callback runs, in the order the entries were
//     produced; callbacks attach presentations and build final definitions.
//  4. Every entry still marked for definition with a non-nil definition is
//     materialized on the platform — same order, so later definitions can
//     rely on earlier tags being defined.
//
// The whole pass is synchronous; when Register returns, TagFor answers for
// everything it defined. Register returns the design system for chaining.
func (ds *DesignSystem) Register(registrations ...any) *DesignSystem {
	ds.mu.Lock()
	if !ds.tokensInitialized {
		ds.tokensInitialized = true
		if !ds.tokenRootDisabled {
			if root := ds.resolveTokenRoot(); root != nil {
				tokens.RegisterRoot(root)
			}
		}
	}
	ectx := NewElementContext(ds.scope, ds.prefix, ds.shadow, ds.policy, ds.registry)
	platform := ds.platform
	ds.mu.Unlock()

	ds.scope.RegisterWithContext(ectx, registrations...)

	for _, entry := range ectx.Pending() {
		if entry.callback != nil {
			entry.callback(entry)
		}
	}
	for _, entry := range ectx.Pending() {
		if entry.willDefine && entry.definition != nil {
			if err := entry.definition.Define(platform); err != nil {
				panic(err)
			}
		}
	}
	return ds
}

// resolveTokenRoot picks the explicit token root, falling back to the owner
// node's document for node-scoped systems. Must hold ds.mu.
func (ds *DesignSystem) resolveTokenRoot() *dom.Node {
	if ds.tokenRoot != nil {
		return ds.tokenRoot
	}
	if ds.owner != nil {
		return ds.owner.OwnerDocument()
	}
	return nil
}

// ── Locator ───────────────────────────────────────────────────────────────────

var (
	rootMu sync.Mutex
	root   *DesignSystem

	// nodeMu guards the check-then-create step for node-scoped systems and
	// containers, preserving one-instance-per-node under concurrent access.
	nodeMu sync.Mutex
)

// TagFor returns the tag name on file for a type in the process-wide
// registry, or "" for an unregistered type. Call only after the relevant
// registration pass has completed.
//
//	// FAST: DesignSystem.tagFor(type)
func TagFor(t *elements.Type) string {
	tag, _ := defaultRegistry.TagFor(t)
	return tag
}

// ResponsibleFor finds the design system responsible for a node: the one
// attached to the node itself if present, otherwise the one owned by the
// nearest ancestor DI container, otherwise the process root instance.
//
//	// FAST: DesignSystem.responsibleFor(element)
func ResponsibleFor(n *dom.Node) *DesignSystem {
	if v, ok := n.Attached(Key); ok {
		return v.(*DesignSystem)
	}
	if c := findContainer(n.Parent()); c != nil && c.Has(Key, true) {
		return container.Resolve[*DesignSystem](c, Key)
	}
	return GetOrCreate()
}

// GetOrCreate returns the design system for a node, creating and caching one
// on first access. With no node it returns the process-wide root instance.
//
// For a node: an explicitly attached system wins; otherwise the node's DI
// scope is obtained (created as a child of the nearest ancestor scope, or of
// the root system's container), and if that scope has no design system of
// its own yet one is created, bound as a singleton on the scope, and
// attached to the node for fast future lookup.
//
//	// FAST: DesignSystem.getOrCreate(node)
func GetOrCreate(node ...*dom.Node) *DesignSystem {
	if len(node) == 0 || node[0] == nil {
		return rootInstance()
	}
	n := node[0]

	nodeMu.Lock()
	defer nodeMu.Unlock()

	if v, ok := n.Attached(Key); ok {
		return v.(*DesignSystem)
	}

	scope := nodeContainer(n)
	var ds *DesignSystem
	if scope.Has(Key, false) {
		ds = container.Resolve[*DesignSystem](scope, Key)
	} else {
		ds = New(scope)
		ds.owner = n
		scope.Instance(Key, ds)
	}
	n.SetAttached(Key, ds)
	return ds
}

func rootInstance() *DesignSystem {
	rootMu.Lock()
	defer rootMu.Unlock()
	if root == nil {
		c := container.New()
		root = New(c)
		c.Instance(Key, root)
	}
	return root
}

// nodeContainer returns the DI scope attached to n, creating one parented to
// the nearest ancestor scope (or the root system's container) if absent.
// Must hold nodeMu.
func nodeContainer(n *dom.Node) *container.Container {
	if v, ok := n.Attached(ContainerKey); ok {
		return v.(*container.Container)
	}
	parent := findContainer(n.Parent())
	if parent == nil {
		parent = rootInstance().Container()
	}
	scope := container.NewScoped(parent)
	n.SetAttached(ContainerKey, scope)
	return scope
}

// findContainer walks the ownership chain from n upward for an attached DI
// scope.
func findContainer(n *dom.Node) *container.Container {
	for cur := n; cur != nil; cur = cur.Parent() {
		if v, ok := cur.Attached(ContainerKey); ok {
			return v.(*container.Container)
		}
	}
	return nil
}
