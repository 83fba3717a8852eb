package design

import (
	"fmt"

	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/elements"
)

// ── Element registration context ──────────────────────────────────────────────

// DefineCallback is the deferred configuration hook of one pending element
// definition. It runs after the whole registration pass has been forwarded
// to the container, and the entry it receives is the only surface it may
// touch: presentations, the final definition, and tag lookups.
type DefineCallback func(entry *DefinitionEntry)

// ElementDefinitionParams describes one TryDefineElement attempt.
type ElementDefinitionParams struct {
	// Name is the full attempted tag name (usually prefix + base name; see
	// ElementContext.PrefixedName).
	Name string

	// Type is the element type identity being registered.
	Type *elements.Type

	// BaseType optionally files an ancestor type under the resolved tag as
	// well, enabling TagFor lookups through the ancestor.
	BaseType *elements.Type

	// Callback is invoked during phase two of the registration pass.
	Callback DefineCallback
}

// ElementContext is the per-registration-pass context handed to registration
// values through the container. Its one real operation is TryDefineElement;
// everything else is configuration the element definitions read.
//
//	// FAST: ElementDefinitionContext
type ElementContext struct {
	scope    *container.Container
	prefix   string
	shadow   elements.ShadowRootMode
	policy   DisambiguationPolicy
	registry *TagRegistry
	pending  []*DefinitionEntry
}

// NewElementContext builds a context bound to a DI scope. A nil policy means
// SkipOnCollision; a nil registry means the process-wide default.
func NewElementContext(scope *container.Container, prefix string, shadow elements.ShadowRootMode, policy DisambiguationPolicy, registry *TagRegistry) *ElementContext {
	if policy == nil {
		policy = SkipOnCollision
	}
	if registry == nil {
		registry = defaultRegistry
	}
	return &ElementContext{
		scope:    scope,
		prefix:   prefix,
		shadow:   shadow,
		policy:   policy,
		registry: registry,
	}
}

// ElementPrefix returns the tag prefix of the owning design system.
func (c *ElementContext) ElementPrefix() string { return c.prefix }

// PrefixedName joins the context prefix with an element base name.
//
//	ctx.PrefixedName("button")  // "fast-button"
func (c *ElementContext) PrefixedName(baseName string) string {
	return c.prefix + "-" + baseName
}

// ShadowRootMode returns the shadow mode configured for this pass.
func (c *ElementContext) ShadowRootMode() elements.ShadowRootMode { return c.shadow }

// Container returns the DI scope of this pass.
func (c *ElementContext) Container() *container.Container { return c.scope }

// TagFor returns the tag name on file for a type, or "" for an unregistered
// type. Only meaningful for types whose registration pass has completed.
func (c *ElementContext) TagFor(t *elements.Type) string {
	tag, _ := c.registry.TagFor(t)
	return tag
}

// Pending returns the definition entries produced so far, in the order their
// TryDefineElement calls were issued.
func (c *ElementContext) Pending() []*DefinitionEntry { return c.pending }

// TryDefineElement runs the disambiguation loop for one element registration.
//
// While the attempted name has an existing registrant, the policy decides:
// rename retries under a new name, SkipDefine keeps the entry but marks it
// "do not define at the platform level", and Ignore aborts the attempt with
// no side effects at all. Registry writes happen only after the loop settles
// so other registrations in the same pass observe a consistent registry.
func (c *ElementContext) TryDefineElement(params ElementDefinitionParams) error {
	if params.Type == nil {
		return fmt.Errorf("design: TryDefineElement(%q): nil element type", params.Name)
	}

	tag := params.Name
	typ := params.Type
	needsDefine := true

	existing, found := c.registry.TypeFor(tag)
	for found {
		outcome := c.policy(tag, typ, existing)
		switch outcome.kind {
		case outcomeIgnore:
			return nil
		case outcomeSkipDefine:
			needsDefine = false
			found = false
		case outcomeRename:
			tag = outcome.name
			existing, found = c.registry.TypeFor(tag)
		default:
			return fmt.Errorf("%w for %q", ErrInvalidOutcome, tag)
		}
	}

	if needsDefine {
		// One entry per identity in the type→tag direction: a type already
		// filed under another tag, or the shared base element type, gets a
		// fresh per-registration identity so its earlier tag survives.
		if onFile, ok := c.registry.TagFor(typ); (ok && onFile != tag) || typ == elements.BaseElement {
			typ = elements.Derive(typ)
		}
		c.registry.record(tag, typ)
		if params.BaseType != nil {
			c.registry.recordAlias(params.BaseType, tag)
		}
	}

	c.pending = append(c.pending, &DefinitionEntry{
		scope:      c.scope,
		tag:        tag,
		typ:        typ,
		shadow:     c.shadow,
		callback:   params.Callback,
		willDefine: needsDefine,
		registry:   c.registry,
	})
	return nil
}

// ── Definition entries ────────────────────────────────────────────────────────

// DefinitionEntry is the deferred record of one pending element definition.
// Phase one (TryDefineElement) creates it; phase two runs its callback —
// which may attach a presentation and must build the final definition — and
// then the design system materializes every entry still marked for platform
// definition, in creation order.
type DefinitionEntry struct {
	scope      *container.Container
	tag        string
	typ        *elements.Type
	shadow     elements.ShadowRootMode
	callback   DefineCallback
	willDefine bool
	definition *elements.Definition
	registry   *TagRegistry
}

// Tag returns the resolved (possibly renamed) tag name.
func (e *DefinitionEntry) Tag() string { return e.tag }

// Type returns the element type identity, post-derivation.
func (e *DefinitionEntry) Type() *elements.Type { return e.typ }

// ShadowRootMode returns the shadow mode the entry inherited from its pass.
func (e *DefinitionEntry) ShadowRootMode() elements.ShadowRootMode { return e.shadow }

// Scope returns the DI scope the entry was registered against.
func (e *DefinitionEntry) Scope() *container.Container { return e.scope }

// WillDefine reports whether the entry is marked for platform definition.
func (e *DefinitionEntry) WillDefine() bool { return e.willDefine }

// Definition returns the finalized definition, or nil before the callback
// has built one.
func (e *DefinitionEntry) Definition() *elements.Definition { return e.definition }

// TagFor delegates to the registry backing this entry's pass.
func (e *DefinitionEntry) TagFor(t *elements.Type) string {
	tag, _ := e.registry.TagFor(t)
	return tag
}

// DefinePresentation registers a presentation for this entry's tag against
// the entry's DI scope.
//
//	// FAST: context.definePresentation(presentation)
func (e *DefinitionEntry) DefinePresentation(p elements.Presentation) {
	e.scope.Instance(elements.PresentationKey(e.tag), p)
}

// DefineElement builds the final, immutable element definition from a
// partial definition plus the resolved tag name, and fills the entry's
// definition slot.
//
//	// FAST: context.defineElement(definition)
func (e *DefinitionEntry) DefineElement(partial elements.PartialDefinition) *elements.Definition {
	e.definition = elements.NewDefinition(e.tag, e.typ, partial, e.shadow)
	return e.definition
}
