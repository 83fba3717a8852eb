package elements

// ── Shadow root mode ──────────────────────────────────────────────────────────

// ShadowRootMode controls how an element's shadow root is created.
type ShadowRootMode string

const (
	// ShadowRootDefault defers to the platform default ("open").
	ShadowRootDefault ShadowRootMode = ""
	// ShadowRootOpen creates an externally reachable shadow root.
	ShadowRootOpen ShadowRootMode = "open"
	// ShadowRootClosed creates a sealed shadow root.
	ShadowRootClosed ShadowRootMode = "closed"
	// ShadowRootNone renders to light DOM.
	ShadowRootNone ShadowRootMode = "none"
)

// ── Definitions ───────────────────────────────────────────────────────────────

// PartialDefinition is the author-supplied portion of an element definition:
// everything except the resolved tag name and type, which the registration
// pipeline supplies.
//
//	// FAST: PartialFASTElementDefinition (name omitted)
type PartialDefinition struct {
	Template      string
	Styles        string
	Attributes    []string
	ShadowOptions ShadowRootMode
}

// Definition is the final, immutable description of one custom element.
// It is constructed once per registration (from a PartialDefinition plus the
// resolved tag name) and handed to a Platform to materialize.
type Definition struct {
	name       string
	typ        *Type
	template   string
	styles     string
	attributes []string
	shadow     ShadowRootMode
}

// NewDefinition combines a partial definition with its resolved tag name and
// type. The shadow mode falls back, in order: partial override, system mode,
// platform default.
func NewDefinition(name string, typ *Type, partial PartialDefinition, systemMode ShadowRootMode) *Definition {
	shadow := partial.ShadowOptions
	if shadow == ShadowRootDefault {
		shadow = systemMode
	}
	if shadow == ShadowRootDefault {
		shadow = ShadowRootOpen
	}
	attrs := make([]string, len(partial.Attributes))
	copy(attrs, partial.Attributes)
	return &Definition{
		name:       name,
		typ:        typ,
		template:   partial.Template,
		styles:     partial.Styles,
		attributes: attrs,
		shadow:     shadow,
	}
}

// Name returns the tag name the definition will be filed under.
func (d *Definition) Name() string { return d.name }

// Type returns the element type identity.
func (d *Definition) Type() *Type { return d.typ }

// Template returns the markup template source.
func (d *Definition) Template() string { return d.template }

// Styles returns the stylesheet source.
func (d *Definition) Styles() string { return d.styles }

// Attributes returns the observed attribute names.
func (d *Definition) Attributes() []string {
	out := make([]string, len(d.attributes))
	copy(out, d.attributes)
	return out
}

// ShadowRootMode returns the resolved shadow mode.
func (d *Definition) ShadowRootMode() ShadowRootMode { return d.shadow }

// Define materializes the definition on the platform registry.
//
//	// FAST: definition.define(registry)
func (d *Definition) Define(p *Platform) error {
	return p.Define(d.name, d)
}

// ── Presentations ─────────────────────────────────────────────────────────────

// Presentation carries the default template and styles applied to every
// instance of an element tag within a DI scope.
//
//	// FAST: ComponentPresentation
type Presentation interface {
	Template() string
	Styles() string
}

// DefaultPresentation is the standard Presentation implementation.
type DefaultPresentation struct {
	template string
	styles   string
}

// NewPresentation builds a DefaultPresentation from template and styles.
func NewPresentation(template, styles string) *DefaultPresentation {
	return &DefaultPresentation{template: template, styles: styles}
}

func (p *DefaultPresentation) Template() string { return p.template }
func (p *DefaultPresentation) Styles() string   { return p.styles }

// PresentationKey returns the DI key presentations are registered under for
// a given tag name.
//
//	// FAST: ComponentPresentation.keyFrom(tagName)
func PresentationKey(tag string) string {
	return "presentation:" + tag
}
