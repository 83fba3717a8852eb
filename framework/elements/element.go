// Package elements provides the element-definition primitives the design
// system drives: constructable element identities, definitions built from
// partial definitions, presentations, and the platform custom-element
// registry that enforces define-at-most-once per tag name.
package elements

import (
	"fmt"

	"github.com/google/uuid"
)

// ── Element types ─────────────────────────────────────────────────────────────

// Constructor builds one element instance. What it returns is opaque to the
// registration pipeline.
type Constructor func() any

// Type is an opaque constructable identity for one kind of custom element.
// Identity is pointer identity: two Types are the same element kind only if
// they are the same *Type.
//
// When one shared Type must be registered under several tag names, each
// registration derives a fresh identity wrapper (see Derive) so the
// type→tag registry stays one entry per identity.
//
//	// FAST: class MyButton extends FoundationElement {}
//	var Button = elements.NewType("Button", func() any { return &button{} })
type Type struct {
	name string
	ctor Constructor
	base *Type
	id   string
}

// NewType creates a root element type.
func NewType(name string, ctor Constructor) *Type {
	if ctor == nil {
		ctor = func() any { return &GenericElement{} }
	}
	return &Type{name: name, ctor: ctor, id: uuid.NewString()}
}

// Derive creates a distinct identity sharing base's constructor and ancestry.
//
//	// FAST: class extends elementDefinitionType {}  (per-registration subclass)
//
// The derived identity carries its own id so registries keyed by *Type treat
// it as a new element kind.
func Derive(base *Type) *Type {
	id := uuid.NewString()
	return &Type{
		name: fmt.Sprintf("%s#%s", base.name, id[:8]),
		ctor: base.ctor,
		base: base,
		id:   id,
	}
}

// Name returns the descriptive (not tag) name of the type.
func (t *Type) Name() string { return t.name }

// Base returns the type this identity was derived from, or nil for a root.
func (t *Type) Base() *Type { return t.base }

// ID returns the unique identity string of this type.
func (t *Type) ID() string { return t.id }

// New constructs one element instance.
func (t *Type) New() any { return t.ctor() }

// GenericElement is the instance produced by BaseElement's constructor.
type GenericElement struct{}

// BaseElement is the shared generic element type. Registering it directly
// always derives a per-registration identity, since many unrelated tags are
// expected to reuse it.
//
//	// FAST: FoundationElement
var BaseElement = NewType("base-element", func() any { return &GenericElement{} })
