package design

import (
	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/elements"
)

// ── Element composition ───────────────────────────────────────────────────────

// ComposeParams describes a reusable element registration: which type to
// register, what it looks like by default, and under what name.
type ComposeParams struct {
	// BaseName is the un-prefixed element name ("button"). The registration
	// prefix of the active design system is applied at registration time.
	BaseName string

	// Name, when set, is used verbatim instead of the prefixed base name.
	Name string

	// Type is the element type identity. Defaults to elements.BaseElement,
	// which always receives a per-registration identity.
	Type *elements.Type

	// BaseType optionally files an ancestor type under the resolved tag.
	BaseType *elements.Type

	// Partial supplies template, styles, observed attributes, and shadow
	// options for the final definition.
	Partial elements.PartialDefinition

	// Presentation overrides the presentation derived from Partial.
	Presentation elements.Presentation
}

// Compose turns element parameters into a registration value. Registering
// the result through a design system defers a TryDefineElement call into the
// active pass; the entry callback attaches the presentation and builds the
// final definition.
//
//	// FAST: Button.compose({ baseName: "button", template, styles })
//	ds.Register(design.Compose(design.ComposeParams{
//	    BaseName: "button",
//	    Type:     Button,
//	    Partial:  elements.PartialDefinition{Template: buttonTemplate},
//	}))
func Compose(p ComposeParams) container.RegistrarFunc {
	return func(c *container.Container) {
		ectx, ok := container.ContextAs[*ElementContext](c)
		if !ok {
			panic("design: Compose registration used outside a design system Register pass")
		}

		typ := p.Type
		if typ == nil {
			typ = elements.BaseElement
		}
		name := p.Name
		if name == "" {
			name = ectx.PrefixedName(p.BaseName)
		}

		err := ectx.TryDefineElement(ElementDefinitionParams{
			Name:     name,
			Type:     typ,
			BaseType: p.BaseType,
			Callback: func(e *DefinitionEntry) {
				pres := p.Presentation
				if pres == nil {
					pres = elements.NewPresentation(p.Partial.Template, p.Partial.Styles)
				}
				e.DefinePresentation(pres)
				e.DefineElement(p.Partial)
			},
		})
		if err != nil {
			panic(err)
		}
	}
}
