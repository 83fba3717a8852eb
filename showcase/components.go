// Package showcase is a small component kit exercising the design-system
// registration pipeline: two dedicated element types plus two generic pieces
// that share the base element type and rely on per-registration identities.
package showcase

import (
	"github.com/uilab/go-fast/framework/design"
	"github.com/uilab/go-fast/framework/elements"
)

// ── Element types ─────────────────────────────────────────────────────────────

// ButtonElement is the instance type constructed for every button.
type ButtonElement struct {
	Appearance string
}

// CardElement is the instance type constructed for every card.
type CardElement struct{}

// Button and Card are the kit's registrable element identities.
var (
	Button = elements.NewType("Button", func() any { return &ButtonElement{} })
	Card   = elements.NewType("Card", func() any { return &CardElement{} })
)

// ── Definitions ───────────────────────────────────────────────────────────────

const (
	buttonTemplate = `<button class="control" part="control"><slot></slot></button>`
	buttonStyles   = `:host { display: inline-block } .control { cursor: pointer }`

	cardTemplate = `<div class="card" part="card"><slot></slot></div>`
	cardStyles   = `:host { display: block } .card { border-radius: 4px }`

	badgeTemplate = `<span class="badge" part="badge"><slot></slot></span>`
	chipTemplate  = `<span class="chip" part="chip"><slot></slot></span>`
)

// ButtonDefinition registers the button under "<prefix>-button".
func ButtonDefinition() any {
	return design.Compose(design.ComposeParams{
		BaseName: "button",
		Type:     Button,
		Partial: elements.PartialDefinition{
			Template:   buttonTemplate,
			Styles:     buttonStyles,
			Attributes: []string{"appearance", "disabled"},
		},
	})
}

// CardDefinition registers the card under "<prefix>-card".
func CardDefinition() any {
	return design.Compose(design.ComposeParams{
		BaseName: "card",
		Type:     Card,
		Partial: elements.PartialDefinition{
			Template: cardTemplate,
			Styles:   cardStyles,
		},
	})
}

// BadgeDefinition and ChipDefinition both build on the shared base element
// type; each registration receives its own identity, so the two tags do not
// clobber each other's reverse lookup.
func BadgeDefinition() any {
	return design.Compose(design.ComposeParams{
		BaseName: "badge",
		Partial:  elements.PartialDefinition{Template: badgeTemplate},
	})
}

func ChipDefinition() any {
	return design.Compose(design.ComposeParams{
		BaseName: "chip",
		Partial:  elements.PartialDefinition{Template: chipTemplate},
	})
}

// Kit returns every registration in catalog order.
func Kit() []any {
	return []any{
		ButtonDefinition(),
		CardDefinition(),
		BadgeDefinition(),
		ChipDefinition(),
	}
}
