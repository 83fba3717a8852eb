package design_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/design"
	"github.com/uilab/go-fast/framework/dom"
	"github.com/uilab/go-fast/framework/elements"
	"github.com/uilab/go-fast/framework/tokens"
)

// isolated builds a design system with its own registry and platform so
// tests never observe each other through process-wide state.
func isolated(t *testing.T) (*design.DesignSystem, *design.TagRegistry, *elements.Platform) {
	t.Helper()
	reg := design.NewTagRegistry()
	platform := elements.NewPlatform()
	ds := design.New(container.New()).
		WithTagRegistry(reg).
		WithPlatform(platform).
		WithDesignTokenRoot(nil)
	return ds, reg, platform
}

func composeButton(name string, typ *elements.Type) any {
	return design.Compose(design.ComposeParams{
		Name:    name,
		Type:    typ,
		Partial: elements.PartialDefinition{Template: "<button></button>"},
	})
}

// ── End-to-end scenario ───────────────────────────────────────────────────────

func TestRegister_EndToEnd(t *testing.T) {
	ds, _, platform := isolated(t)
	button := elements.NewType("Button", nil)

	ds.WithPrefix("my")
	got := ds.Register(design.Compose(design.ComposeParams{
		BaseName: "button",
		Type:     button,
		Partial:  elements.PartialDefinition{Template: "<button></button>"},
	}))

	require.Same(t, ds, got, "Register is chainable")
	require.Equal(t, "my-button", ds.TagFor(button))
	require.True(t, platform.Defined("my-button"))
	require.Equal(t, 1, platform.Count())

	// Re-registering the same logical component is idempotent.
	ds.Register(design.Compose(design.ComposeParams{
		BaseName: "button",
		Type:     button,
		Partial:  elements.PartialDefinition{Template: "<button></button>"},
	}))
	require.Equal(t, 1, platform.Count(), "no second platform definition")
	require.Equal(t, "my-button", ds.TagFor(button))
}

// ── Ordering ──────────────────────────────────────────────────────────────────

func TestRegister_DefinitionsMaterializeInCallOrder(t *testing.T) {
	ds, _, platform := isolated(t)

	ds.Register(
		composeButton("fast-a", elements.NewType("A", nil)),
		composeButton("fast-b", elements.NewType("B", nil)),
		composeButton("fast-c", elements.NewType("C", nil)),
	)

	require.Equal(t, []string{"fast-a", "fast-b", "fast-c"}, platform.DefinitionOrder())
}

func TestRegister_CallbacksRunBeforeAnyMaterialization(t *testing.T) {
	ds, _, platform := isolated(t)
	typ := elements.NewType("A", nil)

	var definedAtCallback int
	ds.Register(container.RegistrarFunc(func(c *container.Container) {
		ectx, ok := container.ContextAs[*design.ElementContext](c)
		require.True(t, ok)
		require.NoError(t, ectx.TryDefineElement(design.ElementDefinitionParams{
			Name: "fast-a",
			Type: typ,
			Callback: func(e *design.DefinitionEntry) {
				definedAtCallback = platform.Count()
				e.DefineElement(elements.PartialDefinition{})
			},
		}))
	}))

	require.Equal(t, 0, definedAtCallback, "callbacks run in phase two, before defines")
	require.True(t, platform.Defined("fast-a"))
}

func TestRegister_EntryWithoutDefinitionIsNotMaterialized(t *testing.T) {
	ds, _, platform := isolated(t)

	ds.Register(container.RegistrarFunc(func(c *container.Container) {
		ectx, _ := container.ContextAs[*design.ElementContext](c)
		// Callback never calls DefineElement.
		require.NoError(t, ectx.TryDefineElement(design.ElementDefinitionParams{
			Name:     "fast-empty",
			Type:     elements.NewType("E", nil),
			Callback: func(e *design.DefinitionEntry) {},
		}))
	}))

	require.False(t, platform.Defined("fast-empty"))
}

// ── Configuration ─────────────────────────────────────────────────────────────

func TestWithPrefix_AffectsOnlyLaterRegistrations(t *testing.T) {
	ds, _, _ := isolated(t)
	first := elements.NewType("First", nil)
	second := elements.NewType("Second", nil)

	ds.Register(design.Compose(design.ComposeParams{BaseName: "one", Type: first}))
	ds.WithPrefix("kit")
	ds.Register(design.Compose(design.ComposeParams{BaseName: "two", Type: second}))

	require.Equal(t, "fast-one", ds.TagFor(first))
	require.Equal(t, "kit-two", ds.TagFor(second))
}

func TestWithShadowRootMode_FlowsIntoDefinitions(t *testing.T) {
	ds, _, platform := isolated(t)
	typ := elements.NewType("Button", nil)

	ds.WithShadowRootMode(elements.ShadowRootClosed)
	ds.Register(composeButton("fast-button", typ))

	def, ok := platform.Get("fast-button")
	require.True(t, ok)
	require.Equal(t, elements.ShadowRootClosed, def.ShadowRootMode())
}

func TestWithElementDisambiguation_CustomPolicy(t *testing.T) {
	ds, _, platform := isolated(t)
	typeA := elements.NewType("A", nil)
	typeB := elements.NewType("B", nil)

	ds.WithElementDisambiguation(design.RenameWithSuffix("-2"))
	ds.Register(composeButton("fast-button", typeA))
	ds.Register(composeButton("fast-button", typeB))

	require.Equal(t, "fast-button", ds.TagFor(typeA))
	require.Equal(t, "fast-button-2", ds.TagFor(typeB))
	require.True(t, platform.Defined("fast-button-2"))
}

// ── Services through Register ─────────────────────────────────────────────────

func TestRegister_ForwardsServiceValuesToContainer(t *testing.T) {
	ds, _, _ := isolated(t)

	ds.Register(container.RegistrarFunc(func(c *container.Container) {
		c.Instance("icon-set", "sharp")
	}))

	require.Equal(t, "sharp", ds.Container().Make("icon-set"))
}

// ── Design-token root ─────────────────────────────────────────────────────────

func TestRegister_TokenRootRegisteredOnceOnFirstCall(t *testing.T) {
	rootNode := dom.NewDocument()
	defer tokens.DeregisterRoot(rootNode)

	ds := design.New(container.New()).
		WithTagRegistry(design.NewTagRegistry()).
		WithPlatform(elements.NewPlatform()).
		WithDesignTokenRoot(rootNode)

	require.False(t, tokens.Registered(rootNode))
	ds.Register()
	require.True(t, tokens.Registered(rootNode))

	before := len(tokens.Roots())
	ds.Register()
	require.Equal(t, before, len(tokens.Roots()), "token root registration happens once")
}

func TestRegister_TokenRootDisabled(t *testing.T) {
	ds, _, _ := isolated(t) // isolated() disables the token root
	before := len(tokens.Roots())
	ds.Register()
	require.Equal(t, before, len(tokens.Roots()))
}

// ── Locator ───────────────────────────────────────────────────────────────────

func TestGetOrCreate_RootIsAProcessSingleton(t *testing.T) {
	a := design.GetOrCreate()
	b := design.GetOrCreate()
	require.Same(t, a, b)
	require.Nil(t, a.Owner())
}

func TestGetOrCreate_SameNodeSameInstance(t *testing.T) {
	doc := dom.NewDocument()
	node := doc.AppendChild(dom.NewElement("div"))

	a := design.GetOrCreate(node)
	b := design.GetOrCreate(node)
	require.Same(t, a, b)
	require.Same(t, node, a.Owner())
}

func TestGetOrCreate_DistinctNodesDistinctInstances(t *testing.T) {
	docA := dom.NewDocument()
	docB := dom.NewDocument()
	nodeA := docA.AppendChild(dom.NewElement("div"))
	nodeB := docB.AppendChild(dom.NewElement("div"))

	require.NotSame(t, design.GetOrCreate(nodeA), design.GetOrCreate(nodeB))
}

func TestGetOrCreate_ScopedContainerChainsToRoot(t *testing.T) {
	doc := dom.NewDocument()
	node := doc.AppendChild(dom.NewElement("div"))

	ds := design.GetOrCreate(node)
	root := design.GetOrCreate()
	require.Same(t, root.Container(), ds.Container().Root())
}

func TestResponsibleFor_DescendantResolvesToAncestorSystem(t *testing.T) {
	doc := dom.NewDocument()
	host := doc.AppendChild(dom.NewElement("div"))
	leaf := host.AppendChild(dom.NewElement("span"))

	ds := design.GetOrCreate(host)
	require.Same(t, ds, design.ResponsibleFor(leaf))
}

func TestResponsibleFor_AttachedSystemWins(t *testing.T) {
	doc := dom.NewDocument()
	host := doc.AppendChild(dom.NewElement("div"))

	ds := design.GetOrCreate(host)
	require.Same(t, ds, design.ResponsibleFor(host))
}

func TestResponsibleFor_DetachedNodeFallsBackToRoot(t *testing.T) {
	orphan := dom.NewElement("span")
	require.Same(t, design.GetOrCreate(), design.ResponsibleFor(orphan))
}

// ── Package-level TagFor ──────────────────────────────────────────────────────

func TestPackageTagFor_UsesDefaultRegistry(t *testing.T) {
	typ := elements.NewType("CatalogItem", nil)
	require.Empty(t, design.TagFor(typ))

	ds := design.New(container.New()).
		WithPlatform(elements.NewPlatform()).
		WithDesignTokenRoot(nil)
	ds.Register(composeButton("fast-catalog-item", typ))

	require.Equal(t, "fast-catalog-item", design.TagFor(typ))
}
