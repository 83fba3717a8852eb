package elements_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uilab/go-fast/framework/elements"
)

func TestNewDefinition_ShadowModeFallbacks(t *testing.T) {
	typ := elements.NewType("Button", nil)

	tests := []struct {
		name    string
		partial elements.ShadowRootMode
		system  elements.ShadowRootMode
		want    elements.ShadowRootMode
	}{
		{"platform default", elements.ShadowRootDefault, elements.ShadowRootDefault, elements.ShadowRootOpen},
		{"system mode wins over default", elements.ShadowRootDefault, elements.ShadowRootClosed, elements.ShadowRootClosed},
		{"partial override wins over system", elements.ShadowRootNone, elements.ShadowRootClosed, elements.ShadowRootNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := elements.NewDefinition("fast-button", typ,
				elements.PartialDefinition{ShadowOptions: tt.partial}, tt.system)
			require.Equal(t, tt.want, def.ShadowRootMode())
		})
	}
}

func TestDefinition_Accessors(t *testing.T) {
	typ := elements.NewType("Button", nil)
	def := elements.NewDefinition("fast-button", typ, elements.PartialDefinition{
		Template:   "<button></button>",
		Styles:     ":host{}",
		Attributes: []string{"appearance"},
	}, elements.ShadowRootDefault)

	require.Equal(t, "fast-button", def.Name())
	require.Same(t, typ, def.Type())
	require.Equal(t, "<button></button>", def.Template())
	require.Equal(t, ":host{}", def.Styles())
	require.Equal(t, []string{"appearance"}, def.Attributes())
}

func TestPlatform_DefineOncePerTag(t *testing.T) {
	p := elements.NewPlatform()
	typ := elements.NewType("Button", nil)
	def := elements.NewDefinition("fast-button", typ, elements.PartialDefinition{}, elements.ShadowRootDefault)

	require.NoError(t, def.Define(p))
	require.True(t, p.Defined("fast-button"))
	require.Equal(t, 1, p.Count())

	err := def.Define(p)
	require.ErrorIs(t, err, elements.ErrDuplicateDefinition)
	require.Equal(t, 1, p.Count())
}

func TestPlatform_NamesSorted(t *testing.T) {
	p := elements.NewPlatform()
	typ := elements.NewType("X", nil)
	for _, tag := range []string{"fast-card", "fast-badge", "fast-button"} {
		def := elements.NewDefinition(tag, typ, elements.PartialDefinition{}, elements.ShadowRootDefault)
		require.NoError(t, p.Define(tag, def))
	}
	require.Equal(t, []string{"fast-badge", "fast-button", "fast-card"}, p.Names())
}

func TestPresentationKey(t *testing.T) {
	require.Equal(t, "presentation:fast-button", elements.PresentationKey("fast-button"))
}

func TestNewPresentation(t *testing.T) {
	p := elements.NewPresentation("<b></b>", ":host{}")
	require.Equal(t, "<b></b>", p.Template())
	require.Equal(t, ":host{}", p.Styles())
}
