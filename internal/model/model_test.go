package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rackmodel/internal/transform"
	"github.com/Faultbox/rackmodel/pkg/math"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in   string
		want ResourceLocation
	}{
		{"minecraft:block/furnace", ResourceLocation{"minecraft", "block/furnace"}},
		{"block/furnace", ResourceLocation{"minecraft", "block/furnace"}},
		{"ModID:Blocks/Foo", ResourceLocation{"modid", "blocks/foo"}},
		{":stone", ResourceLocation{"minecraft", "stone"}},
	}
	for _, tt := range tests {
		got, err := ParseLocation(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "modid:", "mod id:foo", "a:b:c"} {
		_, err := ParseLocation(bad)
		assert.Error(t, err, bad)
	}
}

func TestLocationHelpers(t *testing.T) {
	loc := MustParseLocation("survivalist:rack")
	assert.Equal(t, "survivalist:block/rack", loc.WithPathPrefix("block/").String())
	assert.True(t, ResourceLocation{}.IsZero())
	assert.Panics(t, func() { MustParseLocation("bad name") })
}

func TestItemStackIsEmpty(t *testing.T) {
	assert.True(t, ItemStack{}.IsEmpty())
	assert.True(t, ItemStack{Item: MustParseLocation("apple"), Count: 0}.IsEmpty())
	assert.False(t, ItemStack{Item: MustParseLocation("apple"), Count: 1}.IsEmpty())
}

func TestRenderLayerContext(t *testing.T) {
	defer SetRenderLayer(LayerNone)

	assert.Equal(t, LayerNone, CurrentRenderLayer())
	SetRenderLayer(LayerCutout)
	assert.Equal(t, LayerCutout, CurrentRenderLayer())
	assert.Equal(t, "cutout", CurrentRenderLayer().String())
}

func TestSimpleBakedModel(t *testing.T) {
	fixed := math.Scale(0.5, 0.5, 0.5)
	up := CubeFaceQuad(Up, MissingSprite, FormatBlock)
	items := FlatItemQuads(MissingSprite, 0)
	m := NewSimpleBakedModel(SimpleModelData{
		FaceQuads:    map[Facing][]Quad{Up: {up}},
		GeneralQuads: items,
		Perspectives: map[Perspective]math.Mat4{PerspectiveFixed: fixed},
	})

	assert.Equal(t, []Quad{up}, m.Quads(nil, Up, 0))
	assert.Empty(t, m.Quads(nil, Down, 0))
	assert.Equal(t, items, m.Quads(nil, NoFacing, 0))
	assert.Same(t, MissingSprite, m.ParticleTexture())

	got, mat := m.HandlePerspective(PerspectiveFixed)
	assert.Same(t, m, got)
	require.NotNil(t, mat)
	assert.Equal(t, fixed, *mat)

	_, mat = m.HandlePerspective(PerspectiveGUI)
	assert.Nil(t, mat)
}

func TestMissingModelBake(t *testing.T) {
	var missing MissingModel
	baked := missing.Bake(nil, FormatBlock, nil)
	for _, f := range Cardinals {
		quads := baked.Quads(nil, f, 0)
		require.Len(t, quads, 1)
		assert.Same(t, MissingSprite, quads[0].Sprite)
	}
	assert.Same(t, MissingSprite, baked.ParticleTexture())
	assert.Empty(t, missing.Dependencies())
}

func TestBaseTransformOf(t *testing.T) {
	_, ok := BaseTransformOf(nil)
	assert.False(t, ok)

	tr, ok := BaseTransformOf(transform.FromMatrix(math.Translate(1, 0, 0)))
	assert.True(t, ok)
	assert.Equal(t, math.Vec3{X: 1}, tr.Translation())
}
