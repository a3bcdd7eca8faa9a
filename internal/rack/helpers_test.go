package rack

import (
	"github.com/Faultbox/rackmodel/internal/model"
	"github.com/Faultbox/rackmodel/pkg/math"
)

var rackBlock = model.MustParseLocation("survivalist:rack")

type itemsState struct {
	items ItemsData
}

func (itemsState) BlockName() model.ResourceLocation { return rackBlock }

func (s itemsState) RackItems() ItemsData { return s.items }

type plainState struct{}

func (plainState) BlockName() model.ResourceLocation { return rackBlock }

// countingItem counts quad queries so tests can tell a cache hit from a
// recompute.
type countingItem struct {
	inner     *model.SimpleBakedModel
	quadCalls int
	fixed     *math.Mat4
}

func newCountingItem(name string, fixed *math.Mat4) *countingItem {
	sprite := &model.Sprite{Name: model.MustParseLocation(name), Width: 16, Height: 16, MaxU: 1, MaxV: 1}
	return &countingItem{
		inner: model.NewSimpleBakedModel(model.SimpleModelData{
			GeneralQuads: model.FlatItemQuads(sprite, 0),
			Particle:     sprite,
		}),
		fixed: fixed,
	}
}

func (c *countingItem) Quads(state model.BlockState, side model.Facing, rand int64) []model.Quad {
	c.quadCalls++
	return c.inner.Quads(state, side, rand)
}

func (c *countingItem) AmbientOcclusion() bool { return false }

func (c *countingItem) Gui3D() bool { return false }

func (c *countingItem) BuiltInRenderer() bool { return false }

func (c *countingItem) ParticleTexture() *model.Sprite { return c.inner.ParticleTexture() }

func (c *countingItem) Overrides() []model.ItemOverride { return nil }

func (c *countingItem) HandlePerspective(p model.Perspective) (model.BakedModel, *math.Mat4) {
	if p == model.PerspectiveFixed {
		return c, c.fixed
	}
	return c, nil
}

type mapResolver struct {
	models map[model.ResourceLocation]model.BakedModel
	calls  int
}

func (r *mapResolver) ItemModel(stack model.ItemStack) model.BakedModel {
	r.calls++
	if m, ok := r.models[stack.Item]; ok {
		return m
	}
	return nil
}

func stack(name string, count int) model.ItemStack {
	return model.ItemStack{Item: model.MustParseLocation(name), Count: count}
}

func emptyBase() model.BakedModel {
	return (&model.MissingModel{}).Bake(nil, model.FormatBlock, nil)
}
