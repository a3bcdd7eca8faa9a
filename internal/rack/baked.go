package rack

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
	"github.com/Faultbox/rackmodel/internal/transform"
	"github.com/Faultbox/rackmodel/pkg/math"
)

// BakedModel renders a rack: the base block geometry on the solid layer and
// the contained items, placed by their slot transforms, on the cutout layer.
//
// Transformed item quads are cached per slot for the lifetime of the model;
// a new bake produces a new model with empty caches.
type BakedModel struct {
	generation uuid.UUID
	particle   *model.Sprite
	base       model.BakedModel
	transforms [SlotCount]transform.Transform
	caches     [SlotCount]*SlotCache
	items      model.ItemModelResolver
	log        *zap.Logger
}

// NewBakedModel creates a rack model over an already baked base model.
// items may be nil, in which case no item geometry is produced.
func NewBakedModel(particle *model.Sprite, base model.BakedModel, transforms [SlotCount]transform.Transform, items model.ItemModelResolver, cacheCapacity int) *BakedModel {
	if particle == nil {
		particle = model.MissingSprite
	}
	b := &BakedModel{
		generation: uuid.New(),
		particle:   particle,
		base:       base,
		transforms: transforms,
		items:      items,
	}
	for i := range b.caches {
		b.caches[i] = NewSlotCache(cacheCapacity)
	}
	b.log = logger.Named("rack").With(zap.Stringer("generation", b.generation))
	return b
}

// Quads implements model.BakedModel. It reads the renderer's current layer
// and forwards to QuadsForLayer.
func (b *BakedModel) Quads(state model.BlockState, side model.Facing, rand int64) []model.Quad {
	return b.QuadsForLayer(state, side, rand, model.CurrentRenderLayer())
}

// QuadsForLayer returns the geometry for one render pass:
//   - solid: the base model's quads for side;
//   - cutout with NoFacing and an ItemsState: every occupied slot's item
//     quads, in slot order;
//   - anything else: nothing.
func (b *BakedModel) QuadsForLayer(state model.BlockState, side model.Facing, rand int64, layer model.RenderLayer) []model.Quad {
	switch {
	case layer == model.LayerSolid:
		return append([]model.Quad(nil), b.base.Quads(state, side, rand)...)
	case layer == model.LayerCutout && side == model.NoFacing:
		is, ok := state.(ItemsState)
		if !ok {
			return nil
		}
		return b.itemQuads(is.RackItems(), rand)
	}
	return nil
}

func (b *BakedModel) itemQuads(items ItemsData, rand int64) []model.Quad {
	if b.items == nil {
		return nil
	}

	var quads []model.Quad
	for slot, stack := range items {
		if stack.IsEmpty() {
			continue
		}

		resolved := b.items.ItemModel(stack)
		if resolved == nil {
			b.log.Debug("no item model", zap.Int("slot", slot), zap.Stringer("item", stack.Item))
			continue
		}
		itemModel, perspective := resolved.HandlePerspective(model.PerspectiveFixed)

		slotQuads, hit := b.caches[slot].GetOrCompute(itemModel, func() []model.Quad {
			return transformItem(itemModel, b.slotMatrix(slot, perspective), rand)
		})
		if !hit {
			b.log.Debug("cached item quads",
				zap.Int("slot", slot),
				zap.Stringer("item", stack.Item),
				zap.Int("quads", len(slotQuads)))
		}
		quads = append(quads, slotQuads...)
	}
	return quads
}

// slotMatrix is the slot placement applied after the item's own fixed
// perspective correction.
func (b *BakedModel) slotMatrix(slot int, perspective *math.Mat4) math.Mat4 {
	m := b.transforms[slot].Matrix()
	if perspective != nil {
		m = m.Mul(*perspective)
	}
	return m
}

// transformItem gathers the item's quads for every facing and NoFacing.
func transformItem(item model.BakedModel, m math.Mat4, rand int64) []model.Quad {
	var out []model.Quad
	for _, face := range model.AllFacings() {
		out = append(out, model.TransformQuads(item.Quads(nil, face, rand), m)...)
	}
	return out
}

// AmbientOcclusion implements model.BakedModel.
func (b *BakedModel) AmbientOcclusion() bool { return true }

// Gui3D implements model.BakedModel.
func (b *BakedModel) Gui3D() bool { return true }

// BuiltInRenderer implements model.BakedModel.
func (b *BakedModel) BuiltInRenderer() bool { return false }

// ParticleTexture implements model.BakedModel.
func (b *BakedModel) ParticleTexture() *model.Sprite { return b.particle }

// Overrides implements model.BakedModel; racks have no per-stack overrides.
func (b *BakedModel) Overrides() []model.ItemOverride {
	return []model.ItemOverride{}
}

// HandlePerspective implements model.BakedModel. The rack applies no display
// correction of its own.
func (b *BakedModel) HandlePerspective(model.Perspective) (model.BakedModel, *math.Mat4) {
	return b, nil
}

// Base returns the baked base block model.
func (b *BakedModel) Base() model.BakedModel {
	return b.base
}

// Transforms returns the merged slot transforms.
func (b *BakedModel) Transforms() [SlotCount]transform.Transform {
	return b.transforms
}

// Cache returns the quad cache of slot.
func (b *BakedModel) Cache(slot int) *SlotCache {
	return b.caches[slot]
}

// Generation identifies this bake in logs.
func (b *BakedModel) Generation() uuid.UUID {
	return b.generation
}
