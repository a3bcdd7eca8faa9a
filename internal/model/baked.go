package model

import (
	"github.com/Faultbox/rackmodel/internal/transform"
	"github.com/Faultbox/rackmodel/pkg/math"
)

// Perspective selects the display transform an item model applies for a
// given context.
type Perspective int

const (
	PerspectiveNone Perspective = iota
	PerspectiveThirdPerson
	PerspectiveFirstPerson
	PerspectiveHead
	PerspectiveGUI
	PerspectiveGround
	// PerspectiveFixed is used for items mounted in the world, such as on a
	// rack or in a frame.
	PerspectiveFixed
)

// BlockState is the block-state snapshot passed to quad queries. Models that
// need more than the block identity type-assert to richer interfaces.
type BlockState interface {
	BlockName() ResourceLocation
}

// ItemOverride replaces an item model when its predicates match.
type ItemOverride struct {
	Predicates map[string]float32
	Model      ResourceLocation
}

// BakedModel is ready-to-render geometry. Implementations are used as map
// keys and must be comparable; pointer receivers are expected.
type BakedModel interface {
	// Quads returns the quads culled against side, or the unculled quads for
	// NoFacing. state may be nil for item rendering.
	Quads(state BlockState, side Facing, rand int64) []Quad
	AmbientOcclusion() bool
	Gui3D() bool
	BuiltInRenderer() bool
	ParticleTexture() *Sprite
	Overrides() []ItemOverride
	// HandlePerspective returns the model to draw for p and an optional
	// correction matrix (nil means identity).
	HandlePerspective(p Perspective) (BakedModel, *math.Mat4)
}

// ModelState is the bake context. It may carry a base transform applied to
// the whole model, typically derived from the block state's rotation.
type ModelState interface {
	BaseTransform() (transform.Transform, bool)
}

// TextureResolver maps texture locations to atlas sprites.
type TextureResolver interface {
	Sprite(loc ResourceLocation) *Sprite
}

// TextureResolverFunc adapts a function to TextureResolver.
type TextureResolverFunc func(loc ResourceLocation) *Sprite

// Sprite implements TextureResolver.
func (f TextureResolverFunc) Sprite(loc ResourceLocation) *Sprite {
	return f(loc)
}

// Model is an unbaked model description.
type Model interface {
	// Dependencies lists models that must be loaded before this one bakes.
	Dependencies() []ResourceLocation
	// Textures lists sprites this model needs in the atlas.
	Textures() []ResourceLocation
	Bake(state ModelState, format VertexFormat, textures TextureResolver) BakedModel
	DefaultState() ModelState
	// Retexture returns a copy with texture variables substituted.
	Retexture(textures map[string]string) (Model, error)
	// Process returns a copy configured from custom data. Values are JSON.
	Process(customData map[string]string) (Model, error)
}

// ModelSource resolves model locations for dependent models.
type ModelSource interface {
	ModelOrMissing(loc ResourceLocation) Model
	MissingModel() Model
}

// ItemModelResolver finds the baked model (with overrides applied) for an
// item stack in the current world.
type ItemModelResolver interface {
	ItemModel(stack ItemStack) BakedModel
}

// BaseTransformOf returns the base transform of state, treating a nil state
// as having none.
func BaseTransformOf(state ModelState) (transform.Transform, bool) {
	if state == nil {
		return transform.Transform{}, false
	}
	return state.BaseTransform()
}
