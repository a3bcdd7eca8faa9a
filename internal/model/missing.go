package model

import (
	"github.com/Faultbox/rackmodel/internal/transform"
)

// MissingModelLocation names the placeholder model.
var MissingModelLocation = ResourceLocation{Namespace: "builtin", Path: "missing"}

// MissingModel is the placeholder used when a model cannot be found: a full
// cube textured with MissingSprite on every face.
type MissingModel struct{}

// Dependencies implements Model.
func (*MissingModel) Dependencies() []ResourceLocation { return nil }

// Textures implements Model.
func (*MissingModel) Textures() []ResourceLocation { return nil }

// DefaultState implements Model.
func (*MissingModel) DefaultState() ModelState { return transform.Identity() }

// Bake implements Model. The texture resolver is not consulted.
func (*MissingModel) Bake(_ ModelState, format VertexFormat, _ TextureResolver) BakedModel {
	faces := make(map[Facing][]Quad, len(Cardinals))
	for _, f := range Cardinals {
		faces[f] = []Quad{CubeFaceQuad(f, MissingSprite, format)}
	}
	return NewSimpleBakedModel(SimpleModelData{
		FaceQuads:        faces,
		Particle:         MissingSprite,
		AmbientOcclusion: true,
		Gui3D:            true,
	})
}

// Retexture implements Model.
func (m *MissingModel) Retexture(map[string]string) (Model, error) { return m, nil }

// Process implements Model.
func (m *MissingModel) Process(map[string]string) (Model, error) { return m, nil }
