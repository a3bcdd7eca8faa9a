package model

import (
	"github.com/Faultbox/rackmodel/pkg/math"
)

// SimpleModelData holds everything a SimpleBakedModel serves.
type SimpleModelData struct {
	FaceQuads        map[Facing][]Quad
	GeneralQuads     []Quad
	Particle         *Sprite
	AmbientOcclusion bool
	Gui3D            bool
	// Perspectives holds display corrections keyed by context.
	Perspectives map[Perspective]math.Mat4
}

// SimpleBakedModel serves fixed quad lists. It is the baked form of plain
// block and item models.
type SimpleBakedModel struct {
	faceQuads    [6][]Quad
	generalQuads []Quad
	particle     *Sprite
	ao           bool
	gui3d        bool
	perspectives map[Perspective]math.Mat4
}

// NewSimpleBakedModel copies d into a new model.
func NewSimpleBakedModel(d SimpleModelData) *SimpleBakedModel {
	m := &SimpleBakedModel{
		generalQuads: append([]Quad(nil), d.GeneralQuads...),
		particle:     d.Particle,
		ao:           d.AmbientOcclusion,
		gui3d:        d.Gui3D,
		perspectives: make(map[Perspective]math.Mat4, len(d.Perspectives)),
	}
	for f, quads := range d.FaceQuads {
		if f >= Down && f <= East {
			m.faceQuads[f] = append([]Quad(nil), quads...)
		}
	}
	for p, mat := range d.Perspectives {
		m.perspectives[p] = mat
	}
	if m.particle == nil {
		m.particle = MissingSprite
	}
	return m
}

// Quads implements BakedModel.
func (m *SimpleBakedModel) Quads(_ BlockState, side Facing, _ int64) []Quad {
	if side == NoFacing {
		return m.generalQuads
	}
	if side < Down || side > East {
		return nil
	}
	return m.faceQuads[side]
}

// AmbientOcclusion implements BakedModel.
func (m *SimpleBakedModel) AmbientOcclusion() bool { return m.ao }

// Gui3D implements BakedModel.
func (m *SimpleBakedModel) Gui3D() bool { return m.gui3d }

// BuiltInRenderer implements BakedModel.
func (m *SimpleBakedModel) BuiltInRenderer() bool { return false }

// ParticleTexture implements BakedModel.
func (m *SimpleBakedModel) ParticleTexture() *Sprite { return m.particle }

// Overrides implements BakedModel.
func (m *SimpleBakedModel) Overrides() []ItemOverride { return nil }

// HandlePerspective implements BakedModel.
func (m *SimpleBakedModel) HandlePerspective(p Perspective) (BakedModel, *math.Mat4) {
	mat, ok := m.perspectives[p]
	if !ok {
		return m, nil
	}
	return m, &mat
}
