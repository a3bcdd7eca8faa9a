package rack

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
	"github.com/Faultbox/rackmodel/internal/transform"
)

// Custom data keys understood by Process.
const (
	KeyBaseModel       = "base_model"
	KeyTransformPrefix = "transform_"
)

// Env is what a rack needs from its host: the model source that resolves the
// base model and the resolver that maps stacks to item models.
type Env struct {
	Models model.ModelSource
	Items  model.ItemModelResolver
	// CacheCapacity bounds each slot cache; 0 is unbounded.
	CacheCapacity int
}

// Model is the unbaked rack description. It is immutable: Retexture and
// Process return modified copies.
type Model struct {
	env        Env
	particle   model.ResourceLocation
	baseModel  model.ResourceLocation
	transforms [SlotCount]transform.Transform
}

// NewModel returns a rack with no base model, no particle texture and
// identity slot transforms.
func NewModel(env Env) *Model {
	m := &Model{env: env}
	for i := range m.transforms {
		m.transforms[i] = transform.Identity()
	}
	return m
}

// Particle returns the particle texture location; zero when unset.
func (m *Model) Particle() model.ResourceLocation { return m.particle }

// BaseModel returns the base model location; zero when unset.
func (m *Model) BaseModel() model.ResourceLocation { return m.baseModel }

// SlotTransform returns the placement of slot before any bake-time merge.
func (m *Model) SlotTransform(slot int) transform.Transform { return m.transforms[slot] }

// WithCacheCapacity returns a copy whose baked models bound each slot cache.
func (m *Model) WithCacheCapacity(n int) *Model {
	out := *m
	out.env.CacheCapacity = n
	return &out
}

// Dependencies implements model.Model.
func (m *Model) Dependencies() []model.ResourceLocation {
	if m.baseModel.IsZero() {
		return nil
	}
	return []model.ResourceLocation{m.baseModel}
}

// Textures implements model.Model.
func (m *Model) Textures() []model.ResourceLocation {
	if m.particle.IsZero() {
		return nil
	}
	return []model.ResourceLocation{m.particle}
}

// DefaultState implements model.Model.
func (m *Model) DefaultState() model.ModelState {
	return transform.Identity()
}

// Bake resolves the particle sprite and base model, merges the state's base
// transform into every slot transform, and returns the runtime model.
// Unresolvable references bake as the missing sprite or model.
func (m *Model) Bake(state model.ModelState, format model.VertexFormat, textures model.TextureResolver) model.BakedModel {
	log := logger.Named("rack")

	particle := model.MissingSprite
	if !m.particle.IsZero() && textures != nil {
		if s := textures.Sprite(m.particle); s != nil {
			particle = s
		}
	}

	base := m.resolveBase()
	baked := base.Bake(state, format, textures)

	transforms := m.transforms
	if bt, ok := model.BaseTransformOf(state); ok {
		for i := range transforms {
			transforms[i] = bt.Compose(transforms[i])
		}
	}

	out := NewBakedModel(particle, baked, transforms, m.env.Items, m.env.CacheCapacity)
	log.Info("baked rack model",
		zap.Stringer("generation", out.Generation()),
		zap.Stringer("base", m.baseModel),
		zap.Stringer("particle", particle.Name),
		zap.String("format", format.Name))
	return out
}

func (m *Model) resolveBase() model.Model {
	if m.env.Models == nil {
		return &model.MissingModel{}
	}
	if m.baseModel.IsZero() {
		return m.env.Models.MissingModel()
	}
	return m.env.Models.ModelOrMissing(m.baseModel)
}

// Retexture resolves the "particle" variable, following "#name" references
// through textures until a literal location or nothing is found.
func (m *Model) Retexture(textures map[string]string) (model.Model, error) {
	name, ok := textures["particle"]
	for steps := 0; ok && strings.HasPrefix(name, "#"); steps++ {
		if steps > len(textures) {
			return nil, errors.Errorf("rack: cyclic texture reference from %q", textures["particle"])
		}
		name, ok = textures[name[1:]]
	}

	out := *m
	out.particle = model.ResourceLocation{}
	if ok && name != "" {
		loc, err := model.ParseLocation(name)
		if err != nil {
			return nil, errors.Wrap(err, "rack: particle texture")
		}
		out.particle = loc
	}
	return &out, nil
}

// Process applies custom data: "base_model" is a JSON string naming a model
// under the namespace's block/ directory, and "transform_0" to "transform_3"
// replace slot transforms (see transform.Parse).
func (m *Model) Process(customData map[string]string) (model.Model, error) {
	out := *m

	if raw, ok := customData[KeyBaseModel]; ok {
		var name string
		if err := json.Unmarshal([]byte(raw), &name); err != nil {
			return nil, errors.Wrapf(err, "rack: %s", KeyBaseModel)
		}
		loc, err := model.ParseLocation(name)
		if err != nil {
			return nil, errors.Wrapf(err, "rack: %s", KeyBaseModel)
		}
		out.baseModel = loc.WithPathPrefix("block/")
	}

	for i := 0; i < SlotCount; i++ {
		key := KeyTransformPrefix + strconv.Itoa(i)
		raw, ok := customData[key]
		if !ok {
			continue
		}
		t, err := transform.Parse([]byte(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "rack: %s", key)
		}
		out.transforms[i] = t
	}

	return &out, nil
}
