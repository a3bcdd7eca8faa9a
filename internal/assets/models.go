package assets

import (
	"strings"

	"github.com/Faultbox/rackmodel/internal/model"
	"github.com/Faultbox/rackmodel/internal/transform"
	"github.com/Faultbox/rackmodel/pkg/math"
)

// resolveTexture follows "#name" references in vars starting at key.
// It gives up after len(vars) hops, which only a cycle can reach.
func resolveTexture(vars map[string]string, key string) (model.ResourceLocation, bool) {
	name, ok := vars[key]
	for hops := 0; ok && strings.HasPrefix(name, "#"); hops++ {
		if hops > len(vars) {
			return model.ResourceLocation{}, false
		}
		name, ok = vars[name[1:]]
	}
	if !ok || name == "" {
		return model.ResourceLocation{}, false
	}
	loc, err := model.ParseLocation(name)
	if err != nil {
		return model.ResourceLocation{}, false
	}
	return loc, true
}

func mergeVars(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// lookupSprite resolves loc, falling back to model.MissingSprite when the
// resolver is absent or has no sprite for it.
func lookupSprite(textures model.TextureResolver, loc model.ResourceLocation, ok bool) *model.Sprite {
	if !ok || textures == nil {
		return model.MissingSprite
	}
	if s := textures.Sprite(loc); s != nil {
		return s
	}
	return model.MissingSprite
}

// CubeModel is a full block with one texture per face. Face textures come
// from the face name, then "side" for horizontal faces, then "all".
type CubeModel struct {
	textures map[string]string
	ao       bool
}

// NewCubeModel creates a cube model from texture variables.
func NewCubeModel(textures map[string]string, ambientOcclusion bool) *CubeModel {
	return &CubeModel{textures: mergeVars(textures, nil), ao: ambientOcclusion}
}

func (c *CubeModel) faceTexture(f model.Facing) (model.ResourceLocation, bool) {
	keys := []string{f.String()}
	if f != model.Up && f != model.Down {
		keys = append(keys, "side")
	}
	keys = append(keys, "all")
	for _, k := range keys {
		if _, ok := c.textures[k]; ok {
			return resolveTexture(c.textures, k)
		}
	}
	return model.ResourceLocation{}, false
}

// Dependencies implements model.Model.
func (c *CubeModel) Dependencies() []model.ResourceLocation { return nil }

// Textures implements model.Model.
func (c *CubeModel) Textures() []model.ResourceLocation {
	seen := make(map[model.ResourceLocation]bool)
	var out []model.ResourceLocation
	add := func(loc model.ResourceLocation, ok bool) {
		if ok && !seen[loc] {
			seen[loc] = true
			out = append(out, loc)
		}
	}
	add(resolveTexture(c.textures, "particle"))
	for _, f := range model.Cardinals {
		add(c.faceTexture(f))
	}
	return out
}

// DefaultState implements model.Model.
func (c *CubeModel) DefaultState() model.ModelState { return transform.Identity() }

// Bake implements model.Model. A base transform in state moves the quads and
// remaps their cull faces.
func (c *CubeModel) Bake(state model.ModelState, format model.VertexFormat, textures model.TextureResolver) model.BakedModel {
	sprite := func(loc model.ResourceLocation, ok bool) *model.Sprite {
		return lookupSprite(textures, loc, ok)
	}

	bt, hasTransform := model.BaseTransformOf(state)
	faces := make(map[model.Facing][]model.Quad, len(model.Cardinals))
	for _, f := range model.Cardinals {
		q := model.CubeFaceQuad(f, sprite(c.faceTexture(f)), format)
		if hasTransform && !bt.IsIdentity() {
			m := bt.Matrix()
			q = model.TransformQuad(q, m)
			q.Face = model.RotateFacing(f, m)
		}
		faces[q.Face] = append(faces[q.Face], q)
	}

	return model.NewSimpleBakedModel(model.SimpleModelData{
		FaceQuads:        faces,
		Particle:         sprite(resolveTexture(c.textures, "particle")),
		AmbientOcclusion: c.ao,
		Gui3D:            true,
	})
}

// Retexture implements model.Model.
func (c *CubeModel) Retexture(textures map[string]string) (model.Model, error) {
	return &CubeModel{textures: mergeVars(c.textures, textures), ao: c.ao}, nil
}

// Process implements model.Model; cubes take no custom data.
func (c *CubeModel) Process(map[string]string) (model.Model, error) { return c, nil }

// ItemModel is a flat item sprite with per-perspective display transforms.
type ItemModel struct {
	textures map[string]string
	display  map[model.Perspective]transform.Transform
}

// NewItemModel creates a flat item model textured by "layer0".
func NewItemModel(textures map[string]string, display map[model.Perspective]transform.Transform) *ItemModel {
	d := make(map[model.Perspective]transform.Transform, len(display))
	for p, t := range display {
		d[p] = t
	}
	return &ItemModel{textures: mergeVars(textures, nil), display: d}
}

// Dependencies implements model.Model.
func (i *ItemModel) Dependencies() []model.ResourceLocation { return nil }

// Textures implements model.Model.
func (i *ItemModel) Textures() []model.ResourceLocation {
	var out []model.ResourceLocation
	if loc, ok := resolveTexture(i.textures, "layer0"); ok {
		out = append(out, loc)
	}
	if loc, ok := resolveTexture(i.textures, "particle"); ok && (len(out) == 0 || loc != out[0]) {
		out = append(out, loc)
	}
	return out
}

// DefaultState implements model.Model.
func (i *ItemModel) DefaultState() model.ModelState { return transform.Identity() }

// Bake implements model.Model. Item geometry always uses the item format.
func (i *ItemModel) Bake(_ model.ModelState, _ model.VertexFormat, textures model.TextureResolver) model.BakedModel {
	loc, ok := resolveTexture(i.textures, "layer0")
	layer := lookupSprite(textures, loc, ok)
	particle := layer
	if loc, ok := resolveTexture(i.textures, "particle"); ok {
		particle = lookupSprite(textures, loc, true)
	}

	perspectives := make(map[model.Perspective]math.Mat4, len(i.display))
	for p, t := range i.display {
		perspectives[p] = t.Matrix()
	}

	return model.NewSimpleBakedModel(model.SimpleModelData{
		GeneralQuads: model.FlatItemQuads(layer, 0),
		Particle:     particle,
		Perspectives: perspectives,
	})
}

// Retexture implements model.Model.
func (i *ItemModel) Retexture(textures map[string]string) (model.Model, error) {
	return &ItemModel{textures: mergeVars(i.textures, textures), display: i.display}, nil
}

// Process implements model.Model; items take no custom data.
func (i *ItemModel) Process(map[string]string) (model.Model, error) { return i, nil }
