// Package assets handles model loading, texture stitching and item model
// resolution for the bake pipeline.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/rackmodel/internal/config"
	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
)

// CustomLoader serves models that are not plain definitions.
type CustomLoader interface {
	Accepts(loc model.ResourceLocation) bool
	Load(loc model.ResourceLocation) (model.Model, error)
	OnReload()
}

// Registry resolves model locations, stitches textures and bakes models.
// It implements model.ModelSource, model.TextureResolver and
// model.ItemModelResolver.
type Registry struct {
	mu          sync.RWMutex
	loaders     []CustomLoader
	definitions map[model.ResourceLocation]model.Model
	loaded      map[model.ResourceLocation]model.Model
	itemModels  map[model.ResourceLocation]model.ResourceLocation
	bakedItems  map[model.ResourceLocation]model.BakedModel
	atlas       *Atlas
	missing     model.Model
	log         *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[model.ResourceLocation]model.Model),
		loaded:      make(map[model.ResourceLocation]model.Model),
		itemModels:  make(map[model.ResourceLocation]model.ResourceLocation),
		bakedItems:  make(map[model.ResourceLocation]model.BakedModel),
		atlas:       NewAtlas(),
		missing:     &model.MissingModel{},
		log:         logger.Named("assets"),
	}
}

// NewRegistryFromConfig creates a registry with the configured definition
// files and textures loaded.
func NewRegistryFromConfig(cfg config.AssetsConfig) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadDefinitionFiles(cfg.Definitions); err != nil {
		return nil, err
	}
	if cfg.Textures != "" {
		if err := r.LoadTextures(os.DirFS(cfg.Textures)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadTextures stitches every texture image in fsys with its real size.
func (r *Registry) LoadTextures(fsys fs.FS) error {
	n, err := r.atlas.StitchTextures(fsys)
	if err != nil {
		return fmt.Errorf("loading textures: %w", err)
	}
	r.log.Info("textures loaded", zap.Int("count", n))
	return nil
}

// RegisterLoader adds a custom loader. Loaders are consulted in order,
// before definitions.
func (r *Registry) RegisterLoader(l CustomLoader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders = append(r.loaders, l)
}

// Register adds a model definition.
func (r *Registry) Register(loc model.ResourceLocation, m model.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[loc] = m
	delete(r.loaded, loc)
}

// AliasItem makes item render with the model at modelLoc instead of its
// default item/<path> model.
func (r *Registry) AliasItem(item, modelLoc model.ResourceLocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemModels[item] = modelLoc
}

// Load resolves loc through the custom loaders and definitions.
func (r *Registry) Load(loc model.ResourceLocation) (model.Model, error) {
	r.mu.RLock()
	if m, ok := r.loaded[loc]; ok {
		r.mu.RUnlock()
		return m, nil
	}
	loaders := r.loaders
	def, hasDef := r.definitions[loc]
	r.mu.RUnlock()

	var m model.Model
	for _, l := range loaders {
		if !l.Accepts(loc) {
			continue
		}
		var err error
		if m, err = l.Load(loc); err != nil {
			return nil, fmt.Errorf("loading model %s: %w", loc, err)
		}
		break
	}
	if m == nil {
		if !hasDef {
			return nil, fmt.Errorf("model %s not found", loc)
		}
		m = def
	}

	r.mu.Lock()
	r.loaded[loc] = m
	r.mu.Unlock()
	return m, nil
}

// ModelOrMissing implements model.ModelSource.
func (r *Registry) ModelOrMissing(loc model.ResourceLocation) model.Model {
	m, err := r.Load(loc)
	if err != nil {
		r.log.Warn("using missing model", zap.Stringer("model", loc), zap.Error(err))
		return r.missing
	}
	return m
}

// MissingModel implements model.ModelSource.
func (r *Registry) MissingModel() model.Model {
	return r.missing
}

// Atlas returns the texture atlas.
func (r *Registry) Atlas() *Atlas {
	return r.atlas
}

// Sprite implements model.TextureResolver.
func (r *Registry) Sprite(loc model.ResourceLocation) *model.Sprite {
	return r.atlas.Sprite(loc)
}

// Stitch adds the textures of m and of its dependencies to the atlas.
func (r *Registry) Stitch(m model.Model) {
	seen := make(map[model.ResourceLocation]bool)
	var visit func(m model.Model)
	visit = func(m model.Model) {
		r.atlas.Stitch(m.Textures()...)
		for _, dep := range m.Dependencies() {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			visit(r.ModelOrMissing(dep))
		}
	}
	visit(m)
}

// Bake stitches m's textures and bakes it against the atlas.
func (r *Registry) Bake(m model.Model, state model.ModelState, format model.VertexFormat) model.BakedModel {
	r.Stitch(m)
	if state == nil {
		state = m.DefaultState()
	}
	return m.Bake(state, format, r.atlas)
}

// BakeLocation loads and bakes the model at loc.
func (r *Registry) BakeLocation(loc model.ResourceLocation, state model.ModelState, format model.VertexFormat) model.BakedModel {
	return r.Bake(r.ModelOrMissing(loc), state, format)
}

// ItemModel implements model.ItemModelResolver. Baked item models are
// shared per model location, so stacks of the same item, or of items aliased
// to one model, resolve to the same value.
func (r *Registry) ItemModel(stack model.ItemStack) model.BakedModel {
	if stack.IsEmpty() {
		return nil
	}

	r.mu.RLock()
	loc, ok := r.itemModels[stack.Item]
	r.mu.RUnlock()
	if !ok {
		loc = stack.Item.WithPathPrefix("item/")
	}

	r.mu.RLock()
	baked, ok := r.bakedItems[loc]
	r.mu.RUnlock()
	if ok {
		return baked
	}

	baked = r.BakeLocation(loc, nil, model.FormatItem)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.bakedItems[loc]; ok {
		return existing
	}
	r.bakedItems[loc] = baked
	return baked
}

// Reload drops loaded and baked models and notifies custom loaders.
// Models baked before the reload must be baked again by their owners.
func (r *Registry) Reload() {
	r.mu.Lock()
	r.loaded = make(map[model.ResourceLocation]model.Model)
	r.bakedItems = make(map[model.ResourceLocation]model.BakedModel)
	loaders := r.loaders
	r.mu.Unlock()

	for _, l := range loaders {
		l.OnReload()
	}
	r.log.Info("assets reloaded", zap.Int("loaders", len(loaders)), zap.Int("sprites", r.atlas.Len()))
}
