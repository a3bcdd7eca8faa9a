package rack

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rackmodel/internal/config"
	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
)

// Location is the synthetic model location served by Loader.
var Location = model.ResourceLocation{Namespace: "survivalist", Path: "models/block/custom/rack_with_items"}

// Loader is the custom model loader for Location. The rack's real
// configuration arrives afterwards through Process and Retexture.
type Loader struct {
	env Env
	log *zap.Logger
}

// NewLoader creates a loader whose models use env.
func NewLoader(env Env) *Loader {
	return &Loader{env: env, log: logger.Named("rack.loader")}
}

// Accepts reports whether loc is the rack location.
func (l *Loader) Accepts(loc model.ResourceLocation) bool {
	if loc.Namespace != Location.Namespace {
		return false
	}
	return loc == Location
}

// Load returns a default rack model.
func (l *Loader) Load(loc model.ResourceLocation) (model.Model, error) {
	if !l.Accepts(loc) {
		return nil, fmt.Errorf("rack loader cannot load %s", loc)
	}
	return NewModel(l.env), nil
}

// OnReload is called when the asset system reloads. Baked models hold their
// own caches, so there is nothing to reset.
func (l *Loader) OnReload() {
	l.log.Debug("resource reload")
}

// LoadDescriptor builds a rack model from configuration by applying its base
// model and transforms as custom data and its textures as variables.
// Transforms for slots outside 0-3 are rejected.
func (l *Loader) LoadDescriptor(cfg config.RackConfig) (*Model, error) {
	custom := make(map[string]string, len(cfg.Custom)+1+len(cfg.Transforms))
	for k, v := range cfg.Custom {
		custom[k] = v
	}
	if cfg.BaseModel != "" {
		data, err := json.Marshal(cfg.BaseModel)
		if err != nil {
			return nil, err
		}
		custom[KeyBaseModel] = string(data)
	}
	for slot, t := range cfg.Transforms {
		if slot < 0 || slot >= SlotCount {
			return nil, fmt.Errorf("transform for slot %d: slot out of range 0-%d", slot, SlotCount-1)
		}
		data, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("encoding transform for slot %d: %w", slot, err)
		}
		custom[fmt.Sprintf("%s%d", KeyTransformPrefix, slot)] = string(data)
	}

	var m model.Model = NewModel(l.env).WithCacheCapacity(cfg.CacheCapacity)
	m, err := m.Process(custom)
	if err != nil {
		return nil, err
	}
	if len(cfg.Textures) > 0 {
		if m, err = m.Retexture(cfg.Textures); err != nil {
			return nil, err
		}
	}
	return m.(*Model), nil
}
