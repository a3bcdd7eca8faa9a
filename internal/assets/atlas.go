package assets

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/rackmodel/internal/logger"
	"github.com/Faultbox/rackmodel/internal/model"
)

// AtlasColumns is the number of 16x16 cells per atlas row and column.
const AtlasColumns = 64

// Atlas assigns each registered texture a cell in a square texture atlas.
type Atlas struct {
	mu      sync.RWMutex
	sprites map[model.ResourceLocation]*model.Sprite
	order   []model.ResourceLocation

	// Stats
	hits   int
	misses int
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[model.ResourceLocation]*model.Sprite)}
}

// Stitch registers 16x16 textures, assigning cells to ones not yet present.
// Textures beyond the atlas capacity are left unstitched.
func (a *Atlas) Stitch(locs ...model.ResourceLocation) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, loc := range locs {
		a.stitch(loc, 16, 16)
	}
}

// StitchSized registers a texture with its pixel dimensions. Dimensions of an
// already stitched texture are updated in place.
func (a *Atlas) StitchSized(loc model.ResourceLocation, width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.sprites[loc]; ok {
		s.Width, s.Height = width, height
		return
	}
	a.stitch(loc, width, height)
}

func (a *Atlas) stitch(loc model.ResourceLocation, width, height int) {
	if loc.IsZero() {
		return
	}
	if _, ok := a.sprites[loc]; ok {
		return
	}
	idx := len(a.order)
	if idx >= AtlasColumns*AtlasColumns {
		logger.Warn("texture atlas full", zap.Stringer("texture", loc))
		return
	}
	const cell = 1.0 / AtlasColumns
	col, row := float32(idx%AtlasColumns), float32(idx/AtlasColumns)
	a.sprites[loc] = &model.Sprite{
		Name:   loc,
		Width:  width,
		Height: height,
		MinU:   col * cell,
		MaxU:   (col + 1) * cell,
		MinV:   row * cell,
		MaxV:   (row + 1) * cell,
	}
	a.order = append(a.order, loc)
}

// Sprite implements model.TextureResolver. Unknown textures resolve to
// model.MissingSprite.
func (a *Atlas) Sprite(loc model.ResourceLocation) *model.Sprite {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s, ok := a.sprites[loc]; ok {
		a.hits++
		return s
	}
	a.misses++
	logger.Warn("missing texture", zap.Stringer("texture", loc))
	return model.MissingSprite
}

// Len returns the number of stitched sprites.
func (a *Atlas) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

// Stats returns lookup statistics.
func (a *Atlas) Stats() (hits, misses int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hits, a.misses
}

// Clear removes all sprites and statistics.
func (a *Atlas) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sprites = make(map[model.ResourceLocation]*model.Sprite)
	a.order = nil
	a.hits = 0
	a.misses = 0
}
