package model

import "sync/atomic"

// RenderLayer is the pass a chunk's geometry is being gathered for.
type RenderLayer int32

const (
	LayerNone RenderLayer = iota
	LayerSolid
	LayerCutoutMipped
	LayerCutout
	LayerTranslucent
)

// String implements fmt.Stringer.
func (l RenderLayer) String() string {
	switch l {
	case LayerSolid:
		return "solid"
	case LayerCutoutMipped:
		return "cutout_mipped"
	case LayerCutout:
		return "cutout"
	case LayerTranslucent:
		return "translucent"
	}
	return "none"
}

var currentLayer atomic.Int32

// SetRenderLayer records the layer the renderer is about to gather.
// The renderer resets it to LayerNone after the pass.
func SetRenderLayer(l RenderLayer) {
	currentLayer.Store(int32(l))
}

// CurrentRenderLayer returns the layer set by the renderer.
func CurrentRenderLayer() RenderLayer {
	return RenderLayer(currentLayer.Load())
}
