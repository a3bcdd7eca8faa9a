package rack

import "github.com/Faultbox/rackmodel/internal/model"

// SlotCount is the number of item slots on a rack.
const SlotCount = 4

// ItemsData holds the stacks displayed in each slot; empty stacks are skipped.
type ItemsData [SlotCount]model.ItemStack

// ItemsState is a block state that carries the rack's contained items.
// States that do not implement it render no items.
type ItemsState interface {
	model.BlockState
	RackItems() ItemsData
}
