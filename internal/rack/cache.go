package rack

import (
	"math"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/Faultbox/rackmodel/internal/model"
)

// SlotCache memoizes transformed item quads for one slot, keyed by the
// resolved item model. Items that resolve to the same model share an entry.
//
// With a positive capacity the least recently used entry is evicted once the
// cache is full; capacity 0 never evicts.
type SlotCache struct {
	mu       sync.Mutex
	capacity int
	entries  *simplelru.LRU[model.BakedModel, []model.Quad]

	hits   int
	misses int
}

// NewSlotCache creates an empty cache.
func NewSlotCache(capacity int) *SlotCache {
	if capacity < 0 {
		capacity = 0
	}
	return &SlotCache{
		capacity: capacity,
		entries:  newLRU(capacity),
	}
}

func newLRU(capacity int) *simplelru.LRU[model.BakedModel, []model.Quad] {
	size := capacity
	if size == 0 {
		size = math.MaxInt
	}
	l, err := simplelru.NewLRU[model.BakedModel, []model.Quad](size, nil)
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return l
}

// Get returns the quads stored for key.
func (c *SlotCache) Get(key model.BakedModel) ([]model.Quad, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookup(key)
}

// Put stores quads for key, replacing any previous entry.
func (c *SlotCache) Put(key model.BakedModel, quads []model.Quad) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key, quads)
}

// GetOrCompute returns the cached quads for key, or calls compute and stores
// its result. The lock is held across compute so concurrent callers compute
// each key at most once.
func (c *SlotCache) GetOrCompute(key model.BakedModel, compute func() []model.Quad) (quads []model.Quad, hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quads, ok := c.lookup(key); ok {
		return quads, true
	}
	quads = compute()
	c.entries.Add(key, quads)
	return quads, false
}

// Len returns the number of entries.
func (c *SlotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Capacity returns the eviction bound, 0 meaning unbounded.
func (c *SlotCache) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *SlotCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear drops all entries and statistics.
func (c *SlotCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
	c.hits = 0
	c.misses = 0
}

func (c *SlotCache) lookup(key model.BakedModel) ([]model.Quad, bool) {
	quads, ok := c.entries.Get(key)
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return quads, true
}
