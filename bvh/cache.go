package bvh

import "github.com/mirstar13/dimension-prt/object"

// cacheSize is the fixed capacity of the per-worker last-hit cache.
const cacheSize = 32

// Cache replays a pixel's previous ray's hit sequence: each call to
// BVH.Intersection tries the object recorded at the cache's current read
// position before falling back to the full tree walk, then advances. Go
// has no native thread-local storage, so instead of a pthread key keyed
// per-BVH (as the original does), callers own one Cache per worker
// goroutine and pass it explicitly into every Intersection call.
type Cache struct {
	i       int
	objects [cacheSize]object.Object
}

// NewCache returns a fresh, empty cache for one worker.
func NewCache() *Cache {
	return &Cache{}
}

// Reset rewinds the read position to the start of a new pixel's ray
// sequence — the same rewind BVH.Intersection performs itself when passed
// reset=true. The recorded objects are kept.
func (c *Cache) Reset() {
	c.i = 0
}
