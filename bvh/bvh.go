package bvh

import (
	"math"

	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// BVH is the acceleration structure over a scene's objects: unbounded
// objects (infinite planes and the like) are tested linearly on every
// query, while every bounded object lives in the flattened PR-tree.
type BVH struct {
	unbounded []object.Object
	bounded   []FlatNode
}

// New builds a BVH over objs. CSG union nodes with SplitChildren() true
// are expanded into their children before insertion (their children
// become independent leaves of the tree); every other object, including
// non-union CSG combinators, is inserted as a single leaf.
func New(objs []object.Object) *BVH {
	split := splitObjects(objs)
	bounded, unbounded := splitUnbounded(split)

	root := BuildPRTree(bounded)
	return &BVH{
		unbounded: unbounded,
		bounded:   Flatten(root),
	}
}

func splitObjects(objs []object.Object) []object.Object {
	var out []object.Object
	var walk func(object.Object)
	walk = func(o object.Object) {
		if o.SplitChildren() {
			for _, c := range o.Children() {
				walk(c)
			}
		} else {
			out = append(out, o)
		}
	}
	for _, o := range objs {
		walk(o)
	}
	return out
}

func splitUnbounded(objs []object.Object) (bounded, unbounded []object.Object) {
	for _, o := range objs {
		if o.Bounding().IsUnbounded() {
			unbounded = append(unbounded, o)
		} else {
			bounded = append(bounded, o)
		}
	}
	return bounded, unbounded
}

func closerIntersection(o object.Object, ray vecmath.OptimizedRay, best *object.Intersection, t *float64) bool {
	hit, ok := o.Intersection(ray, 0, *t)
	if ok && hit.T < *t {
		*best = hit
		*t = hit.T
		return true
	}
	return false
}

// Intersection finds the closest object a ray hits, trying the cache's
// current slot first and recording the winning object back into it. Pass
// reset=true on the first (primary) ray of a new pixel to rewind the
// cache's replay position; subsequent secondary rays for the same pixel
// should pass reset=false so the cache continues walking forward through
// the hit sequence it recorded last time.
func (b *BVH) Intersection(ray vecmath.Ray, cache *Cache, reset bool) (object.Intersection, bool) {
	t := math.Inf(1)
	var best object.Intersection

	for _, o := range b.unbounded {
		closerIntersection(o, vecmath.Optimize(ray), &best, &t)
	}

	optray := vecmath.Optimize(ray)

	if reset {
		cache.i = 0
	}
	var cached object.Object
	if cache.i < cacheSize {
		cached = cache.objects[cache.i]
	}
	var found object.Object
	if cached != nil && cached.Bounding().Intersection(optray, 0, t) {
		if closerIntersection(cached, optray, &best, &t) {
			found = cached
		}
	}

	i := 0
	for i < len(b.bounded) {
		node := &b.bounded[i]
		if node.AABB.Intersection(optray, 0, t) {
			if node.Object != nil && node.Object != cached {
				if closerIntersection(node.Object, optray, &best, &t) {
					found = node.Object
				}
			}
			i++
		} else {
			i += node.Skip
		}
	}

	if cache.i < cacheSize {
		cache.objects[cache.i] = found
		cache.i++
	}

	return best, !math.IsInf(t, 1)
}

// Inside reports whether point lies inside any object in the scene.
func (b *BVH) Inside(point vecmath.Vec3) bool {
	for _, o := range b.unbounded {
		if o.Inside(point) {
			return true
		}
	}

	i := 0
	for i < len(b.bounded) {
		node := &b.bounded[i]
		if node.AABB.Contains(point) {
			if node.Object != nil && node.Object.Inside(point) {
				return true
			}
			i++
		} else {
			i += node.Skip
		}
	}
	return false
}

// AABB returns the bounding box of the whole scene: infinite if any
// unbounded object is present, the root's box otherwise, or a
// degenerate zero box for an empty scene.
func (b *BVH) AABB() vecmath.AABB {
	if len(b.unbounded) > 0 {
		return vecmath.Unbounded()
	}
	if len(b.bounded) > 0 {
		return b.bounded[0].AABB
	}
	return vecmath.NewAABB(vecmath.Zero, vecmath.Zero)
}
