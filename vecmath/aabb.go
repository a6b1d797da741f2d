package vecmath

import "math"

// AABB is an axis-aligned bounding box. An "unbounded" object (one with
// no finite extent, e.g. an infinite plane) reports an AABB whose min/max
// components are ±Inf; such objects never enter the flattened tree and
// are tested linearly instead (see bvh.BVH.unbounded).
type AABB struct {
	Min, Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Unbounded returns the box covering all of space.
func Unbounded() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{-inf, -inf, -inf},
		Max: Vec3{inf, inf, inf},
	}
}

// IsUnbounded reports whether b has infinite extent on any axis.
func (b AABB) IsUnbounded() bool {
	return math.IsInf(b.Min.X, -1) || math.IsInf(b.Max.X, 1) ||
		math.IsInf(b.Min.Y, -1) || math.IsInf(b.Max.Y, 1) ||
		math.IsInf(b.Min.Z, -1) || math.IsInf(b.Max.Z, 1)
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SurfaceArea returns the box's surface area, or 0 for an empty box.
// Nothing in this module calls it; the PR-tree builder never needs it
// (unlike an SAH tree).
func (b AABB) SurfaceArea() float64 {
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0
	}
	return 2 * (d.X*d.Y + d.Y*d.Z + d.Z*d.X)
}

// Intersection performs the slab test against an optimized ray, reporting
// whether its entry/exit interval, clipped to [tMin, tMax], is non-empty.
// It relies on
// IEEE-754 infinity/NaN semantics: when a ray component is zero, its
// reciprocal is ±Inf, and the min/max below still reject rays that are
// parallel to an axis and outside the slab, including the axis-aligned
// edge case that a naive "</>" chain gets wrong. Never replace the
// min/max calls here with simple comparisons.
func (b AABB) Intersection(ray OptimizedRay, tMin, tMax float64) bool {
	tx1 := (b.Min.X - ray.X0.X) * ray.NInv.X
	tx2 := (b.Max.X - ray.X0.X) * ray.NInv.X
	tMin = Max(tMin, Min(tx1, tx2))
	tMax = Min(tMax, Max(tx1, tx2))

	ty1 := (b.Min.Y - ray.X0.Y) * ray.NInv.Y
	ty2 := (b.Max.Y - ray.X0.Y) * ray.NInv.Y
	tMin = Max(tMin, Min(ty1, ty2))
	tMax = Min(tMax, Max(ty1, ty2))

	tz1 := (b.Min.Z - ray.X0.Z) * ray.NInv.Z
	tz2 := (b.Max.Z - ray.X0.Z) * ray.NInv.Z
	tMin = Max(tMin, Min(tz1, tz2))
	tMax = Min(tMax, Max(tz1, tz2))

	return tMax >= tMin
}
