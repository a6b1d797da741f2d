package object

import (
	"math"

	"github.com/mirstar13/dimension-prt/vecmath"
)

// Sphere is a unit sphere at the origin, transformed into place by trans
// (object-to-world) and its cached inverse (world-to-object). This mirrors
// the teacher's BoundingSphere/TransformAABB split: the primitive itself
// is defined in a canonical frame and intersected by transforming the ray
// into that frame rather than transforming the sphere's geometry.
type Sphere struct {
	base
	trans    vecmath.Matrix4x3
	invTrans vecmath.Matrix4x3
	aabb     vecmath.AABB
}

func NewSphere(trans vecmath.Matrix4x3, tex *Texture) *Sphere {
	s := &Sphere{base: newBase(tex), trans: trans}
	s.Precompute()
	return s
}

func (s *Sphere) Precompute() {
	s.invTrans = s.trans.Invert()
	s.aabb = transformedUnitBoxBounds(s.trans)
}

func (s *Sphere) Bounding() vecmath.AABB { return s.aabb }

func (s *Sphere) Inside(p vecmath.Vec3) bool {
	local := s.invTrans.TransformPoint(p)
	return local.Dot(local) <= 1.0
}

func (s *Sphere) Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool) {
	// ray.X0/NInv only carries the optimized (reciprocal) direction; the
	// sphere test needs the true direction, recovered as 1/NInv. This is
	// the world-space direction, and must be kept as such: the original
	// wrapper (dmnsn_object_intersection) stores the untransformed world
	// ray on the returned intersection, not the local one used to solve
	// the quadratic.
	worldDir := vecmath.New(1/ray.NInv.X, 1/ray.NInv.Y, 1/ray.NInv.Z)

	origin := s.invTrans.TransformPoint(ray.X0)
	dir := s.invTrans.TransformDirection(worldDir)

	a := dir.Dot(dir)
	b := 2 * origin.Dot(dir)
	c := origin.Dot(origin) - 1.0

	disc := b*b - 4*a*c
	if disc < 0 {
		return Intersection{}, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)

	t := t0
	if t < tMin || t > tMax {
		t = t1
		if t < tMin || t > tMax {
			return Intersection{}, false
		}
	}

	localHit := vecmath.New(origin.X+dir.X*t, origin.Y+dir.Y*t, origin.Z+dir.Z*t)
	// The unit sphere's local normal at localHit is localHit itself; a
	// normal transforms by the inverse-transpose of the linear part of
	// the object-to-world transform (dmnsn_transform_normal(trans_inv,
	// ...), object.h:138), not by the forward transform, or a non-uniform
	// scale tilts the normal away from perpendicular to the surface.
	normal := s.invTrans.TransformDirectionTransposed(localHit).Normalized()

	worldRay := vecmath.NewRay(ray.X0, worldDir)
	return Intersection{Ray: worldRay, T: t, Normal: normal, Object: s}, true
}

// transformedUnitBoxBounds bounds a unit sphere (inscribed in [-1,1]^3)
// under an affine transform by transforming its 8 corners, matching the
// teacher's TransformAABB idiom (bounding_volumes.go).
func transformedUnitBoxBounds(m vecmath.Matrix4x3) vecmath.AABB {
	corners := [8]vecmath.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	}
	min := m.TransformPoint(corners[0])
	max := min
	for _, c := range corners[1:] {
		p := m.TransformPoint(c)
		min = min.Min(p)
		max = max.Max(p)
	}
	return vecmath.NewAABB(min, max)
}
