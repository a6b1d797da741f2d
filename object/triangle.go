package object

import (
	"math"

	"github.com/mirstar13/dimension-prt/vecmath"
)

// Triangle is a flat triangle with an optional fixed normal, grounded
// directly on the teacher's Möller-Trumbore implementation
// (raycast.go:IntersectsTriangle), adapted to the Object trait.
type Triangle struct {
	base
	P0, P1, P2 vecmath.Vec3
	normal     vecmath.Vec3
	aabb       vecmath.AABB
}

const triangleEpsilon = 1e-10

func NewTriangle(p0, p1, p2 vecmath.Vec3, tex *Texture) *Triangle {
	t := &Triangle{P0: p0, P1: p1, P2: p2, base: newBase(tex)}
	t.Precompute()
	return t
}

func (t *Triangle) Precompute() {
	e1 := t.P1.Sub(t.P0)
	e2 := t.P2.Sub(t.P0)
	t.normal = e1.Cross(e2).Normalized()
	min := t.P0.Min(t.P1).Min(t.P2)
	max := t.P0.Max(t.P1).Max(t.P2)
	t.aabb = vecmath.NewAABB(min, max)
}

func (t *Triangle) Bounding() vecmath.AABB { return t.aabb }

func (t *Triangle) Inside(vecmath.Vec3) bool { return false }

func (t *Triangle) Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool) {
	dir := vecmath.New(1/ray.NInv.X, 1/ray.NInv.Y, 1/ray.NInv.Z)

	edge1 := t.P1.Sub(t.P0)
	edge2 := t.P2.Sub(t.P0)

	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < triangleEpsilon {
		return Intersection{}, false
	}
	invDet := 1.0 / det

	s := ray.X0.Sub(t.P0)
	u := invDet * s.Dot(h)
	if u < -triangleEpsilon || u > 1.0+triangleEpsilon {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := invDet * dir.Dot(q)
	if v < -triangleEpsilon || u+v > 1.0+triangleEpsilon {
		return Intersection{}, false
	}

	dist := invDet * edge2.Dot(q)
	if dist < tMin || dist > tMax {
		return Intersection{}, false
	}

	worldRay := vecmath.NewRay(ray.X0, dir)
	return Intersection{Ray: worldRay, T: dist, Normal: t.normal, Object: t}, true
}
