package object

import "github.com/mirstar13/dimension-prt/vecmath"

// Plane is an infinite plane through a point with a given normal. It is
// deliberately unbounded: its Bounding() returns vecmath.Unbounded(), so
// the BVH builder routes it into the linear "unbounded objects" list
// instead of the flattened tree (spec §4.1/§4.4).
type Plane struct {
	base
	Point  vecmath.Vec3
	Normal vecmath.Vec3
}

func NewPlane(point, normal vecmath.Vec3, tex *Texture) *Plane {
	p := &Plane{Point: point, Normal: normal.Normalized(), base: newBase(tex)}
	return p
}

func (p *Plane) Precompute()                {}
func (p *Plane) Bounding() vecmath.AABB      { return vecmath.Unbounded() }
func (p *Plane) Inside(x vecmath.Vec3) bool  { return x.Sub(p.Point).Dot(p.Normal) <= 0 }

func (p *Plane) Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool) {
	dir := vecmath.New(1/ray.NInv.X, 1/ray.NInv.Y, 1/ray.NInv.Z)
	denom := dir.Dot(p.Normal)
	if denom == 0 {
		return Intersection{}, false
	}
	t := p.Point.Sub(ray.X0).Dot(p.Normal) / denom
	if t < tMin || t > tMax {
		return Intersection{}, false
	}
	normal := p.Normal
	if denom > 0 {
		normal = normal.Negate()
	}
	worldRay := vecmath.NewRay(ray.X0, dir)
	return Intersection{Ray: worldRay, T: t, Normal: normal, Object: p}, true
}
