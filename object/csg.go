package object

import "github.com/mirstar13/dimension-prt/vecmath"

// csgOp is the boolean combinator a CSG node applies to its children,
// grounded on original_source/libdimension/dimension/csg.h.
type csgOp int

const (
	csgUnion csgOp = iota
	csgIntersection
	csgDifference
)

// CSG is a boolean combination of two or more objects. A union's children
// are independent surfaces and may be expanded as separate BVH leaves
// (SplitChildren() == true, per spec §4.1); intersection and difference
// must always be evaluated together, since a point inside one child only
// counts if it also satisfies the Inside() test of the others.
type CSG struct {
	base
	op       csgOp
	children []Object
}

func NewUnion(tex *Texture, children ...Object) *CSG {
	return &CSG{base: newBase(tex), op: csgUnion, children: children}
}

func NewIntersection(tex *Texture, children ...Object) *CSG {
	return &CSG{base: newBase(tex), op: csgIntersection, children: children}
}

func NewDifference(tex *Texture, minuend, subtrahend Object) *CSG {
	return &CSG{base: newBase(tex), op: csgDifference, children: []Object{minuend, subtrahend}}
}

func (c *CSG) Children() []Object  { return c.children }
func (c *CSG) SplitChildren() bool { return c.op == csgUnion }

func (c *CSG) Precompute() {
	for _, ch := range c.children {
		ch.Precompute()
	}
}

func (c *CSG) Bounding() vecmath.AABB {
	switch c.op {
	case csgUnion:
		box := c.children[0].Bounding()
		for _, ch := range c.children[1:] {
			box = box.Union(ch.Bounding())
		}
		return box
	case csgDifference:
		return c.children[0].Bounding()
	default: // intersection
		box := c.children[0].Bounding()
		for _, ch := range c.children[1:] {
			box = intersectBox(box, ch.Bounding())
		}
		return box
	}
}

func intersectBox(a, b vecmath.AABB) vecmath.AABB {
	return vecmath.NewAABB(a.Min.Max(b.Min), a.Max.Min(b.Max))
}

func (c *CSG) Inside(p vecmath.Vec3) bool {
	switch c.op {
	case csgUnion:
		for _, ch := range c.children {
			if ch.Inside(p) {
				return true
			}
		}
		return false
	case csgIntersection:
		for _, ch := range c.children {
			if !ch.Inside(p) {
				return false
			}
		}
		return true
	default: // difference: inside minuend, outside subtrahend
		return c.children[0].Inside(p) && !c.children[1].Inside(p)
	}
}

// Intersection walks the parametric interval along ray, classifying each
// child's entry/exit against the boolean operator — the standard CSG ray
// marching algorithm: advance to the next candidate boundary crossing and
// re-test Inside() against every other child at that point.
func (c *CSG) Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool) {
	t := tMin
	for t <= tMax {
		hit, ok := c.closestChildHit(ray, t, tMax)
		if !ok {
			return Intersection{}, false
		}
		p := hit.Ray.Point(hit.T)
		if c.evaluatesInsideAt(hit.Object, p) {
			return hit, true
		}
		t = hit.T + triangleEpsilon
	}
	return Intersection{}, false
}

func (c *CSG) closestChildHit(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool) {
	var best Intersection
	found := false
	for _, ch := range c.children {
		if hit, ok := ch.Intersection(ray, tMin, tMax); ok {
			if !found || hit.T < best.T {
				best = hit
				found = true
			}
		}
	}
	return best, found
}

// evaluatesInsideAt decides, for a boundary point owned by `owner`,
// whether the CSG's boolean result actually changes there.
func (c *CSG) evaluatesInsideAt(owner Object, p vecmath.Vec3) bool {
	switch c.op {
	case csgUnion:
		return true
	case csgIntersection:
		for _, ch := range c.children {
			if ch == owner {
				continue
			}
			if !ch.Inside(p) {
				return false
			}
		}
		return true
	default: // difference
		if owner == c.children[0] {
			return !c.children[1].Inside(p)
		}
		return c.children[0].Inside(p)
	}
}
