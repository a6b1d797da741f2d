package shade

import (
	"github.com/mirstar13/dimension-prt/bvh"
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// State is the shading engine's working state for one ray, threaded
// through the recursive shoot/trace* calls. Parent links the call stack
// of enclosing transparent surfaces so refraction can recover the index
// of refraction to transition back into when a ray exits a medium.
type State struct {
	Parent *State

	Scene        *Scene
	Intersection *object.Intersection
	Texture      *object.Texture
	Interior     *object.Interior
	Cache        *bvh.Cache
	Reclevel     int

	R         vecmath.Vec3 // world-space hit point
	PigmentR  vecmath.Vec3 // hit point in pigment space
	Viewer    vecmath.Vec3 // unit vector from hit point toward ray origin
	Reflected vecmath.Vec3 // mirror-reflected viewer direction

	IsShadowRay bool
	LightRay    vecmath.Vec3
	LightColor  colorspace.Color

	Pigment colorspace.Tcolor
	Color   colorspace.Tcolor

	IOR float64

	AdcValue colorspace.Color
}

// initializeFrom populates the per-intersection fields of state: the hit
// point, the viewer direction, and the mirror-reflected direction used by
// both the lighting loop's specular term and the reflection pass.
func (s *State) initializeFrom(inter *object.Intersection) {
	s.Intersection = inter
	s.Texture = inter.Object.Texture()
	s.Interior = inter.Object.Interior()

	s.R = inter.Ray.Point(inter.T)
	s.PigmentR = inter.Object.PigmentTrans().TransformPoint(s.R)
	s.Viewer = inter.Ray.N.Negate().Normalized()
	s.Reflected = inter.Normal.Scale(2 * s.Viewer.Dot(inter.Normal)).Sub(s.Viewer)
	s.IsShadowRay = false
}
