package shade

import (
	"github.com/mirstar13/dimension-prt/bvh"
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// Light is the external light-source contract: a direction from a surface
// point toward the light, the light's color as seen from that point, and
// whether a shadow-caster at a given distance actually occludes it (lets
// a spotlight or area light implement soft falloff at the shadow edge).
type Light interface {
	Direction(p vecmath.Vec3) vecmath.Vec3
	Illumination(p vecmath.Vec3) colorspace.Color
	Shadow(t float64) bool
}

// Scene is the immutable, read-only-during-render data the shading
// engine needs: the spatial index, the light list, the background
// pigment, and the render's quality/recursion settings.
type Scene struct {
	BVH        *bvh.BVH
	Lights     []Light
	Background object.Pigment
	Quality    Quality
	Reclimit   int
	AdcBailout float64
}
