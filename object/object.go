// Package object defines the scene-object trait (spec: "Object") and the
// material contracts (pigment, finish) attached to each instance, plus the
// concrete primitives the rest of the engine tests against.
package object

import (
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// Intersection describes where a ray met an object's surface.
type Intersection struct {
	Ray    vecmath.Ray
	T      float64
	Normal vecmath.Vec3
	Object Object
}

// Pigment maps a point (already transformed into pigment space) to a
// transparent color.
type Pigment interface {
	Evaluate(r vecmath.Vec3) colorspace.Tcolor
	QuickColor() colorspace.Tcolor
}

// Diffuse computes a light's Lambertian contribution at a point.
type Diffuse interface {
	Evaluate(light, pigment colorspace.Color, lightRay, normal vecmath.Vec3) colorspace.Color
}

// Specular computes a light's specular highlight contribution.
type Specular interface {
	Evaluate(light, pigment colorspace.Color, lightRay, normal, viewer vecmath.Vec3) colorspace.Color
}

// Reflection computes the fraction of light reflected off the surface in
// the given direction (used both for mirror reflection and for the
// light-attenuation terms in the direct lighting loop).
type Reflection interface {
	Evaluate(light, pigment colorspace.Color, direction, normal vecmath.Vec3) colorspace.Color
}

// Finish bundles the optional shading components of a texture. A nil
// field disables that contribution entirely, matching the original
// library's "finish->specular == NULL" checks.
type Finish struct {
	Ambient    *colorspace.Color
	Diffuse    Diffuse
	Specular   Specular
	Reflection Reflection
}

// Texture pairs a pigment with a finish.
type Texture struct {
	Pigment Pigment
	Finish  Finish
}

// Interior describes the inside of a transparent object for refraction.
type Interior struct {
	IOR float64
}

func DefaultInterior() *Interior {
	return &Interior{IOR: 1.0}
}

// Object is the trait every primitive and CSG node implements. Precompute
// is called once after scene setup (e.g. to cache a transformed bounding
// box) and before any Intersection/Inside calls are made concurrently.
type Object interface {
	Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (Intersection, bool)
	Inside(p vecmath.Vec3) bool
	Bounding() vecmath.AABB
	Precompute()

	Texture() *Texture
	Interior() *Interior

	// PigmentTrans maps world space to pigment space for this object.
	PigmentTrans() vecmath.Matrix4x3

	// SplitChildren reports whether this object is a CSG combinator whose
	// children should be expanded as independent leaves in the spatial
	// index (true for union; false for intersection/difference, whose
	// children must always be tested together).
	SplitChildren() bool

	// Children returns the CSG children of a combinator, or nil for a
	// primitive.
	Children() []Object
}

// base is embedded by every concrete primitive to share the texture /
// interior / pigment-transform bookkeeping the trait requires.
type base struct {
	texture      *Texture
	interior     *Interior
	pigmentTrans vecmath.Matrix4x3
}

func newBase(tex *Texture) base {
	if tex == nil {
		tex = &Texture{Pigment: SolidPigment(colorspace.White)}
	}
	return base{texture: tex, interior: DefaultInterior(), pigmentTrans: vecmath.Identity()}
}

func (b *base) Texture() *Texture                { return b.texture }
func (b *base) Interior() *Interior               { return b.interior }
func (b *base) PigmentTrans() vecmath.Matrix4x3   { return b.pigmentTrans }
func (b *base) SetInterior(i *Interior)           { b.interior = i }
func (b *base) SetPigmentTrans(m vecmath.Matrix4x3) { b.pigmentTrans = m }
func (b *base) SplitChildren() bool               { return false }
func (b *base) Children() []Object                { return nil }
