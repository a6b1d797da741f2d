package scenecfg

import (
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// directionalLight is a parallel light infinitely far away: its direction
// and color are the same from every surface point, and since its distance
// is infinite, any occluder always precedes it — matching spec.md's
// "parallel lights: only if an occluder precedes the light distance" with
// that distance taken to infinity.
type directionalLight struct {
	dir   vecmath.Vec3
	color colorspace.Color
}

// newPointLight takes direction as the direction from a surface point
// toward the light (the config file's own convention), despite the name
// mirroring spec.md's terminology for the point/parallel light split.
func newPointLight(direction vecmath.Vec3, color colorspace.Color) directionalLight {
	return directionalLight{dir: direction.Normalized(), color: color}
}

func (l directionalLight) Direction(vecmath.Vec3) vecmath.Vec3 { return l.dir }
func (l directionalLight) Illumination(vecmath.Vec3) colorspace.Color { return l.color }
func (l directionalLight) Shadow(float64) bool { return true }

func colorFrom(rgb [3]float64) colorspace.Color {
	return colorspace.New(rgb[0], rgb[1], rgb[2])
}
