package object

import (
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// solidPigment is a uniform-color pigment, grounded on the teacher's flat
// Material.DiffuseColor idiom (lighting.go) generalized into the
// pigment/finish split the spec's external interfaces call for.
type solidPigment struct {
	c colorspace.Tcolor
}

func SolidPigment(c colorspace.Color) Pigment {
	return solidPigment{c: colorspace.NewTcolor(c, 0)}
}

func SolidTpigment(c colorspace.Tcolor) Pigment {
	return solidPigment{c: c}
}

func (p solidPigment) Evaluate(_ vecmath.Vec3) colorspace.Tcolor { return p.c }
func (p solidPigment) QuickColor() colorspace.Tcolor             { return p.c }
