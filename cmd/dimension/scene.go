package main

import (
	"math/rand"

	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// defaultObjects builds a small demo scene — a solid gray floor plane and
// three colored spheres — used when a scene file describes
// camera/canvas/lights but (per spec.md, object description is an
// out-of-scope external collaborator) no object geometry format of its
// own.
func defaultObjects() []object.Object {
	floor := object.NewPlane(vecmath.New(0, -2, 0), vecmath.New(0, 1, 0), &object.Texture{
		Pigment: object.SolidPigment(colorspace.New(0.6, 0.6, 0.6)),
		Finish: object.Finish{
			Ambient: &colorspace.Color{R: 0.1, G: 0.1, B: 0.1},
		},
	})

	objs := []object.Object{floor}
	colors := []colorspace.Color{
		colorspace.New(0.9, 0.2, 0.2),
		colorspace.New(0.2, 0.9, 0.2),
		colorspace.New(0.2, 0.2, 0.9),
	}
	for i, c := range colors {
		x := float64(i-1) * 3
		trans := vecmath.Translation(vecmath.New(x, 0, 5))
		sphere := object.NewSphere(trans, &object.Texture{
			Pigment: object.SolidPigment(c),
			Finish: object.Finish{
				Ambient: &colorspace.Color{R: 0.05, G: 0.05, B: 0.05},
			},
		})
		objs = append(objs, sphere)
	}
	return objs
}

// randomSpheres builds n randomly placed spheres (they may overlap) spread
// over a cube of the given half-extent, used by the bench subcommand to
// exercise the PR-tree builder at scale.
func randomSpheres(n int, extent float64, rng *rand.Rand) []object.Object {
	objs := make([]object.Object, n)
	for i := range objs {
		center := vecmath.New(
			(rng.Float64()*2-1)*extent,
			(rng.Float64()*2-1)*extent,
			(rng.Float64()*2-1)*extent,
		)
		scale := 0.5 + rng.Float64()
		trans := vecmath.Translation(center).Multiply(vecmath.Scaling(vecmath.New(scale, scale, scale)))
		objs[i] = object.NewSphere(trans, nil)
	}
	return objs
}
