package shade

import (
	"math"

	"github.com/mirstar13/dimension-prt/bvh"
	"github.com/mirstar13/dimension-prt/colorspace"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// Shoot evaluates the color seen along ray, recursively tracing
// reflection and transmission up to state.Reclevel bounces or until the
// accumulated adc_value falls below the scene's adc_bailout — whichever
// comes first. It queries the spatial index once per call for the ray's
// own closest hit; the lighting pass makes further queries for shadow rays.
func Shoot(state *State, ray vecmath.Ray) colorspace.Tcolor {
	if state.Reclevel == 0 || state.AdcValue.Intensity() < state.Scene.AdcBailout {
		return colorspace.NewTcolor(colorspace.Black, 0)
	}
	state.Reclevel--

	inter, hit := state.Scene.BVH.Intersection(ray, state.Cache, state.Reclevel == state.Scene.Reclimit-1)
	if hit {
		state.initializeFrom(&inter)

		tracePigment(state)
		if state.Scene.Quality.Has(QLights) {
			traceLighting(state)
		}
		if state.Scene.Quality.Has(QReflection) {
			traceReflection(state)
		}
		if state.Scene.Quality.Has(QTransparency) {
			traceTransparency(state)
		}
	} else {
		traceBackground(state, ray)
	}

	return state.Color
}

func traceBackground(state *State, ray vecmath.Ray) {
	if state.Scene.Background == nil {
		state.Color = colorspace.NewTcolor(colorspace.Black, 0)
		return
	}
	if state.Scene.Quality.Has(QPigment) {
		state.Color = state.Scene.Background.Evaluate(ray.N.Normalized())
	} else {
		state.Color = state.Scene.Background.QuickColor()
	}
}

func tracePigment(state *State) {
	pigment := state.Texture.Pigment
	if state.Scene.Quality.Has(QPigment) {
		state.Pigment = pigment.Evaluate(state.PigmentR)
	} else {
		state.Pigment = pigment.QuickColor()
	}
	state.Color = state.Pigment
}

func evaluateSpecular(state *State) colorspace.Color {
	if state.Texture.Finish.Specular == nil {
		return colorspace.Black
	}
	return state.Texture.Finish.Specular.Evaluate(
		state.LightColor, state.Pigment.C, state.LightRay, state.Intersection.Normal, state.Viewer,
	)
}

func evaluateReflection(state *State, light colorspace.Color, direction vecmath.Vec3) colorspace.Color {
	refl := state.Texture.Finish.Reflection
	if refl == nil || !state.Scene.Quality.Has(QReflection) {
		return colorspace.Black
	}
	return refl.Evaluate(light, state.Pigment.C, direction, state.Intersection.Normal)
}

func evaluateTransparency(state *State, light colorspace.Color) colorspace.Color {
	if state.Pigment.T >= colorspace.Epsilon && state.Scene.Quality.Has(QTransparency) {
		return colorspace.Filter(light, state.Pigment)
	}
	return colorspace.Black
}

func evaluateDiffuse(state *State) colorspace.Color {
	if state.Texture.Finish.Diffuse == nil {
		return colorspace.Black
	}
	return state.Texture.Finish.Diffuse.Evaluate(
		state.LightColor, state.Pigment.C, state.LightRay, state.Intersection.Normal,
	)
}

// traceLightRay computes the contribution of a single light to state,
// storing it in state.LightColor and returning whether the surface
// receives any light from it at all. A light occluded by an opaque
// object contributes nothing; a light occluded by a transparent object
// recurses one level to filter the light color by what it passes
// through.
func traceLightRay(state *State, light Light) bool {
	shadowRay := vecmath.NewRay(state.R, light.Direction(state.R)).AddEpsilon()

	// Self-shadowing: the light and the viewer are on opposite sides of
	// the surface, and we're not already tracing a light ray through a
	// transparent occluder.
	if shadowRay.N.Dot(state.Intersection.Normal)*state.Viewer.Dot(state.Intersection.Normal) < 0.0 &&
		(!state.IsShadowRay || state.Pigment.T < colorspace.Epsilon) {
		return false
	}

	state.LightRay = shadowRay.N.Normalized()
	state.LightColor = light.Illumination(state.R)

	shadowHit, inShadow := state.Scene.BVH.Intersection(shadowRay, state.Cache, false)
	if !inShadow || !light.Shadow(shadowHit.T) {
		return true
	}

	if state.Reclevel > 0 && state.AdcValue.Intensity() >= state.Scene.AdcBailout && state.Scene.Quality.Has(QTransparency) {
		shadowState := *state
		shadowState.initializeFrom(&shadowHit)
		tracePigment(&shadowState)

		if shadowState.Pigment.T >= colorspace.Epsilon {
			shadowState.Reclevel--
			shadowState.AdcValue = evaluateTransparency(&shadowState, shadowState.AdcValue)
			shadowState.IsShadowRay = true

			if traceLightRay(&shadowState, light) {
				state.LightColor = shadowState.LightColor

				reflected := evaluateReflection(&shadowState, state.LightColor, state.LightRay)
				state.LightColor = state.LightColor.Sub(reflected)

				state.LightColor = evaluateTransparency(&shadowState, state.LightColor)
				return true
			}
		}
	}

	return false
}

func traceLighting(state *State) {
	state.Color = colorspace.NewTcolor(colorspace.Black, 0)

	if ambient := state.Texture.Finish.Ambient; ambient != nil {
		a := *ambient
		reflected := evaluateReflection(state, a, state.Intersection.Normal)
		a = a.Sub(reflected)
		transmitted := evaluateTransparency(state, a)
		a = a.Sub(transmitted)
		state.Color.C = a.Illuminate(state.Pigment.C)
	}

	for _, light := range state.Scene.Lights {
		if !traceLightRay(state, light) {
			continue
		}

		if !state.Scene.Quality.Has(QFinish) {
			state.Color.C = state.Pigment.C
			break
		}

		specular := evaluateSpecular(state)
		state.LightColor = state.LightColor.Sub(specular)

		reflected := evaluateReflection(state, state.LightColor, state.Reflected)
		state.LightColor = state.LightColor.Sub(reflected)

		transmitted := evaluateTransparency(state, state.LightColor)
		state.LightColor = state.LightColor.Sub(transmitted)

		diffuse := evaluateDiffuse(state)

		state.Color.C = state.Color.C.Add(specular)
		state.Color.C = state.Color.C.Add(diffuse)
	}
}

func traceReflection(state *State) {
	refl := state.Texture.Finish.Reflection
	if refl == nil {
		return
	}
	reflRay := vecmath.NewRay(state.R, state.Reflected).AddEpsilon()

	recursive := *state
	recursive.AdcValue = evaluateReflection(state, state.AdcValue, state.Reflected)

	rec := Shoot(&recursive, reflRay).C
	reflected := evaluateReflection(state, rec, state.Reflected)
	state.Color.C = state.Color.C.Add(reflected)
}

func traceTransparency(state *State) {
	if state.Pigment.T < colorspace.Epsilon {
		return
	}
	interior := state.Interior

	transRay := vecmath.NewRay(state.R, state.Intersection.Ray.N).AddEpsilon()
	r := transRay.N.Normalized()
	n := state.Intersection.Normal

	recursive := *state

	if r.Dot(n) < 0.0 {
		// Entering the object.
		recursive.IOR = interior.IOR
		recursive.Parent = state
	} else {
		// Leaving the object: pop back to the enclosing medium.
		if state.Parent != nil {
			recursive.IOR = state.Parent.IOR
			recursive.Parent = state.Parent.Parent
		} else {
			recursive.IOR = 1.0
			recursive.Parent = nil
		}
	}

	iorr := state.IOR / recursive.IOR
	c1 := -r.Dot(n)
	c2 := 1.0 - iorr*iorr*(1.0-c1*c1)
	if c2 <= 0.0 {
		// Total internal reflection: no transmitted ray.
		return
	}
	c2 = math.Sqrt(c2)

	if c1 >= 0.0 {
		transRay.N = r.Scale(iorr).Add(n.Scale(iorr*c1 - c2))
	} else {
		transRay.N = r.Scale(iorr).Add(n.Scale(iorr*c1 + c2))
	}

	recursive.AdcValue = evaluateTransparency(state, state.AdcValue)
	adcReflected := evaluateReflection(state, recursive.AdcValue, state.Reflected)
	recursive.AdcValue = recursive.AdcValue.Sub(adcReflected)

	rec := Shoot(&recursive, transRay).C
	filtered := evaluateTransparency(state, rec)

	reflected := evaluateReflection(state, filtered, state.Reflected)
	filtered = filtered.Sub(reflected)

	state.Color.C = state.Color.C.Add(filtered)
}

// NewPrimaryState constructs the initial shading state for a pixel's
// primary ray, with a full adc_value and the scene's recursion limit.
func NewPrimaryState(scene *Scene, cache *bvh.Cache) *State {
	return &State{
		Scene:    scene,
		Cache:    cache,
		Reclevel: scene.Reclimit,
		IOR:      1.0,
		AdcValue: colorspace.White,
	}
}
