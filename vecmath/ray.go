package vecmath

// Ray is a parametric ray x0 + t*n. n is not required to be normalized;
// callers that need a unit direction normalize explicitly (the shading
// engine keeps the raw direction so OptimizedRay's reciprocal trick works
// regardless of scale).
type Ray struct {
	X0 Vec3
	N  Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{X0: origin, N: direction}
}

// Point returns the point at parameter t along the ray.
func (r Ray) Point(t float64) Vec3 {
	return r.X0.Add(r.N.Scale(t))
}

// shadowEpsilon nudges a ray's origin along its own direction so shadow
// and reflection/transmission rays don't immediately re-hit the surface
// they were spawned from.
const shadowEpsilon = 1e-10 * 1000

// AddEpsilon returns a copy of r whose origin has been advanced slightly
// along n, matching dmnsn_ray_add_epsilon.
func (r Ray) AddEpsilon() Ray {
	return Ray{X0: r.Point(shadowEpsilon), N: r.N}
}

// OptimizedRay precomputes the reciprocal ray direction so the slab test
// (AABB.Intersection) can replace a division with a multiplication per axis. Callers
// must tolerate NInv components of ±Inf (and the NaN that (0*Inf)
// trivially produces downstream) — the slab test is written so those
// values still produce the correct accept/reject decision.
type OptimizedRay struct {
	X0   Vec3
	NInv Vec3
}

func Optimize(r Ray) OptimizedRay {
	return OptimizedRay{X0: r.X0, NInv: r.N.Reciprocal()}
}
