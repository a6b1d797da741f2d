// Package vecmath provides the vector, matrix, ray, and bounding-box
// primitives shared by the spatial index and the shading engine.
package vecmath

import "math"

// Vec3 is a point or direction in object/world space.
type Vec3 struct {
	X, Y, Z float64
}

var Zero = Vec3{0, 0, 0}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. A near-zero vector is
// returned unchanged rather than producing NaN.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-10 {
		return v
	}
	return v.Scale(1.0 / l)
}

// Reciprocal returns the componentwise reciprocal, deliberately allowing
// ±Inf for zero components — OptimizedRay relies on this.
func (v Vec3) Reciprocal() Vec3 {
	return Vec3{1.0 / v.X, 1.0 / v.Y, 1.0 / v.Z}
}

func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{Min(v.X, o.X), Min(v.Y, o.Y), Min(v.Z, o.Z)}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{Max(v.X, o.X), Max(v.Y, o.Y), Max(v.Z, o.Z)}
}
