// Package scenecfg loads a scene description (camera, canvas, lights,
// objects, quality, recursion limits) from a TOML file and builds the
// runtime types (shade.Scene, object.Object tree, a Camera) the render
// driver needs.
package scenecfg

import (
	"math"

	"github.com/mirstar13/dimension-prt/vecmath"
)

// Camera is the external collaborator contract: given a pixel in
// normalized [0,1]^2 image space, produce a ray. The returned
// ray is in the camera's own local space — the caller (the render
// driver) applies Trans to both the origin and direction and renormalizes
// the direction, exactly as dmnsn_camera_ray does in the original
// library. This split lets a camera implementation ignore its own
// placement in the scene entirely.
type Camera interface {
	Ray(u, v float64) vecmath.Ray
	Trans() vecmath.Matrix4x3
}

// ApplyCamera transforms a camera-space ray into world space: the
// camera's own ray callback returns a ray before placement, and this is
// the one place that placement is applied, matching dmnsn_camera_ray.
func ApplyCamera(cam Camera, u, v float64) vecmath.Ray {
	local := cam.Ray(u, v)
	trans := cam.Trans()
	origin := trans.TransformPoint(local.X0)
	direction := trans.TransformDirection(local.N).Normalized()
	return vecmath.NewRay(origin, direction)
}

// PerspectiveCamera is a pinhole camera with a horizontal/vertical field
// of view, grounded on the teacher's Camera.FOV fields and the
// PerspectiveCamera.initialize alignment in
// libdimension-python/PerspectiveCamera.c (look_at aimed by two
// axis-angle rotations, then translated into place).
type PerspectiveCamera struct {
	trans  vecmath.Matrix4x3
	fovX   float64
	fovY   float64
}

// NewPerspectiveCamera builds a camera at location, aimed at lookAt, with
// the given field-of-view angles in degrees.
func NewPerspectiveCamera(location, lookAt vecmath.Vec3, fovXDeg, fovYDeg float64) *PerspectiveCamera {
	forward := lookAt.Sub(location).Normalized()
	up := vecmath.New(0, 1, 0)
	if math.Abs(forward.Dot(up)) > 0.999 {
		up = vecmath.New(0, 0, 1)
	}
	right := forward.Cross(up).Normalized()
	trueUp := right.Cross(forward).Normalized()

	// Columns: right, trueUp, forward, then translation — a basis change
	// matching dmnsn_matrix_mul(move, align) in the original.
	m := vecmath.BasisAndTranslation(right, trueUp, forward, location)

	return &PerspectiveCamera{
		trans: m,
		fovX:  fovXDeg * math.Pi / 180.0,
		fovY:  fovYDeg * math.Pi / 180.0,
	}
}

// Ray implements Camera: (u,v) in [0,1]^2, origin at the pinhole, looking
// down +Z in camera space, spread by the half-angle tangent of each FOV.
func (c *PerspectiveCamera) Ray(u, v float64) vecmath.Ray {
	x := (2*u - 1) * math.Tan(c.fovX/2)
	y := (1 - 2*v) * math.Tan(c.fovY/2)
	dir := vecmath.New(x, y, 1).Normalized()
	return vecmath.NewRay(vecmath.Zero, dir)
}

func (c *PerspectiveCamera) Trans() vecmath.Matrix4x3 { return c.trans }
