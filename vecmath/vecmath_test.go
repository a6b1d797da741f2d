package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Basics(t *testing.T) {
	t.Run("DotCross", func(t *testing.T) {
		a := New(1, 0, 0)
		b := New(0, 1, 0)
		assert.Equal(t, 0.0, a.Dot(b))
		assert.Equal(t, New(0, 0, 1), a.Cross(b))
	})

	t.Run("Normalized", func(t *testing.T) {
		v := New(3, 4, 0).Normalized()
		assert.InDelta(t, 1.0, v.Length(), 1e-12)
	})

	t.Run("NormalizedDegenerate", func(t *testing.T) {
		v := New(0, 0, 0)
		assert.Equal(t, v, v.Normalized())
	})
}

func TestMatrixAffine(t *testing.T) {
	t.Run("TranslationThenScale", func(t *testing.T) {
		m := Translation(New(1, 2, 3)).Multiply(Scaling(New(2, 2, 2)))
		p := m.TransformPoint(New(1, 1, 1))
		assert.Equal(t, New(3, 4, 5), p)
	})

	t.Run("DirectionIgnoresTranslation", func(t *testing.T) {
		m := Translation(New(5, 5, 5))
		d := m.TransformDirection(New(1, 0, 0))
		assert.Equal(t, New(1, 0, 0), d)
	})

	t.Run("InvertRoundTrips", func(t *testing.T) {
		m := Translation(New(2, -1, 4)).Multiply(Scaling(New(2, 3, 0.5)))
		inv := m.Invert()
		p := New(7, 8, 9)
		got := inv.TransformPoint(m.TransformPoint(p))
		assert.InDelta(t, p.X, got.X, 1e-9)
		assert.InDelta(t, p.Y, got.Y, 1e-9)
		assert.InDelta(t, p.Z, got.Z, 1e-9)
	})
}

func TestAABBSlabTest(t *testing.T) {
	box := NewAABB(New(-1, -1, -1), New(1, 1, 1))

	t.Run("StraightThrough", func(t *testing.T) {
		ray := Optimize(NewRay(New(0, 0, -5), New(0, 0, 1)))
		assert.True(t, box.Intersection(ray, 0, math.Inf(1)))
	})

	t.Run("Miss", func(t *testing.T) {
		ray := Optimize(NewRay(New(5, 5, -5), New(0, 0, 1)))
		assert.False(t, box.Intersection(ray, 0, math.Inf(1)))
	})

	t.Run("AxisAlignedZeroComponent", func(t *testing.T) {
		// Direction has a zero X component; the reciprocal is +/-Inf.
		// The box is centered on the ray's X, so it must still hit.
		ray := Optimize(NewRay(New(0, -5, -5), New(0, 1, 1)))
		assert.True(t, box.Intersection(ray, 0, math.Inf(1)))
	})

	t.Run("AxisAlignedZeroComponentMiss", func(t *testing.T) {
		// Same zero-X direction, but offset outside the box on X: must
		// still correctly reject despite the infinite reciprocal.
		ray := Optimize(NewRay(New(5, -5, -5), New(0, 1, 1)))
		assert.False(t, box.Intersection(ray, 0, math.Inf(1)))
	})
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(New(0, 0, 0), New(1, 1, 1))
	b := NewAABB(New(-1, -1, -1), New(0.5, 0.5, 0.5))
	u := a.Union(b)
	assert.Equal(t, New(-1, -1, -1), u.Min)
	assert.Equal(t, New(1, 1, 1), u.Max)
}
