package bvh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

func sphereAt(x, y, z float64) object.Object {
	return object.NewSphere(vecmath.Translation(vecmath.New(x, y, z)), nil)
}

func TestBuildPRTreeEmpty(t *testing.T) {
	assert.Nil(t, BuildPRTree(nil))
}

func TestBuildPRTreeRespectsFanout(t *testing.T) {
	objs := make([]object.Object, 20)
	for i := range objs {
		objs[i] = sphereAt(float64(i)*3, 0, 0)
	}
	root := BuildPRTree(objs)
	require.NotNil(t, root)

	var countLeaves func(*BuilderNode) int
	countLeaves = func(n *BuilderNode) int {
		if n.Object != nil {
			return 1
		}
		assert.LessOrEqual(t, len(n.Children), B)
		total := 0
		for _, c := range n.Children {
			total += countLeaves(c)
		}
		return total
	}
	assert.Equal(t, len(objs), countLeaves(root))
}

func TestFlattenPreservesObjectCount(t *testing.T) {
	objs := make([]object.Object, 12)
	for i := range objs {
		objs[i] = sphereAt(float64(i)*3, 0, 0)
	}
	root := BuildPRTree(objs)
	flat := Flatten(root)

	leafCount := 0
	for _, n := range flat {
		if n.Object != nil {
			leafCount++
		}
	}
	assert.Equal(t, len(objs), leafCount)

	// The root's skip must cover the whole array.
	assert.Equal(t, len(flat), flat[0].Skip)
}

func TestBVHNestedSpheresClosestHit(t *testing.T) {
	outer := object.NewSphere(vecmath.Scaling(vecmath.New(5, 5, 5)), nil)
	inner := sphereAt(0, 0, 0)
	tree := New([]object.Object{outer, inner})

	ray := vecmath.NewRay(vecmath.New(0, 0, -10), vecmath.New(0, 0, 1))
	hit, ok := tree.Intersection(ray, NewCache(), true)
	require.True(t, ok)
	assert.Same(t, outer, hit.Object)
}

func TestBVHEmptyScene(t *testing.T) {
	tree := New(nil)
	ray := vecmath.NewRay(vecmath.New(0, 0, -10), vecmath.New(0, 0, 1))
	_, ok := tree.Intersection(ray, NewCache(), true)
	assert.False(t, ok)
	assert.False(t, tree.Inside(vecmath.Zero))
}

func TestBVHUnboundedPlaneAlwaysTested(t *testing.T) {
	plane := object.NewPlane(vecmath.Zero, vecmath.New(0, 1, 0), nil)
	tree := New([]object.Object{plane})

	ray := vecmath.NewRay(vecmath.New(0, 5, 0), vecmath.New(0, -1, 0))
	hit, ok := tree.Intersection(ray, NewCache(), true)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
}

// countingObject wraps an object and counts the intersection tests made
// against it.
type countingObject struct {
	object.Object
	calls *int
}

func (c countingObject) Intersection(ray vecmath.OptimizedRay, tMin, tMax float64) (object.Intersection, bool) {
	*c.calls++
	return c.Object.Intersection(ray, tMin, tMax)
}

func TestBVHRandomAABBsIntersectionCountBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	calls := 0
	objs := make([]object.Object, 128)
	for i := range objs {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100
		objs[i] = countingObject{Object: sphereAt(x, y, z), calls: &calls}
	}
	tree := New(objs)

	// A ray through empty space should only need to test a small number
	// of candidate leaves, not all 128 — this is the whole point of the
	// spatial index. Every object counts the intersection tests made
	// against it; the total must stay within B.
	ray := vecmath.NewRay(vecmath.New(0, 0, -200), vecmath.New(0, 0, 1))
	tree.Intersection(ray, NewCache(), true)
	assert.True(t, len(tree.bounded) > 0)
	assert.LessOrEqual(t, calls, B)
}

func TestCacheResetAtNewPixel(t *testing.T) {
	c := NewCache()
	c.i = 5
	c.Reset()
	assert.Equal(t, 0, c.i)
}
