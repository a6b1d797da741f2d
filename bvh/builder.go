// Package bvh builds a flattened bounding-volume hierarchy from a set of
// scene objects and answers closest-intersection / containment queries
// against it, backed by a per-worker last-hit cache.
package bvh

import (
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// B is the maximum number of children a BuilderNode may hold before the
// PR-tree builder closes it off and starts a new one.
const B = 8

// BuilderNode is the mutable n-ary tree the PR-tree builder assembles
// before flattening. A leaf wraps a single scene Object; an internal node
// has up to B children and an AABB that is the union of theirs.
type BuilderNode struct {
	AABB     vecmath.AABB
	Object   object.Object // non-nil only for leaves
	Children []*BuilderNode
}

func newLeafNode(obj object.Object) *BuilderNode {
	return &BuilderNode{AABB: obj.Bounding(), Object: obj}
}

func newInternalNode() *BuilderNode {
	return &BuilderNode{Children: make([]*BuilderNode, 0, B)}
}

// add appends a child and grows the node's bounding box to cover it. The
// caller is responsible for never exceeding B children (the builder only
// calls this while a bucket is still open).
func (n *BuilderNode) add(child *BuilderNode) {
	if len(n.Children) == 0 {
		n.AABB = child.AABB
	} else {
		n.AABB = n.AABB.Union(child.AABB)
	}
	n.Children = append(n.Children, child)
}
