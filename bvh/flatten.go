package bvh

import (
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/vecmath"
)

// FlatNode is one entry of the pre-order-flattened tree. Skip is the
// number of array slots to advance to reach this node's next sibling (or
// one past the end of the tree if it has none) — the stackless traversal
// either rejects the whole subtree by jumping `skip` slots, or descends
// into it by simply advancing to the next index.
type FlatNode struct {
	AABB   vecmath.AABB
	Object object.Object // non-nil only for leaves
	Skip   int
}

// Flatten lowers a BuilderNode tree into its pre-order array form. A nil
// root (empty scene) flattens to an empty slice.
func Flatten(root *BuilderNode) []FlatNode {
	if root == nil {
		return nil
	}
	nodes := make([]FlatNode, 0, estimateSize(root))
	flattenRecursive(&nodes, root)
	return nodes
}

func estimateSize(root *BuilderNode) int {
	if root.Object != nil {
		return 1
	}
	n := 1
	for _, c := range root.Children {
		n += estimateSize(c)
	}
	return n
}

// flattenRecursive appends node (and its subtree) in pre-order, then
// fixes up node's Skip once the subtree's size is known. The index must
// be re-read after recursing, since appends to nodes may have
// reallocated the backing array.
func flattenRecursive(nodes *[]FlatNode, node *BuilderNode) {
	idx := len(*nodes)
	*nodes = append(*nodes, FlatNode{AABB: node.AABB, Object: node.Object})

	for _, child := range node.Children {
		flattenRecursive(nodes, child)
	}

	(*nodes)[idx].Skip = len(*nodes) - idx
}
