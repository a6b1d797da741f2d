package bvh

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mirstar13/dimension-prt/object"
)

// pseudoB is the number of priority orders considered per level — one
// ascending and one descending comparator per axis (2*3 dimensions).
const pseudoB = 6

// parallelSortThreshold is the leaf-count at or above which the six sort orders
// are computed concurrently rather than serially.
const parallelSortThreshold = 1024

type prColor int

const (
	prLeaf prColor = iota
	prLeft
	prRight
)

// coloredNode is the small sort payload the builder shuffles instead of
// the (much larger) BuilderNode itself — sorting pointers-to-color keeps
// the six concurrent sorts cache-friendly.
type coloredNode struct {
	color prColor
	node  *BuilderNode
}

const (
	cmpXMin = iota
	cmpYMin
	cmpZMin
	cmpXMax
	cmpYMax
	cmpZMax
)

// less implements comparator `cmp`: the three *Min comparators sort
// ascending by that axis' box minimum, the three *Max comparators sort
// descending by that axis' box maximum — so index 0 of any sorted order
// is always the "most extreme" node on that axis.
func less(cmp int, a, b *BuilderNode) bool {
	switch cmp {
	case cmpXMin:
		return a.AABB.Min.X < b.AABB.Min.X
	case cmpYMin:
		return a.AABB.Min.Y < b.AABB.Min.Y
	case cmpZMin:
		return a.AABB.Min.Z < b.AABB.Min.Z
	case cmpXMax:
		return a.AABB.Max.X > b.AABB.Max.X
	case cmpYMax:
		return a.AABB.Max.Y > b.AABB.Max.Y
	default: // cmpZMax
		return a.AABB.Max.Z > b.AABB.Max.Z
	}
}

// BuildPRTree constructs a pseudo priority R-tree over objs and returns
// its root, following the algorithm of a pseudo-PR-tree: repeatedly
// extract up to B "extreme" objects per axis-order into sibling buckets,
// then recurse on what's left, until a single root node remains.
//
// Returns nil for an empty object set.
func BuildPRTree(objs []object.Object) *BuilderNode {
	if len(objs) == 0 {
		return nil
	}

	leaves := make([]*BuilderNode, len(objs))
	for i, o := range objs {
		leaves[i] = newLeafNode(o)
	}

	nthreads := runtime.NumCPU()
	if nthreads > pseudoB {
		nthreads = pseudoB
	}

	for len(leaves) > 1 {
		leaves = priorityLeaves(leaves, nthreads)
	}
	return leaves[0]
}

// priorityLeaves performs one full pass of the pseudo-PR-tree over the
// current level's nodes, returning the new (one level higher) leaves.
func priorityLeaves(leaves []*BuilderNode, nthreads int) []*BuilderNode {
	n := len(leaves)
	colored := make([]coloredNode, n)
	for i, lf := range leaves {
		colored[i] = coloredNode{color: prLeft, node: lf} // must not be prLeaf
	}

	var sorted [pseudoB][]*coloredNode
	if n >= parallelSortThreshold && nthreads > 1 {
		sortLeavesConcurrently(colored, &sorted, nthreads)
	} else {
		for i := 0; i < pseudoB; i++ {
			sorted[i] = sortLeafArray(colored, i)
		}
	}

	buffer := make([]*coloredNode, n/2)
	var newLeaves []*BuilderNode
	priorityLeavesRecursive(&sorted, 0, n, buffer, &newLeaves, 0)
	return newLeaves
}

func sortLeafArray(colored []coloredNode, comparator int) []*coloredNode {
	ptrs := make([]*coloredNode, len(colored))
	for i := range colored {
		ptrs[i] = &colored[i]
	}
	sort.Slice(ptrs, func(i, j int) bool {
		return less(comparator, ptrs[i].node, ptrs[j].node)
	})
	return ptrs
}

// sortLeavesConcurrently stripes the six comparator sorts across the
// worker pool: worker t handles comparators t, t+nthreads, t+2*nthreads...
func sortLeavesConcurrently(colored []coloredNode, sorted *[pseudoB][]*coloredNode, nthreads int) {
	var g errgroup.Group
	for t := 0; t < nthreads; t++ {
		t := t
		g.Go(func() error {
			for i := t; i < pseudoB; i += nthreads {
				sorted[i] = sortLeafArray(colored, i)
			}
			return nil
		})
	}
	_ = g.Wait() // the sort workers never return an error
}

// addPriorityLeaves extracts, for each of the six orders in turn, up to B
// not-yet-claimed nodes from [start, end) of that order into a fresh
// bucket node. The scan for a given order stops as soon as that order's
// bucket is full (or the range is exhausted); if an order contributes
// nothing at all to its bucket, extraction for this call stops
// immediately — the remaining orders are left for the next recursive
// call instead of also being scanned here.
func addPriorityLeaves(sorted *[pseudoB][]*coloredNode, start, end int, newLeaves *[]*BuilderNode) {
	for i := 0; i < pseudoB; i++ {
		var bucket *BuilderNode
		order := sorted[i]

		for j := start; j < end && (bucket == nil || len(bucket.Children) < B); j++ {
			if order[j].color == prLeaf {
				continue
			}
			if bucket == nil {
				bucket = newInternalNode()
			}
			order[j].color = prLeaf
			bucket.add(order[j].node)
		}

		if bucket != nil {
			*newLeaves = append(*newLeaves, bucket)
		} else {
			return
		}
	}
}

// filterPriorityLeaves compacts [start, end) of a single order in place,
// dropping entries already claimed as priority leaves, and returns the
// new end.
func filterPriorityLeaves(order []*coloredNode, start, end int) int {
	skip := 0
	for i := start; i < end; i++ {
		if order[i].color == prLeaf {
			skip++
		} else {
			order[i-skip] = order[i]
		}
	}
	return end - skip
}

// splitSortedLeavesEasy colors [start, end) of a single (already
// filtered) order LEFT/RIGHT, rounding the midpoint up so a tied median
// lands in the left half, and returns that midpoint.
func splitSortedLeavesEasy(order []*coloredNode, start, end int) int {
	mid := start + (end-start+1)/2
	for i := start; i < mid; i++ {
		order[i].color = prLeft
	}
	for i := mid; i < end; i++ {
		order[i].color = prRight
	}
	return mid
}

// splitSortedLeavesHard re-partitions a non-pivot order in place using
// the LEFT/RIGHT coloring splitSortedLeavesEasy assigned on the pivot
// order: LEFT entries are compacted forward in their original relative
// order, RIGHT entries are stashed into buffer (preserving their order)
// and appended after the compacted LEFT prefix.
func splitSortedLeavesHard(order []*coloredNode, buffer []*coloredNode, start, end int) {
	i, j, skip := start, 0, 0
	for ; i < end; i++ {
		if order[i].color == prLeft {
			order[i-skip] = order[i]
		} else {
			if order[i].color == prRight {
				buffer[j] = order[i]
				j++
			}
			skip++
		}
	}
	mid := i - skip
	for k := 0; k < j; k++ {
		order[mid+k] = buffer[k]
	}
}

// splitSortedLeaves filters and splits the pivot order `i`, then applies
// the resulting coloring to every other order, returning the new
// midpoint and end of [start, end).
func splitSortedLeaves(sorted *[pseudoB][]*coloredNode, start, end int, buffer []*coloredNode, i int) (mid, newEnd int) {
	origEnd := end
	newEnd = filterPriorityLeaves(sorted[i], start, end)
	mid = splitSortedLeavesEasy(sorted[i], start, newEnd)

	for j := 0; j < pseudoB; j++ {
		if j == i {
			continue
		}
		splitSortedLeavesHard(sorted[j], buffer, start, origEnd)
	}
	return mid, newEnd
}

// priorityLeavesRecursive emits the priority buckets for [start, end),
// then splits what's left into a left and right half and recurses on
// each with the comparator rotated by one (mod pseudoB).
func priorityLeavesRecursive(sorted *[pseudoB][]*coloredNode, start, end int, buffer []*coloredNode, newLeaves *[]*BuilderNode, comparator int) {
	addPriorityLeaves(sorted, start, end, newLeaves)

	mid, newEnd := splitSortedLeaves(sorted, start, end, buffer, comparator)
	next := (comparator + 1) % pseudoB

	if start < mid {
		priorityLeavesRecursive(sorted, start, mid, buffer, newLeaves, next)
	}
	if mid < newEnd {
		priorityLeavesRecursive(sorted, mid, newEnd, buffer, newLeaves, next)
	}
}
