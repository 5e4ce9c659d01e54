package rtree

import (
	"iter"
	"slices"
)

// NodeView is a read-only view of a node in a Tree, for callers that need to
// walk the tree structure, e.g. to draw it. A view is only valid until the
// next Insert.
type NodeView[T any] struct {
	tree   *Tree[T]
	handle handle
}

// Root returns a view of the root node. The root of a zero-value Tree is an
// empty leaf at the origin.
func (t *Tree[T]) Root() NodeView[T] {
	if len(t.nodes) == 0 {
		return NodeView[T]{handle: none}
	}

	return NodeView[T]{tree: t, handle: t.root}
}

// node returns the viewed node, or an empty leaf for a tree with no arena yet.
func (v NodeView[T]) node() *node[T] {
	if v.handle == none {
		return &node[T]{Leaf: true, Parent: none}
	}

	return &v.tree.nodes[v.handle]
}

// Bounds returns the smallest rectangle covering everything below the node.
func (v NodeView[T]) Bounds() Rect {
	return v.node().Bounds
}

// IsLeaf reports whether the node holds entries rather than children.
func (v NodeView[T]) IsLeaf() bool {
	return v.node().Leaf
}

// Len returns the number of entries or children directly in the node.
func (v NodeView[T]) Len() int {
	n := v.node()
	if n.Leaf {
		return len(n.Entries)
	}

	return len(n.Children)
}

// Entries returns a copy of the node's entries. It is empty for internal
// nodes.
func (v NodeView[T]) Entries() []Entry[T] {
	return slices.Clone(v.node().Entries)
}

// Children returns an iterator over views of the node's children.
func (v NodeView[T]) Children() iter.Seq[NodeView[T]] {
	return func(yield func(NodeView[T]) bool) {
		for _, child := range v.node().Children {
			if !yield(NodeView[T]{tree: v.tree, handle: child}) {
				return
			}
		}
	}
}

// Walk returns an iterator over every node in the tree, depth first and
// parents before children, along with its depth (0 for the root).
func (t *Tree[T]) Walk() iter.Seq2[int, NodeView[T]] {
	return func(yield func(int, NodeView[T]) bool) {
		walk(t.Root(), 0, yield)
	}
}

func walk[T any](v NodeView[T], depth int, yield func(int, NodeView[T]) bool) bool {
	if !yield(depth, v) {
		return false
	}

	for child := range v.Children() {
		if !walk(child, depth+1, yield) {
			return false
		}
	}

	return true
}
