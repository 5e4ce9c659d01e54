package rtree

import (
	"fmt"
	"iter"
)

const (
	// MaxEntries is the maximum number of entries a leaf node, or children an
	// internal node, can hold before it is split.
	MaxEntries = 4

	// MinEntries is the minimum number of items each node produced by a split
	// holds.
	MinEntries = 2
)

// Entry is a stored rectangle and the value associated with it.
type Entry[T any] struct {
	Bounds Rect
	Value  T
}

// String formats the entry as its bounds followed by its value.
func (e Entry[T]) String() string {
	return fmt.Sprintf("%v; value: %v", e.Bounds, e.Value)
}

// handle is the position of a node in the tree's node arena.
type handle int

// none marks the absence of a node, e.g. the parent of the root.
const none handle = -1

// node is a single R-tree node. A leaf node holds Entries and no Children, an
// internal node holds Children and no Entries.
type node[T any] struct {
	Bounds   Rect
	Parent   handle
	Leaf     bool
	Entries  []Entry[T]
	Children []handle
}

// Tree is an R-tree over 2-D integer rectangles, storing a value of type T
// with each rectangle. Its zero value is an empty tree.
//
// A Tree is not safe for concurrent use. Readers may share a Tree as long as
// no Insert runs at the same time.
type Tree[T any] struct {
	nodes []node[T]
	root  handle
}

// New creates an empty tree, consisting of a single empty leaf at the origin.
func New[T any]() *Tree[T] {
	t := &Tree[T]{}
	t.init()

	return t
}

// init creates the root leaf if the tree has none yet.
func (t *Tree[T]) init() {
	if len(t.nodes) > 0 {
		return
	}

	t.nodes = append(t.nodes, node[T]{Leaf: true, Parent: none})
	t.root = 0
}

// newNode appends n to the arena and returns its handle. Any pointers into the
// arena are invalidated.
func (t *Tree[T]) newNode(n node[T]) handle {
	t.nodes = append(t.nodes, n)

	return handle(len(t.nodes) - 1)
}

// Insert stores value under bounds.
func (t *Tree[T]) Insert(bounds Rect, value T) {
	t.init()

	root := &t.nodes[t.root]
	if len(root.Entries) == 0 && len(root.Children) == 0 {
		root.Bounds = bounds
	}

	leaf := t.chooseLeaf(bounds)
	t.nodes[leaf].Entries = append(t.nodes[leaf].Entries, Entry[T]{
		Bounds: bounds,
		Value:  value,
	})

	split := none

	if len(t.nodes[leaf].Entries) <= MaxEntries {
		t.nodes[leaf].Bounds = t.nodes[leaf].Bounds.Union(bounds)
	} else {
		split = t.splitLeaf(leaf)
	}

	t.adjustTree(leaf, split)
}

// chooseLeaf descends from the root to the leaf whose bounds need the least
// enlargement to cover bounds. Ties go to the child with the smaller area, and
// then to the earlier child.
func (t *Tree[T]) chooseLeaf(bounds Rect) handle {
	current := t.root

	for !t.nodes[current].Leaf {
		var (
			best        = none
			bestEnlarge int
			bestArea    int
		)

		for _, child := range t.nodes[current].Children {
			childBounds := t.nodes[child].Bounds
			enlarge := enlargement(childBounds, bounds)
			area := childBounds.Area()

			if best == none ||
				enlarge < bestEnlarge ||
				(enlarge == bestEnlarge && area < bestArea) {
				best, bestEnlarge, bestArea = child, enlarge, area
			}
		}

		current = best
	}

	return current
}

// splitLeaf splits the overflowing leaf n in two. The first group stays in n,
// the second is moved to a new leaf whose handle is returned. The new leaf has
// no parent yet.
func (t *Tree[T]) splitLeaf(n handle) handle {
	first, second := quadraticSplit(t.nodes[n].Entries, func(e Entry[T]) Rect {
		return e.Bounds
	})

	t.nodes[n].Entries = first.Items
	t.nodes[n].Bounds = first.Bounds

	return t.newNode(node[T]{
		Bounds:  second.Bounds,
		Parent:  none,
		Leaf:    true,
		Entries: second.Items,
	})
}

// splitChildren is splitLeaf for an internal node n. Children moved to the new
// node are re-parented.
func (t *Tree[T]) splitChildren(n handle) handle {
	first, second := quadraticSplit(t.nodes[n].Children, func(child handle) Rect {
		return t.nodes[child].Bounds
	})

	t.nodes[n].Children = first.Items
	t.nodes[n].Bounds = first.Bounds

	sibling := t.newNode(node[T]{
		Bounds:   second.Bounds,
		Parent:   none,
		Children: second.Items,
	})

	for _, child := range second.Items {
		t.nodes[child].Parent = sibling
	}

	return sibling
}

// adjustTree ascends from n to the root, growing each ancestor's bounds to
// cover n. If split is not none, it is n's newly created sibling and is
// attached to n's parent, which may split in turn.
func (t *Tree[T]) adjustTree(n, split handle) {
	for t.nodes[n].Parent != none {
		parent := t.nodes[n].Parent
		t.nodes[parent].Bounds = t.nodes[parent].Bounds.Union(t.nodes[n].Bounds)

		if split == none {
			n = parent

			continue
		}

		t.nodes[split].Parent = parent
		t.nodes[parent].Children = append(t.nodes[parent].Children, split)

		if len(t.nodes[parent].Children) <= MaxEntries {
			t.nodes[parent].Bounds = t.nodes[parent].Bounds.Union(t.nodes[split].Bounds)
			n, split = parent, none

			continue
		}

		n, split = parent, t.splitChildren(parent)
	}

	if split != none {
		t.growRoot(n, split)
	}
}

// growRoot installs a new root over the two halves of the old, split root.
func (t *Tree[T]) growRoot(n, split handle) {
	root := t.newNode(node[T]{
		Bounds:   t.nodes[n].Bounds.Union(t.nodes[split].Bounds),
		Parent:   none,
		Children: []handle{n, split},
	})

	t.nodes[n].Parent = root
	t.nodes[split].Parent = root
	t.root = root
}

// Search returns the values of all entries whose bounds intersect query, in
// no particular order. It returns nil if there are none.
func (t *Tree[T]) Search(query Rect) []T {
	var values []T

	for value := range t.Intersecting(query) {
		values = append(values, value)
	}

	return values
}

// Intersecting returns an iterator over the values of all entries whose
// bounds intersect query. The tree must not be modified during iteration.
func (t *Tree[T]) Intersecting(query Rect) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(t.nodes) == 0 {
			return
		}

		t.search(t.root, query, yield)
	}
}

// search visits the subtree rooted at n, pruning children that do not
// intersect query. It returns false once yield asks to stop.
func (t *Tree[T]) search(n handle, query Rect, yield func(T) bool) bool {
	for _, child := range t.nodes[n].Children {
		if !t.nodes[child].Bounds.Intersects(query) {
			continue
		}

		if !t.search(child, query, yield) {
			return false
		}
	}

	for _, entry := range t.nodes[n].Entries {
		if !entry.Bounds.Intersects(query) {
			continue
		}

		if !yield(entry.Value) {
			return false
		}
	}

	return true
}

// Size returns the number of stored entries.
func (t *Tree[T]) Size() int {
	if len(t.nodes) == 0 {
		return 0
	}

	return t.size(t.root)
}

func (t *Tree[T]) size(n handle) int {
	size := len(t.nodes[n].Entries)

	for _, child := range t.nodes[n].Children {
		size += t.size(child)
	}

	return size
}

// Height returns the number of levels in the tree. An empty tree has a height
// of 1, its root leaf.
func (t *Tree[T]) Height() int {
	if len(t.nodes) == 0 {
		return 1
	}

	height := 1

	for n := t.root; !t.nodes[n].Leaf; n = t.nodes[n].Children[0] {
		height++
	}

	return height
}
