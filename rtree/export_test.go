package rtree

import "fmt"

// RectGroup reexports the internal [group] type over plain rectangles.
type RectGroup = group[Rect]

// Enlargement reexports the internal [enlargement] function.
func Enlargement(existing, candidate Rect) int {
	return enlargement(existing, candidate)
}

// PreferFirst reexports the internal [preferFirst] function.
func PreferFirst(enlarge1, enlarge2, area1, area2, count1, count2 int) bool {
	return preferFirst(enlarge1, enlarge2, area1, area2, count1, count2)
}

// QuadraticSplit runs the internal [quadraticSplit] over plain rectangles.
func QuadraticSplit(rects []Rect) (RectGroup, RectGroup) {
	return quadraticSplit(rects, identity)
}

// PickSeeds runs the internal [pickSeeds] over plain rectangles.
func PickSeeds(rects []Rect) (int, int) {
	return pickSeeds(rects, identity)
}

func identity(r Rect) Rect {
	return r
}

// ChooseLeaf returns a view of the leaf an insert of bounds would descend to.
func (t *Tree[T]) ChooseLeaf(bounds Rect) NodeView[T] {
	t.init()

	return NodeView[T]{tree: t, handle: t.chooseLeaf(bounds)}
}

// Arena returns the tree's node arena, for dumping on test failure.
func (t *Tree[T]) Arena() any {
	return t.nodes
}

// ArenaLen returns the number of nodes allocated in the arena.
func (t *Tree[T]) ArenaLen() int {
	return len(t.nodes)
}

// SetRootBounds overwrites the root's bounds, for checking that
// [CheckInvariants] notices.
func (t *Tree[T]) SetRootBounds(bounds Rect) {
	t.init()
	t.nodes[t.root].Bounds = bounds
}

// CheckInvariants walks the whole arena and returns an error describing the
// first structural invariant that does not hold.
func CheckInvariants[T any](t *Tree[T]) error {
	if len(t.nodes) == 0 {
		return nil
	}

	if t.nodes[t.root].Parent != none {
		return fmt.Errorf("root %d has parent %d", t.root, t.nodes[t.root].Parent)
	}

	visited := make(map[handle]int, len(t.nodes))
	leafDepth := -1

	var check func(n handle, depth int) error

	check = func(n handle, depth int) error {
		visited[n]++

		node := &t.nodes[n]
		isRoot := n == t.root

		if node.Leaf && len(node.Children) > 0 {
			return fmt.Errorf("leaf %d has %d children", n, len(node.Children))
		}

		if !node.Leaf && len(node.Entries) > 0 {
			return fmt.Errorf("internal node %d has %d entries", n, len(node.Entries))
		}

		count := len(node.Entries) + len(node.Children)

		if count > MaxEntries {
			return fmt.Errorf("node %d holds %d items, more than %d", n, count, MaxEntries)
		}

		if !isRoot && count < MinEntries {
			return fmt.Errorf("node %d holds %d items, fewer than %d", n, count, MinEntries)
		}

		if !node.Leaf && count == 0 {
			return fmt.Errorf("internal node %d has no children", n)
		}

		if count == 0 && node.Bounds != (Rect{}) {
			return fmt.Errorf("empty node %d has bounds %v, want the origin", n, node.Bounds)
		}

		if count > 0 {
			var (
				union Rect
				first = true
			)

			for _, entry := range node.Entries {
				union = unionFirst(union, entry.Bounds, &first)
			}

			for _, child := range node.Children {
				union = unionFirst(union, t.nodes[child].Bounds, &first)
			}

			if union != node.Bounds {
				return fmt.Errorf("node %d has bounds %v, want %v", n, node.Bounds, union)
			}
		}

		if node.Leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmt.Errorf("leaf %d at depth %d, want %d", n, depth, leafDepth)
			}
		}

		for _, child := range node.Children {
			if t.nodes[child].Parent != n {
				return fmt.Errorf("child %d of %d has parent %d", child, n, t.nodes[child].Parent)
			}

			if !node.Bounds.Contains(t.nodes[child].Bounds) {
				return fmt.Errorf("child %d bounds %v escape parent %d bounds %v",
					child, t.nodes[child].Bounds, n, node.Bounds)
			}

			if err := check(child, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	if err := check(t.root, 0); err != nil {
		return err
	}

	for i := range t.nodes {
		if visited[handle(i)] != 1 {
			return fmt.Errorf("node %d reached %d times from the root", i, visited[handle(i)])
		}
	}

	return nil
}

func unionFirst(acc, r Rect, first *bool) Rect {
	if *first {
		*first = false

		return r
	}

	return acc.Union(r)
}
