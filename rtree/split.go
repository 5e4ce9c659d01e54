package rtree

import (
	"fmt"
	"slices"
)

// group is one side of a quadratic split.
type group[Item any] struct {
	Items  []Item
	Bounds Rect
}

// add appends item, covering its bounds.
func (g *group[Item]) add(item Item, bounds Rect) {
	g.Items = append(g.Items, item)
	g.Bounds = g.Bounds.Union(bounds)
}

// quadraticSplit partitions items into two groups using Guttman's quadratic
// split. Leaf entries and child nodes are split alike; boundsOf gives the
// bounding rectangle of an item.
//
// Each group ends up with at least MinEntries items, provided there are at
// least 2*MinEntries-1 items to split. Fewer than two items is a programming
// error and panics.
func quadraticSplit[Item any](items []Item, boundsOf func(Item) Rect) (group[Item], group[Item]) {
	if len(items) < 2 {
		panic(fmt.Sprintf("rtree: quadratic split of %d items, need at least 2", len(items)))
	}

	seed1, seed2 := pickSeeds(items, boundsOf)

	first := group[Item]{
		Items:  []Item{items[seed1]},
		Bounds: boundsOf(items[seed1]),
	}
	second := group[Item]{
		Items:  []Item{items[seed2]},
		Bounds: boundsOf(items[seed2]),
	}

	remaining := make([]Item, 0, len(items)-2)

	for i, item := range items {
		if i != seed1 && i != seed2 {
			remaining = append(remaining, item)
		}
	}

	for len(remaining) > 0 {
		// A group that needs everything left to reach the minimum fill gets
		// it.
		if len(first.Items)+len(remaining) <= MinEntries {
			for _, item := range remaining {
				first.add(item, boundsOf(item))
			}

			break
		}

		if len(second.Items)+len(remaining) <= MinEntries {
			for _, item := range remaining {
				second.add(item, boundsOf(item))
			}

			break
		}

		next := pickNext(remaining, first.Bounds, second.Bounds, boundsOf)
		item := remaining[next]
		remaining = slices.Delete(remaining, next, next+1)

		bounds := boundsOf(item)

		if preferFirst(
			enlargement(first.Bounds, bounds), enlargement(second.Bounds, bounds),
			first.Bounds.Area(), second.Bounds.Area(),
			len(first.Items), len(second.Items),
		) {
			first.add(item, bounds)
		} else {
			second.add(item, bounds)
		}
	}

	return first, second
}

// pickSeeds returns the indices i < j of the pair of items that wastes the
// most area when grouped, measured as the area of their bounding rectangle
// less the area of items[i]. The earliest such pair wins ties.
func pickSeeds[Item any](items []Item, boundsOf func(Item) Rect) (int, int) {
	var (
		seed1, seed2 int
		bestWaste    int
		found        bool
	)

	for i := 0; i < len(items)-1; i++ {
		bi := boundsOf(items[i])

		for j := i + 1; j < len(items); j++ {
			waste := bi.Union(boundsOf(items[j])).Area() - bi.Area()

			if !found || waste > bestWaste {
				seed1, seed2, bestWaste, found = i, j, waste, true
			}
		}
	}

	return seed1, seed2
}

// pickNext returns the index of the item with the strongest preference for
// one group over the other, i.e. the largest difference between the
// enlargements each group would need to take it. The earliest item wins ties.
func pickNext[Item any](items []Item, first, second Rect, boundsOf func(Item) Rect) int {
	next, maxDiff := 0, -1

	for i, item := range items {
		bounds := boundsOf(item)

		diff := enlargement(first, bounds) - enlargement(second, bounds)
		if diff < 0 {
			diff = -diff
		}

		if diff > maxDiff {
			next, maxDiff = i, diff
		}
	}

	return next
}

// preferFirst decides which group receives an item: the one needing less
// enlargement, then the one with the smaller area, then the one with fewer
// items. A full tie goes to the first group.
func preferFirst(enlarge1, enlarge2, area1, area2, count1, count2 int) bool {
	switch {
	case enlarge1 != enlarge2:
		return enlarge1 < enlarge2
	case area1 != area2:
		return area1 < area2
	default:
		return count1 <= count2
	}
}
