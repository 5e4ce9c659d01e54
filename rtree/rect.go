package rtree

import "fmt"

// Rect is an axis-aligned rectangle with its origin at (X, Y). Width and
// Height are expected to be non-negative; a zero Width or Height describes a
// degenerate rectangle, which is still a valid key.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// Area returns Width * Height, or 0 for a degenerate rectangle.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}

	return r.Width * r.Height
}

// Intersects reports whether r and other overlap on both axes. Edges are
// inclusive, so rectangles that only touch intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.MaxX() && other.X <= r.MaxX() &&
		r.Y <= other.MaxY() && other.Y <= r.MaxY()
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return r.X <= other.X && other.MaxX() <= r.MaxX() &&
		r.Y <= other.Y && other.MaxY() <= r.MaxY()
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX, minY := min(r.X, other.X), min(r.Y, other.Y)
	maxX, maxY := max(r.MaxX(), other.MaxX()), max(r.MaxY(), other.MaxY())

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// String formats the rectangle as its two corners.
func (r Rect) String() string {
	return fmt.Sprintf("(%d, %d) to (%d, %d)", r.X, r.Y, r.MaxX(), r.MaxY())
}

// enlargement returns how much area existing would have to grow by to also
// cover candidate. It is never negative.
func enlargement(existing, candidate Rect) int {
	return existing.Union(candidate).Area() - existing.Area()
}
