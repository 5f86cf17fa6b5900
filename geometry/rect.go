// SPDX-License-Identifier: EPL-2.0

package geometry

// MinSelectionSize is the smallest usable selection edge, in display pixels.
// A normalized rectangle with a width or height below this value is treated
// as "no selection" by callers.
const MinSelectionSize = 5

// Point is a position in display space.
type Point struct {
	X, Y float64
}

// Rect is a rectangle in display space. Width and Height may be negative
// while a drag gesture is in progress; call Normalize before hit-testing,
// rendering, or pixel extraction.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Normalize returns an equivalent rectangle with non-negative width and
// height and the origin at the top-left corner. Normalize is idempotent.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether (px, py) lies inside the normalized rectangle.
// The test is inclusive on all edges.
func (r Rect) Contains(px, py float64) bool {
	n := r.Normalize()
	return px >= n.X && px <= n.X+n.Width && py >= n.Y && py <= n.Y+n.Height
}

// BelowMinSize reports whether the normalized rectangle is too small to be
// kept as a selection.
func (r Rect) BelowMinSize() bool {
	n := r.Normalize()
	return n.Width < MinSelectionSize || n.Height < MinSelectionSize
}
