// SPDX-License-Identifier: EPL-2.0

package geometry

import "math"

// Handle identifies one of the eight resize handles of a selection.
type Handle int

const (
	HandleTopLeft Handle = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
)

// HandleNone is returned by HitTestHandle when no handle is hit.
const HandleNone Handle = -1

// HitRadius is the distance, in display pixels, within which a pointer
// position counts as touching a handle.
const HitRadius = 14

// handleOrder is the canonical enumeration order. Hit-test ties are broken
// by this order.
var handleOrder = [...]Handle{
	HandleTopLeft, HandleTop, HandleTopRight, HandleRight,
	HandleBottomRight, HandleBottom, HandleBottomLeft, HandleLeft,
}

// Handles returns the eight handles in canonical order.
func Handles() []Handle {
	h := make([]Handle, len(handleOrder))
	copy(h, handleOrder[:])
	return h
}

func (h Handle) String() string {
	switch h {
	case HandleTopLeft:
		return "top-left"
	case HandleTop:
		return "top"
	case HandleTopRight:
		return "top-right"
	case HandleRight:
		return "right"
	case HandleBottomRight:
		return "bottom-right"
	case HandleBottom:
		return "bottom"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleLeft:
		return "left"
	}
	return "none"
}

// HandlePosition returns the display-space position of a single handle on
// the normalized rectangle.
func HandlePosition(r Rect, h Handle) Point {
	n := r.Normalize()
	midX := n.X + n.Width/2
	midY := n.Y + n.Height/2
	switch h {
	case HandleTopLeft:
		return Point{n.X, n.Y}
	case HandleTop:
		return Point{midX, n.Y}
	case HandleTopRight:
		return Point{n.X + n.Width, n.Y}
	case HandleRight:
		return Point{n.X + n.Width, midY}
	case HandleBottomRight:
		return Point{n.X + n.Width, n.Y + n.Height}
	case HandleBottom:
		return Point{midX, n.Y + n.Height}
	case HandleBottomLeft:
		return Point{n.X, n.Y + n.Height}
	case HandleLeft:
		return Point{n.X, midY}
	}
	return Point{}
}

// HandlePositions returns the positions of all eight handles keyed by handle.
func HandlePositions(r Rect) map[Handle]Point {
	m := make(map[Handle]Point, len(handleOrder))
	for _, h := range handleOrder {
		m[h] = HandlePosition(r, h)
	}
	return m
}

// HitTestHandle returns the first handle, in canonical order, whose position
// lies within HitRadius of (px, py). The boolean is false when no handle is
// within reach.
func HitTestHandle(r Rect, px, py float64) (Handle, bool) {
	for _, h := range handleOrder {
		p := HandlePosition(r, h)
		if math.Hypot(px-p.X, py-p.Y) <= HitRadius {
			return h, true
		}
	}
	return HandleNone, false
}

// Cursor is a CSS-style cursor glyph name the host should display.
type Cursor string

const (
	CursorDefault    Cursor = "default"
	CursorMove       Cursor = "move"
	CursorCrosshair  Cursor = "crosshair"
	CursorResizeNWSE Cursor = "nwse-resize"
	CursorResizeNESW Cursor = "nesw-resize"
	CursorResizeNS   Cursor = "ns-resize"
	CursorResizeEW   Cursor = "ew-resize"
)

// CursorFor returns the resize cursor glyph for a handle. Corner handles map
// to diagonal cursors, edge handles to axial ones.
func CursorFor(h Handle) Cursor {
	switch h {
	case HandleTopLeft, HandleBottomRight:
		return CursorResizeNWSE
	case HandleTopRight, HandleBottomLeft:
		return CursorResizeNESW
	case HandleTop, HandleBottom:
		return CursorResizeNS
	case HandleLeft, HandleRight:
		return CursorResizeEW
	}
	return CursorDefault
}

// ApplyResize moves the edges touched by the handle of the drag-start
// rectangle by the cumulative pointer displacement (dx, dy). Edges not
// touched by the handle are unchanged. The result may have negative width or
// height when a handle is dragged past the opposite edge; the caller
// normalizes before the next use, which lets a selection flip through
// resize.
func ApplyResize(original Rect, h Handle, dx, dy float64) Rect {
	r := original
	switch h {
	case HandleTopLeft:
		r.X += dx
		r.Y += dy
		r.Width -= dx
		r.Height -= dy
	case HandleTop:
		r.Y += dy
		r.Height -= dy
	case HandleTopRight:
		r.Y += dy
		r.Width += dx
		r.Height -= dy
	case HandleRight:
		r.Width += dx
	case HandleBottomRight:
		r.Width += dx
		r.Height += dy
	case HandleBottom:
		r.Height += dy
	case HandleBottomLeft:
		r.X += dx
		r.Width -= dx
		r.Height += dy
	case HandleLeft:
		r.X += dx
		r.Width -= dx
	}
	return r
}
