// SPDX-License-Identifier: EPL-2.0

package session

import "github.com/ik5/pixwav/geometry"

// PointerDown feeds a pointer-press at display coordinates (x, y). In
// default mode it starts a draw, move or resize gesture depending on what
// lies under the pointer; in fill mode it applies a flood fill at the
// clicked pixel. Other modes ignore pointer input.
func (s *Session) PointerDown(x, y float64) error {
	switch s.mode {
	case ModeFill:
		return s.fillAt(x, y)
	case ModeDefault:
	default:
		return nil
	}

	if s.result != nil {
		// A pending result preview replaces the canvas; no selection
		// gestures until it is accepted or cancelled.
		return nil
	}

	s.dragStartX, s.dragStartY = x, y

	if s.selection != nil {
		n := s.selection.Normalize()
		if h, ok := geometry.HitTestHandle(n, x, y); ok {
			s.dragRect = n
			s.activeHandle = h
			s.transition(StateResizing)
			return nil
		}
		if n.Contains(x, y) {
			s.dragRect = n
			s.transition(StateMoving)
			return nil
		}
	}

	sel := geometry.Rect{X: x, Y: y}
	s.selection = &sel
	s.transition(StateDrawing)
	return nil
}

// PointerMove feeds a pointer motion. Outside an active gesture it is a
// no-op; the host uses CursorAt for hover feedback.
func (s *Session) PointerMove(x, y float64) {
	switch s.state {
	case StateDrawing:
		sel := geometry.Rect{
			X:      s.dragStartX,
			Y:      s.dragStartY,
			Width:  x - s.dragStartX,
			Height: y - s.dragStartY,
		}
		s.selection = &sel
	case StateMoving:
		sel := geometry.Rect{
			X:      s.dragRect.X + (x - s.dragStartX),
			Y:      s.dragRect.Y + (y - s.dragStartY),
			Width:  s.dragRect.Width,
			Height: s.dragRect.Height,
		}
		s.selection = &sel
	case StateResizing:
		sel := geometry.ApplyResize(s.dragRect, s.activeHandle, x-s.dragStartX, y-s.dragStartY)
		s.selection = &sel
	}
}

// PointerUp ends the active gesture. A freshly drawn selection below the
// minimum size is discarded silently.
func (s *Session) PointerUp() {
	if s.state == StateIdle {
		return
	}
	if s.selection != nil {
		n := s.selection.Normalize()
		if s.state == StateDrawing && n.BelowMinSize() {
			s.selection = nil
		} else {
			s.selection = &n
		}
	}
	s.transition(StateIdle)
}

// PointerLeave is treated exactly like PointerUp, so a drag that exits the
// canvas cannot leave the session stuck mid-gesture.
func (s *Session) PointerLeave() {
	s.PointerUp()
}
