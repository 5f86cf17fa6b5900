// SPDX-License-Identifier: EPL-2.0

package session

import (
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/ik5/pixwav/geometry"
	"github.com/ik5/pixwav/raster"
)

// State is the pointer interaction state. Exactly one is active at a time.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateMoving
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	}
	return "unknown"
}

// Mode is the editing mode, orthogonal to the interaction state. Only
// ModeDefault runs the full selection state machine.
type Mode int

const (
	ModeDefault Mode = iota
	ModeRemoveBackground
	ModeResize
	ModeFill
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeRemoveBackground:
		return "remove-background"
	case ModeResize:
		return "resize"
	case ModeFill:
		return "fill"
	}
	return "unknown"
}

// Tolerance limits for background removal and flood fill, in percent of the
// maximum color distance.
const (
	MinTolerance     = 1
	MaxTolerance     = 60
	DefaultTolerance = 10
)

// StateListener observes interaction state transitions.
type StateListener func(prev, next State)

// Session owns one editing session: the working image, the current
// selection, interaction state, editing mode, parameters, the result
// preview, and the undo/redo history.
type Session struct {
	logger *slog.Logger

	img                    *image.NRGBA
	containerW, containerH float64
	layout                 geometry.Layout

	selection *geometry.Rect
	state     State
	mode      Mode

	// Drag bookkeeping; valid while state != StateIdle.
	dragStartX, dragStartY float64
	dragRect               geometry.Rect
	activeHandle           geometry.Handle

	tolerance  int
	fillColor  color.NRGBA
	targetW    int
	targetH    int
	aspectLock bool
	bgColor    color.NRGBA
	bgColorSet bool

	// Result preview produced by crop, background removal or resize;
	// pending until UseResult or CancelResult.
	result     *image.NRGBA
	resultMode Mode

	undo []*image.NRGBA
	redo []*image.NRGBA

	listeners []StateListener
}

// NewSession starts an editing session for img displayed in a containerW x
// containerH canvas. A nil logger disables logging.
func NewSession(img *image.NRGBA, containerW, containerH float64, logger *slog.Logger) *Session {
	s := &Session{
		logger:     logger,
		img:        img,
		containerW: containerW,
		containerH: containerH,
		tolerance:  DefaultTolerance,
		fillColor:  color.NRGBA{A: 255},
	}
	s.recomputeLayout()
	return s
}

// AddListener registers a callback invoked after every interaction state
// transition.
func (s *Session) AddListener(l StateListener) {
	s.listeners = append(s.listeners, l)
}

// Image returns the current working image.
func (s *Session) Image() *image.NRGBA { return s.img }

// Result returns the pending result preview, or nil.
func (s *Session) Result() *image.NRGBA { return s.result }

// State returns the current interaction state.
func (s *Session) State() State { return s.state }

// Mode returns the current editing mode.
func (s *Session) Mode() Mode { return s.mode }

// Layout returns the current display layout.
func (s *Session) Layout() geometry.Layout { return s.layout }

// Selection returns a copy of the current selection, or nil when there is
// none.
func (s *Session) Selection() *geometry.Rect {
	if s.selection == nil {
		return nil
	}
	sel := *s.selection
	return &sel
}

// BackgroundColor returns the detected or picked background-removal target
// color; the boolean is false when none is set.
func (s *Session) BackgroundColor() (color.NRGBA, bool) {
	return s.bgColor, s.bgColorSet
}

// Tolerance returns the current tolerance percentage.
func (s *Session) Tolerance() int { return s.tolerance }

// TargetSize returns the resize-mode target dimensions.
func (s *Session) TargetSize() (int, int) { return s.targetW, s.targetH }

// AspectLocked reports whether resize-mode dimension edits keep the source
// aspect ratio.
func (s *Session) AspectLocked() bool { return s.aspectLock }

// SetContainerSize updates the canvas dimensions and recomputes the layout.
// The current selection is discarded: its coordinates are display-space and
// meaningless under the new layout.
func (s *Session) SetContainerSize(w, h float64) {
	s.containerW, s.containerH = w, h
	s.recomputeLayout()
}

// Render draws the current view: the pending result preview when one exists,
// otherwise the working image with the selection overlay.
func (s *Session) Render() *image.NRGBA {
	cw := int(math.Round(s.containerW))
	ch := int(math.Round(s.containerH))
	if s.result != nil {
		b := s.result.Bounds()
		l := geometry.ComputeLayout(s.containerW, s.containerH, b.Dx(), b.Dy())
		return raster.Render(s.result, cw, ch, l, nil)
	}
	return raster.Render(s.img, cw, ch, s.layout, s.selection)
}

// CursorAt returns the cursor glyph the host should display for a pointer
// hovering at (x, y).
func (s *Session) CursorAt(x, y float64) geometry.Cursor {
	switch s.mode {
	case ModeFill:
		return geometry.CursorCrosshair
	case ModeDefault:
	default:
		return geometry.CursorDefault
	}
	if s.selection != nil {
		if h, ok := geometry.HitTestHandle(s.selection.Normalize(), x, y); ok {
			return geometry.CursorFor(h)
		}
		if s.selection.Contains(x, y) {
			return geometry.CursorMove
		}
	}
	return geometry.CursorCrosshair
}

func (s *Session) recomputeLayout() {
	b := s.img.Bounds()
	s.layout = geometry.ComputeLayout(s.containerW, s.containerH, b.Dx(), b.Dy())
	s.selection = nil
}

// setImage replaces the working image and recomputes the layout against it.
func (s *Session) setImage(img *image.NRGBA) {
	s.img = img
	s.recomputeLayout()
}

func (s *Session) transition(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("interaction state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}
