// SPDX-License-Identifier: EPL-2.0

package session

import (
	"image"
	"image/color"
	"math"

	"github.com/ik5/pixwav/raster"
)

// EnterMode switches the editing mode. Entering a mode resets its inputs:
// remove-background clears the selection and auto-detects a background
// color, resize seeds the target dimensions from the working image and
// enables the aspect lock, fill clears the selection.
func (s *Session) EnterMode(m Mode) {
	prev := s.mode
	s.mode = m
	s.result = nil
	s.transition(StateIdle)

	switch m {
	case ModeRemoveBackground:
		s.selection = nil
		s.bgColor = raster.DetectBackgroundColor(s.img)
		s.bgColorSet = true
	case ModeResize:
		b := s.img.Bounds()
		s.targetW, s.targetH = b.Dx(), b.Dy()
		s.aspectLock = true
	case ModeFill:
		s.selection = nil
	}

	if s.logger != nil {
		s.logger.Debug("mode change", "from", prev.String(), "to", m.String())
	}
}

// ExitMode returns to default mode and recomputes the layout against the
// current working image.
func (s *Session) ExitMode() {
	s.mode = ModeDefault
	s.result = nil
	s.recomputeLayout()
	s.transition(StateIdle)
}

// SetTolerance sets the background-removal and fill tolerance percentage.
func (s *Session) SetTolerance(t int) error {
	if t < MinTolerance || t > MaxTolerance {
		return ErrToleranceRange
	}
	s.tolerance = t
	return nil
}

// SetFillColor sets the flood-fill color.
func (s *Session) SetFillColor(c color.NRGBA) {
	c.A = 255
	s.fillColor = c
}

// SetAspectLock toggles aspect-ratio locking for resize-mode dimension
// edits.
func (s *Session) SetAspectLock(locked bool) {
	s.aspectLock = locked
}

// SetTargetWidth sets the resize target width. With the aspect lock on, the
// height follows the working image's aspect ratio.
func (s *Session) SetTargetWidth(w int) error {
	if w < 1 {
		return raster.ErrInvalidDimensions
	}
	s.targetW = w
	if s.aspectLock {
		b := s.img.Bounds()
		h := int(math.Round(float64(w) * float64(b.Dy()) / float64(b.Dx())))
		if h < 1 {
			h = 1
		}
		s.targetH = h
	}
	return nil
}

// SetTargetHeight sets the resize target height. With the aspect lock on,
// the width follows the working image's aspect ratio.
func (s *Session) SetTargetHeight(h int) error {
	if h < 1 {
		return raster.ErrInvalidDimensions
	}
	s.targetH = h
	if s.aspectLock {
		b := s.img.Bounds()
		w := int(math.Round(float64(h) * float64(b.Dx()) / float64(b.Dy())))
		if w < 1 {
			w = 1
		}
		s.targetW = w
	}
	return nil
}

// PickColor sets the background-removal target color from the pixel under
// the given display coordinate.
func (s *Session) PickColor(x, y float64) error {
	c, ok := raster.SamplePixel(s.img, x, y, s.layout)
	if !ok {
		return raster.ErrSeedOutOfBounds
	}
	s.bgColor = c
	s.bgColorSet = true
	return nil
}

// DetectBackground re-runs background color auto-detection on the working
// image.
func (s *Session) DetectBackground() color.NRGBA {
	s.bgColor = raster.DetectBackgroundColor(s.img)
	s.bgColorSet = true
	return s.bgColor
}

// Crop extracts the selected region into a result preview. It requires a
// selection of at least the minimum size.
func (s *Session) Crop() error {
	if s.selection == nil || s.selection.BelowMinSize() {
		return ErrNoSelection
	}
	out, err := raster.ExtractRegion(s.img, *s.selection, s.layout)
	if err != nil {
		return err
	}
	s.setResult(out)
	return nil
}

// ApplyBackgroundRemoval removes the target background color from the
// working image into a result preview. Only valid in remove-background
// mode.
func (s *Session) ApplyBackgroundRemoval() error {
	if s.mode != ModeRemoveBackground {
		return ErrWrongMode
	}
	if !s.bgColorSet {
		return ErrNoBackgroundColor
	}
	s.setResult(raster.RemoveBackground(s.img, s.bgColor, float64(s.tolerance)))
	return nil
}

// ApplyResize resamples the working image to the target dimensions into a
// result preview. Only valid in resize mode.
func (s *Session) ApplyResize() error {
	if s.mode != ModeResize {
		return ErrWrongMode
	}
	out, err := raster.Resize(s.img, s.targetW, s.targetH)
	if err != nil {
		return err
	}
	s.setResult(out)
	return nil
}

// Flip mirrors the working image horizontally. It applies immediately, with
// no preview gate.
func (s *Session) Flip() {
	s.pushUndo()
	s.img = raster.FlipHorizontal(s.img)
	if s.logger != nil {
		s.logger.Debug("flip committed")
	}
}

// fillAt flood-fills at the clicked display coordinate. A click outside the
// image is rejected before any state changes. The fill applies immediately.
func (s *Session) fillAt(x, y float64) error {
	sx, sy := s.layout.ToSource(x, y)
	out, err := raster.FloodFill(s.img, sx, sy, s.fillColor, float64(s.tolerance))
	if err != nil {
		return err
	}
	s.pushUndo()
	s.img = out
	if s.logger != nil {
		s.logger.Debug("fill committed", "x", sx, "y", sy)
	}
	return nil
}

// UseResult commits the pending result preview as the new working image,
// pushes the prior image onto the undo stack, and returns to default mode.
func (s *Session) UseResult() error {
	if s.result == nil {
		return ErrNoResult
	}
	s.pushUndo()
	img := s.result
	s.result = nil
	s.mode = ModeDefault
	s.setImage(img)
	if s.logger != nil {
		s.logger.Debug("result committed", "mode", s.resultMode.String())
	}
	return nil
}

// CancelResult discards the pending result preview and returns to the mode
// that produced it. The working image is untouched.
func (s *Session) CancelResult() error {
	if s.result == nil {
		return ErrNoResult
	}
	s.result = nil
	s.mode = s.resultMode
	return nil
}

func (s *Session) setResult(out *image.NRGBA) {
	s.result = out
	s.resultMode = s.mode
	s.transition(StateIdle)
}
