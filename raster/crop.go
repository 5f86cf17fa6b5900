// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ik5/pixwav/geometry"
)

// ExtractRegion copies the source pixels covered by the display-space
// selection into a new surface. The rectangle is normalized, mapped into
// source pixel space through the layout, rounded to integer pixel
// boundaries, and clamped to the image bounds. A selection that lies
// entirely outside the image yields ErrEmptyRegion.
func ExtractRegion(src *image.NRGBA, sel geometry.Rect, l geometry.Layout) (*image.NRGBA, error) {
	n := sel.Normalize()
	b := src.Bounds()

	x0 := int(math.Round((n.X - l.OffsetX) / l.Scale))
	y0 := int(math.Round((n.Y - l.OffsetY) / l.Scale))
	x1 := x0 + int(math.Round(n.Width/l.Scale))
	y1 := y0 + int(math.Round(n.Height/l.Scale))

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.Dx() {
		x1 = b.Dx()
	}
	if y1 > b.Dy() {
		y1 = b.Dy()
	}
	if x1 <= x0 || y1 <= y0 {
		return nil, ErrEmptyRegion
	}

	out := image.NewNRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	draw.Draw(out, out.Bounds(), src, image.Pt(b.Min.X+x0, b.Min.Y+y0), draw.Src)
	return out, nil
}

// SamplePixel inverse-maps a display coordinate to a source pixel and
// returns its color. The boolean is false when the coordinate falls outside
// the image.
func SamplePixel(src *image.NRGBA, displayX, displayY float64, l geometry.Layout) (color.NRGBA, bool) {
	sx, sy := l.ToSource(displayX, displayY)
	b := src.Bounds()
	if sx < 0 || sy < 0 || sx >= b.Dx() || sy >= b.Dy() {
		return color.NRGBA{}, false
	}
	return src.NRGBAAt(b.Min.X+sx, b.Min.Y+sy), true
}
