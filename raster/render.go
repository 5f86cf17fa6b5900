// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ik5/pixwav/geometry"
)

const (
	// guideMinSize is the selection size, in display pixels, above which
	// rule-of-thirds guides are drawn.
	guideMinSize = 60

	handleRadius = 5
	dashLength   = 4

	// dimScale darkens the area outside the selection: a 55% black overlay
	// leaves 45% of the original channel value.
	dimScale = 0.45
)

var (
	borderColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	guideColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	handleFill  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	handleEdge  = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	labelColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelShadow = color.NRGBA{A: 200}
)

// Render draws the working image scaled and centered per the layout onto a
// fresh canvasW x canvasH surface. When a selection is present, the area
// outside it is darkened, the selection border and its eight handles are
// drawn, rule-of-thirds guides appear for selections larger than 60x60
// display pixels, and a "{width}x{height}" label (in source pixels) is
// placed above the selection, or below it when it would clip off the top.
// Render has no state of its own; identical inputs give identical output.
func Render(img *image.NRGBA, canvasW, canvasH int, l geometry.Layout, selection *geometry.Rect) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	if img == nil || canvasW < 1 || canvasH < 1 {
		return canvas
	}

	b := img.Bounds()
	target := image.Rect(
		int(math.Round(l.OffsetX)),
		int(math.Round(l.OffsetY)),
		int(math.Round(l.OffsetX+float64(b.Dx())*l.Scale)),
		int(math.Round(l.OffsetY+float64(b.Dy())*l.Scale)),
	)
	xdraw.BiLinear.Scale(canvas, target, img, b, xdraw.Over, nil)

	if selection == nil {
		return canvas
	}

	n := selection.Normalize()
	x0 := int(math.Round(n.X))
	y0 := int(math.Round(n.Y))
	x1 := int(math.Round(n.X + n.Width))
	y1 := int(math.Round(n.Y + n.Height))

	// Darken the four bands around the selection.
	shadeRect(canvas, image.Rect(0, 0, canvasW, y0))
	shadeRect(canvas, image.Rect(0, y1, canvasW, canvasH))
	shadeRect(canvas, image.Rect(0, y0, x0, y1))
	shadeRect(canvas, image.Rect(x1, y0, canvasW, y1))

	strokeRect(canvas, image.Rect(x0, y0, x1, y1), borderColor)

	if n.Width > guideMinSize && n.Height > guideMinSize {
		thirdW := (x1 - x0) / 3
		thirdH := (y1 - y0) / 3
		dashedVLine(canvas, x0+thirdW, y0, y1)
		dashedVLine(canvas, x0+2*thirdW, y0, y1)
		dashedHLine(canvas, y0+thirdH, x0, x1)
		dashedHLine(canvas, y0+2*thirdH, x0, x1)
	}

	for _, h := range geometry.Handles() {
		p := geometry.HandlePosition(n, h)
		fillCircle(canvas, int(math.Round(p.X)), int(math.Round(p.Y)), handleRadius)
	}

	srcW := int(math.Round(n.Width / l.Scale))
	srcH := int(math.Round(n.Height / l.Scale))
	drawLabel(canvas, fmt.Sprintf("%d×%d", srcW, srcH), x0, y0, y1)

	return canvas
}

func shadeRect(canvas *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(canvas.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := canvas.Pix[y*canvas.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			px := row[x*4 : x*4+3]
			px[0] = uint8(float64(px[0]) * dimScale)
			px[1] = uint8(float64(px[1]) * dimScale)
			px[2] = uint8(float64(px[2]) * dimScale)
		}
	}
}

func strokeRect(canvas *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		setPixel(canvas, x, r.Min.Y, c)
		setPixel(canvas, x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		setPixel(canvas, r.Min.X, y, c)
		setPixel(canvas, r.Max.X, y, c)
	}
}

func dashedVLine(canvas *image.NRGBA, x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		if (y-y0)/dashLength%2 == 0 {
			setPixel(canvas, x, y, guideColor)
		}
	}
}

func dashedHLine(canvas *image.NRGBA, y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		if (x-x0)/dashLength%2 == 0 {
			setPixel(canvas, x, y, guideColor)
		}
	}
}

func fillCircle(canvas *image.NRGBA, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := dx*dx + dy*dy
			switch {
			case d2 > radius*radius:
			case d2 >= (radius-1)*(radius-1):
				setPixel(canvas, cx+dx, cy+dy, handleEdge)
			default:
				setPixel(canvas, cx+dx, cy+dy, handleFill)
			}
		}
	}
}

func setPixel(canvas *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Pt(x, y).In(canvas.Bounds())) {
		return
	}
	if c.A == 255 {
		canvas.SetNRGBA(x, y, c)
		return
	}
	// Straight-alpha blend over the existing pixel.
	old := canvas.NRGBAAt(x, y)
	a := int(c.A)
	canvas.SetNRGBA(x, y, color.NRGBA{
		R: uint8((int(c.R)*a + int(old.R)*(255-a)) / 255),
		G: uint8((int(c.G)*a + int(old.G)*(255-a)) / 255),
		B: uint8((int(c.B)*a + int(old.B)*(255-a)) / 255),
		A: 255,
	})
}

func drawLabel(canvas *image.NRGBA, text string, x, top, bottom int) {
	face := basicfont.Face7x13
	// Baseline above the selection unless that would clip off the top edge.
	baseline := top - 6
	if baseline-face.Ascent < 0 {
		baseline = bottom + 6 + face.Ascent
	}

	d := font.Drawer{
		Dst:  canvas,
		Face: face,
		Dot:  fixed.P(x+1, baseline+1),
		Src:  image.NewUniform(labelShadow),
	}
	d.DrawString(text)

	d.Dot = fixed.P(x, baseline)
	d.Src = image.NewUniform(labelColor)
	d.DrawString(text)
}
