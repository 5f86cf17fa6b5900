// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"image"
	"image/color"
	"math"
)

// MaxColorDistance is the largest possible Euclidean distance between two
// RGB triples: sqrt(3 * 255^2).
const MaxColorDistance = 441.6729559300637

// maxEdgeSamples caps the number of border pixels inspected by
// DetectBackgroundColor.
const maxEdgeSamples = 200

// ColorDistance returns the Euclidean distance between the RGB components of
// two colors. Alpha is ignored.
func ColorDistance(a, b color.NRGBA) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DetectBackgroundColor estimates the background color of a surface by
// sampling pixels along all four edges. Samples are bucketed with each
// channel quantized to 16 levels, which tolerates anti-aliasing noise better
// than exact-match counting; the average color of the largest bucket wins.
// Backgrounds are typically uniform near the edges, so this is a cheap
// mode-seeking estimate.
func DetectBackgroundColor(src *image.NRGBA) color.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.NRGBA{A: 255}
	}

	perimeter := 2 * (w + h)
	stride := 1
	if perimeter > maxEdgeSamples {
		stride = (perimeter + maxEdgeSamples - 1) / maxEdgeSamples
	}

	type bucket struct {
		count            int
		sumR, sumG, sumB int
	}
	buckets := make(map[uint32]*bucket)

	add := func(x, y int) {
		c := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
		key := uint32(c.R>>4)<<8 | uint32(c.G>>4)<<4 | uint32(c.B>>4)
		bk := buckets[key]
		if bk == nil {
			bk = &bucket{}
			buckets[key] = bk
		}
		bk.count++
		bk.sumR += int(c.R)
		bk.sumG += int(c.G)
		bk.sumB += int(c.B)
	}

	for x := 0; x < w; x += stride {
		add(x, 0)
		add(x, h-1)
	}
	for y := 0; y < h; y += stride {
		add(0, y)
		add(w-1, y)
	}

	var best *bucket
	for _, bk := range buckets {
		if best == nil || bk.count > best.count {
			best = bk
		}
	}
	return color.NRGBA{
		R: uint8(best.sumR / best.count),
		G: uint8(best.sumG / best.count),
		B: uint8(best.sumB / best.count),
		A: 255,
	}
}

// RemoveBackground produces a copy of the surface where pixels close to the
// target color become transparent. With threshold = tolerancePercent/100 *
// MaxColorDistance, pixels within 0.7*threshold of the target are fully
// transparent and pixels in the (0.7*threshold, threshold] band get alpha
// ramped linearly from 0 to 255, giving a soft edge instead of a hard
// cutout. Pixels beyond the threshold are untouched.
func RemoveBackground(src *image.NRGBA, target color.NRGBA, tolerancePercent float64) *image.NRGBA {
	out := Clone(src)
	threshold := tolerancePercent / 100 * MaxColorDistance
	if threshold <= 0 {
		return out
	}
	hard := 0.7 * threshold
	band := threshold - hard

	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[(y-b.Min.Y)*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*4 : x*4+4 : x*4+4]
			d := ColorDistance(color.NRGBA{R: px[0], G: px[1], B: px[2]}, target)
			switch {
			case d <= hard:
				px[3] = 0
			case d <= threshold:
				px[3] = uint8(math.Round((d - hard) / band * 255))
			}
		}
	}
	return out
}
