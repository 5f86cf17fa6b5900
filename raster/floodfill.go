// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"image"
	"image/color"
)

// FloodFill returns a copy of the surface with the 4-connected region around
// the seed pixel set to fillColor at full opacity. A pixel belongs to the
// region when its color distance to the seed pixel's original color is
// within tolerancePercent/100 * MaxColorDistance. The traversal is an
// iterative index stack over the pixel buffer, not recursion, so large
// uniform regions cannot exhaust the call stack. A seed outside the image
// bounds yields ErrSeedOutOfBounds.
func FloodFill(src *image.NRGBA, seedX, seedY int, fillColor color.NRGBA, tolerancePercent float64) (*image.NRGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if seedX < 0 || seedY < 0 || seedX >= w || seedY >= h {
		return nil, ErrSeedOutOfBounds
	}

	out := Clone(src)
	threshold := tolerancePercent / 100 * MaxColorDistance
	seed := src.NRGBAAt(b.Min.X+seedX, b.Min.Y+seedY)
	fillColor.A = 255

	at := func(idx int) color.NRGBA {
		x, y := idx%w, idx/w
		return src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	}
	set := func(idx int) {
		x, y := idx%w, idx/w
		out.SetNRGBA(b.Min.X+x, b.Min.Y+y, fillColor)
	}

	visited := make([]bool, w*h)
	stack := []int{seedY*w + seedX}
	visited[stack[0]] = true

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ColorDistance(at(idx), seed) > threshold {
			continue
		}
		set(idx)

		x, y := idx%w, idx/w
		if x > 0 && !visited[idx-1] {
			visited[idx-1] = true
			stack = append(stack, idx-1)
		}
		if x < w-1 && !visited[idx+1] {
			visited[idx+1] = true
			stack = append(stack, idx+1)
		}
		if y > 0 && !visited[idx-w] {
			visited[idx-w] = true
			stack = append(stack, idx-w)
		}
		if y < h-1 && !visited[idx+w] {
			visited[idx+w] = true
			stack = append(stack, idx+w)
		}
	}

	return out, nil
}
