// SPDX-License-Identifier: EPL-2.0

package raster

import (
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// FlipHorizontal mirrors the surface along its vertical axis. Dimensions are
// unchanged.
func FlipHorizontal(src *image.NRGBA) *image.NRGBA {
	return imaging.FlipH(src)
}

// Resize resamples the surface to exactly targetWidth x targetHeight using
// bilinear interpolation. Width and height are independent; aspect-ratio
// locking is the caller's concern. Dimensions below 1 yield
// ErrInvalidDimensions.
func Resize(src *image.NRGBA, targetWidth, targetHeight int) (*image.NRGBA, error) {
	if targetWidth < 1 || targetHeight < 1 {
		return nil, ErrInvalidDimensions
	}
	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
