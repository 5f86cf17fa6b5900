// SPDX-License-Identifier: EPL-2.0

package geometry

import "math"

// Layout maps source-image pixel space to canvas-display space. The image is
// scaled down to fit the container (never up) and centered.
type Layout struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// ComputeLayout derives the layout for an imageW x imageH source shown in a
// containerW x containerH canvas. Recompute whenever the container resizes
// or the working image is replaced; selection coordinates are display-space
// and are not valid across a layout change.
func ComputeLayout(containerW, containerH float64, imageW, imageH int) Layout {
	if imageW < 1 || imageH < 1 || containerW <= 0 || containerH <= 0 {
		return Layout{Scale: 1}
	}
	scale := math.Min(containerW/float64(imageW), containerH/float64(imageH))
	if scale > 1 {
		scale = 1
	}
	return Layout{
		Scale:   scale,
		OffsetX: (containerW - float64(imageW)*scale) / 2,
		OffsetY: (containerH - float64(imageH)*scale) / 2,
	}
}

// ToSource inverse-maps a display coordinate to integer source pixel
// coordinates. The result may lie outside the image bounds; callers check.
func (l Layout) ToSource(displayX, displayY float64) (int, int) {
	return int(math.Floor((displayX - l.OffsetX) / l.Scale)),
		int(math.Floor((displayY - l.OffsetY) / l.Scale))
}

// ToDisplay maps a source pixel coordinate to display space.
func (l Layout) ToDisplay(sourceX, sourceY int) (float64, float64) {
	return float64(sourceX)*l.Scale + l.OffsetX,
		float64(sourceY)*l.Scale + l.OffsetY
}
