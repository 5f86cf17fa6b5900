// SPDX-License-Identifier: EPL-2.0

package raster

import "errors"

var (
	ErrNotImageFile      = errors.New("not a supported image file")
	ErrEmptyRegion       = errors.New("selection maps to an empty pixel region")
	ErrSeedOutOfBounds   = errors.New("fill seed outside image bounds")
	ErrInvalidDimensions = errors.New("target dimensions must be at least 1x1")
)
