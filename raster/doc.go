// SPDX-License-Identifier: EPL-2.0

// Package raster implements the pixel-level image operations of the editor:
// region extraction, background-color detection and removal, flood fill,
// flipping, resampling, and canvas rendering with a selection overlay.
//
// All operations work on *image.NRGBA surfaces (straight-alpha, interleaved
// RGBA bytes) and return new surfaces; inputs are never mutated. Validation
// happens at the operation boundary, not inside pixel loops, so operations
// are total for any surface and in-range parameters.
//
// Color distance throughout this package is the Euclidean distance between
// RGB triples, ranging from 0 to MaxColorDistance (≈441.67). Tolerances are
// expressed as a percentage of that maximum.
package raster
