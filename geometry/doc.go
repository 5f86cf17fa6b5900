// SPDX-License-Identifier: EPL-2.0

// Package geometry implements the pure rectangle math behind interactive
// selections: normalization, resize-handle placement and hit-testing, cursor
// lookup, and the layout transform between source-image pixel space and the
// scaled canvas-display space.
//
// All functions are pure; none touch pixel data. Rectangles use display
// coordinates and may carry negative width or height mid-gesture, which is
// what lets a drag cross its own origin. Normalize before anything that
// assumes a top-left origin.
package geometry
