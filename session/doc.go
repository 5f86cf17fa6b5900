// SPDX-License-Identifier: EPL-2.0

// Package session implements the interactive editing session: a single
// working image, the pointer-driven selection state machine, the editing
// modes, and the undo/redo history.
//
// A Session owns all mutable editor state and is driven by the host through
// discrete events: pointer down/move/up/leave, mode changes, parameter
// setters, and commit operations. Events are processed one at a time to
// completion; a Session is not safe for concurrent use and does not need to
// be, since one image is edited at a time.
//
// Crop, background removal and resize produce a result preview the host must
// accept (UseResult) or discard (CancelResult); fill and flip apply to the
// working image immediately. Every committed change pushes the previous
// working image onto the undo stack and clears the redo stack.
package session
