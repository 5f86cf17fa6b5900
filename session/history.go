// SPDX-License-Identifier: EPL-2.0

package session

import "github.com/ik5/pixwav/raster"

// pushUndo snapshots the current working image onto the undo stack and
// clears the redo stack. Every commit calls this before replacing the image.
func (s *Session) pushUndo() {
	s.undo = append(s.undo, raster.Clone(s.img))
	s.redo = nil
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return len(s.redo) > 0 }

// HistoryDepth returns the number of undo snapshots currently held.
func (s *Session) HistoryDepth() int { return len(s.undo) }

// Undo restores the most recent snapshot, moving the current working image
// onto the redo stack. It returns false when there is nothing to undo.
// History is global to the session and operates on whole-image snapshots.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, s.img)
	s.setImage(prev)
	if s.logger != nil {
		s.logger.Debug("undo", "depth", len(s.undo))
	}
	return true
}

// Redo is the mirror of Undo. It returns false when there is nothing to
// redo.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, s.img)
	s.setImage(next)
	if s.logger != nil {
		s.logger.Debug("redo", "depth", len(s.redo))
	}
	return true
}
