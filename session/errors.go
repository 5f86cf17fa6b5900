// SPDX-License-Identifier: EPL-2.0

package session

import "errors"

var (
	ErrNoSelection       = errors.New("no selection of at least the minimum size")
	ErrNoResult          = errors.New("no pending result to accept or cancel")
	ErrNoBackgroundColor = errors.New("no background color detected or picked")
	ErrToleranceRange    = errors.New("tolerance must be between 1 and 60")
	ErrWrongMode         = errors.New("operation not available in the current mode")
)
