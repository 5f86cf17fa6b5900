// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat   = errors.New("unknown audio format")
	ErrUnsupportedRate = errors.New("unsupported target sample rate")
	ErrStaleConversion = errors.New("conversion superseded by a newer request")
	ErrNilSource       = errors.New("nil audio source")
)

// ConversionError reports which pipeline stage a conversion failed in.
type ConversionError struct {
	Stage string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed at %s: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
