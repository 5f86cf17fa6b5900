// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// Target sample rates the converter accepts.
const (
	RateFull = 44100
	RateHalf = 22050
)

// ValidRate reports whether rate is an accepted conversion target.
func ValidRate(rate int) bool {
	return rate == RateFull || rate == RateHalf
}

// Result carries the outcome of an asynchronous conversion.
type Result struct {
	Samples []float32
	Rate    int
	Err     error
}

// Converter runs the transcode pipeline: resample the decoded source to the
// target rate, downmix to mono, and collect the samples. A Converter is safe
// for concurrent use; when conversions overlap, only the most recently
// started one delivers samples and the rest resolve to ErrStaleConversion.
type Converter struct {
	logger *slog.Logger
	token  atomic.Uint64
}

// NewConverter returns a Converter. A nil logger disables logging.
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert drains src through the resample and mono-downmix stages and
// returns the collected samples at targetRate. Only RateFull and RateHalf
// are accepted. The context is checked between read chunks, so a cancelled
// conversion stops promptly.
func (c *Converter) Convert(ctx context.Context, src Source, targetRate int) ([]float32, error) {
	if src == nil {
		return nil, &ConversionError{Stage: "decode", Err: ErrNilSource}
	}
	if !ValidRate(targetRate) {
		return nil, &ConversionError{Stage: "resample", Err: ErrUnsupportedRate}
	}

	if c.logger != nil {
		c.logger.Debug("conversion started",
			"src_rate", src.SampleRate(),
			"src_channels", src.Channels(),
			"target_rate", targetRate,
		)
	}

	mono := NewMonoMixer(NewResampler(src, targetRate))

	var samples []float32
	buf := make([]float32, 4096)

	for {
		if err := ctx.Err(); err != nil {
			return nil, &ConversionError{Stage: "resample", Err: err}
		}

		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ConversionError{Stage: "resample", Err: err}
		}
	}

	if c.logger != nil {
		c.logger.Debug("conversion finished", "samples", len(samples), "rate", targetRate)
	}

	return samples, nil
}

// ConvertAsync starts Convert on its own goroutine and delivers the outcome
// on the returned channel. Starting a newer conversion invalidates every one
// still in flight: an invalidated conversion resolves with
// ErrStaleConversion and no samples. The channel is buffered, so the result
// can be ignored without leaking the goroutine.
func (c *Converter) ConvertAsync(ctx context.Context, src Source, targetRate int) <-chan Result {
	seq := c.token.Add(1)
	ch := make(chan Result, 1)

	go func() {
		samples, err := c.Convert(ctx, src, targetRate)
		if c.token.Load() != seq {
			if c.logger != nil {
				c.logger.Debug("conversion dropped as stale", "rate", targetRate)
			}
			ch <- Result{Rate: targetRate, Err: ErrStaleConversion}
			return
		}
		ch <- Result{Samples: samples, Rate: targetRate, Err: err}
	}()

	return ch
}
