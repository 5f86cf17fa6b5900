// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level transcode primitives.
//
// This package contains the building blocks of the conversion pipeline:
//   - Source interface for decoded audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmixing
//   - Converter for the full resample-and-downmix pipeline
//   - Format registry and sniffing for decoder dispatch
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processing stages implement this interface,
// allowing them to be chained together.
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 22050)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Conversion
//
// The Converter runs the whole pipeline and gates the target rate to the
// two rates the output format supports, 44100 and 22050 Hz:
//
//	conv := audio.NewConverter(logger)
//	samples, err := conv.Convert(ctx, source, audio.RateHalf)
//
// ConvertAsync runs the same pipeline on its own goroutine; when requests
// overlap, only the newest delivers samples and older ones resolve to
// ErrStaleConversion.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0] throughout the pipeline: 0.0 is
// silence and the extremes are maximum amplitude. Quantization to 16-bit
// PCM happens only at the encoding boundary.
//
// # Error Handling
//
// Pipeline stages return io.EOF when no more data is available. The
// Converter wraps stage failures in a ConversionError naming the stage:
//
//	samples, err := conv.Convert(ctx, src, 44100)
//	var cerr *audio.ConversionError
//	if errors.As(err, &cerr) {
//	    log.Printf("failed at %s: %v", cerr.Stage, cerr.Err)
//	}
package audio
