// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav for robust chunk parsing
// and supports PCM 16-bit files at any sample rate and channel count.
// Encoding writes the canonical 44-byte RIFF header followed by mono
// 16-bit PCM data.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Use EncodePCM16 to create mono WAV files from float32 samples:
//
//	samples := []float32{0.5, -0.5, 0.25}
//	file, _ := os.Create("output.wav")
//	err := wav.EncodePCM16(file, 44100, samples)
//
// Each sample is clamped to [-1, 1] and quantized to int16 with
// asymmetric scaling, so -1.0 maps to -32768 and 1.0 maps to 32767. The
// output is byte-exact: an empty sample slice yields exactly the 44
// header bytes with ChunkSize 36.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: non-PCM encodings are rejected
//   - ErrInvalidSampleRate: EncodePCM16 was given a rate below 1
package wav
