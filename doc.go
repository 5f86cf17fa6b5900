// SPDX-License-Identifier: EPL-2.0

// Package pixwav is the engine behind a small image-and-audio utility:
// interactive image cropping and retouching plus audio-to-WAV transcoding,
// with all the pixel and sample work done here and only the widgetry left
// to the host UI.
//
// # Image Editing
//
// The editing side is split into three packages:
//   - geometry: selection rectangles, resize handles, hit-testing and the
//     display layout mapping between canvas and image coordinates
//   - raster: the pixel operations (crop, background removal, flood fill,
//     flip, resize) and canvas rendering
//   - session: the interaction state machine tying it together, with a
//     result-preview gate and undo/redo history
//
// A host feeds pointer events into a session.Session and draws whatever
// Render returns:
//
//	img, _ := pixwav.LoadImage(file)
//	s := session.NewSession(img, 800, 600, logger)
//	s.PointerDown(100, 100)
//	s.PointerMove(300, 250)
//	s.PointerUp()
//	_ = s.Crop()
//	_ = s.UseResult()
//	frame := s.Render()
//
// # Audio Conversion
//
// The audio side decodes WAV, MP3, Ogg Vorbis and AIFF input and produces
// mono 16-bit PCM WAV at 44100 or 22050 Hz:
//
//	out, err := pixwav.ConvertToWAV(ctx, file, 22050)
//
// ConvertToWAV sniffs the input format, so file extensions are ignored.
// For streaming pipelines or overlapping conversion requests, use the
// audio package directly.
//
// # Package Layout
//
//   - geometry: selection and layout math
//   - raster: pixel operations and rendering
//   - session: interaction state, modes, history
//   - audio: Source interface, resampler, mono mixer, converter
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: codecs
//   - utils: interpolation and quantization helpers
package pixwav
