// SPDX-License-Identifier: EPL-2.0

package pixwav

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	"github.com/ik5/pixwav/audio"
	"github.com/ik5/pixwav/formats/aiff"
	"github.com/ik5/pixwav/formats/mp3"
	"github.com/ik5/pixwav/formats/vorbis"
	"github.com/ik5/pixwav/formats/wav"
	"github.com/ik5/pixwav/raster"
)

// DefaultRegistry maps sniffed format keys to the bundled decoders.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// ConvertToWAV transcodes the audio stream r into a mono 16-bit PCM WAV
// file at targetRate, which must be 44100 or 22050. The input format is
// sniffed from the stream's first bytes; WAV, MP3, Ogg Vorbis and AIFF
// inputs are supported.
func ConvertToWAV(ctx context.Context, r io.Reader, targetRate int) ([]byte, error) {
	br := bufio.NewReader(r)

	prefix, err := br.Peek(12)
	if len(prefix) == 0 {
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return nil, audio.ErrUnknownFormat
	}

	format := audio.DetectFormat(prefix)
	if format == "" {
		return nil, audio.ErrUnknownFormat
	}

	dec, ok := DefaultRegistry.Get(format)
	if !ok {
		return nil, audio.ErrUnknownFormat
	}

	src, err := dec.Decode(br)
	if err != nil {
		return nil, &audio.ConversionError{Stage: "decode", Err: err}
	}
	defer src.Close()

	samples, err := audio.NewConverter(nil).Convert(ctx, src, targetRate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := wav.EncodePCM16(&buf, targetRate, samples); err != nil {
		return nil, &audio.ConversionError{Stage: "encode", Err: err}
	}

	return buf.Bytes(), nil
}

// LoadImage decodes an image stream into the editor's working surface.
// PNG, JPEG, GIF, WebP, BMP and TIFF inputs are supported, with EXIF
// orientation applied.
func LoadImage(r io.Reader) (*image.NRGBA, error) {
	return raster.Decode(r)
}
