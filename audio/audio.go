// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"io"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples in [-1, 1].
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys (e.g. "wav", "mp3", "ogg", "aiff") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// DetectFormat sniffs the container format from the first bytes of a file.
// It returns a registry key, or "" when the prefix matches nothing known.
// Twelve bytes are enough for every supported format.
func DetectFormat(prefix []byte) string {
	switch {
	case len(prefix) >= 12 &&
		bytes.Equal(prefix[0:4], []byte("RIFF")) &&
		bytes.Equal(prefix[8:12], []byte("WAVE")):
		return "wav"
	case len(prefix) >= 12 &&
		bytes.Equal(prefix[0:4], []byte("FORM")) &&
		(bytes.Equal(prefix[8:12], []byte("AIFF")) || bytes.Equal(prefix[8:12], []byte("AIFC"))):
		return "aiff"
	case len(prefix) >= 4 && bytes.Equal(prefix[0:4], []byte("OggS")):
		return "ogg"
	case len(prefix) >= 3 && bytes.Equal(prefix[0:3], []byte("ID3")):
		return "mp3"
	// Raw MPEG audio frame sync: 11 set bits.
	case len(prefix) >= 2 && prefix[0] == 0xFF && prefix[1]&0xE0 == 0xE0:
		return "mp3"
	}
	return ""
}
