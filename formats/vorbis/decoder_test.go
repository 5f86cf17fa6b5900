// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader is an oggReader seam that serves pre-built frames.
type mockOggReader struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (m *mockOggReader) SampleRate() int { return m.rate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.pos:])
	// Round down to whole frames, as the real reader does.
	frames := n / m.channels
	m.pos += frames * m.channels
	return frames, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &mockOggReader{data: []float32{0.1, 0.2, 0.3, 0.4}, rate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 16),
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &mockOggReader{rate: 44100, channels: 2},
		sampleRate: 44100,
		channels:   2,
		frameBuf:   make([]float32, 16),
	}

	dst := make([]float32, 8)
	if _, err := s.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() on drained source error = %v, want io.EOF", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:      &mockOggReader{data: []float32{0.5}, rate: 44100, channels: 1},
		channels: 1,
	}

	n, err := s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg container"))); err == nil {
		t.Error("Decode() should fail on garbage input")
	}
}
