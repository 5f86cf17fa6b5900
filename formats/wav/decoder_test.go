// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []float32{0.5, -0.5, 0.25, -0.25, 0, 1.0, -1.0}

	var buf bytes.Buffer
	if err := EncodePCM16(&buf, 44100, in); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var out []float32
	dst := make([]float32, 4)
	for {
		n, err := src.ReadSamples(dst)
		out = append(out, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(out) != len(in) {
		t.Fatalf("decoded %d samples, want %d", len(out), len(in))
	}
	for i := range in {
		// One quantization step of tolerance.
		if math.Abs(float64(out[i]-in[i])) > 1.0/32768.0 {
			t.Errorf("sample %d = %v, want about %v", i, out[i], in[i])
		}
	}
}

func TestDecoder_NonSeekerInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodePCM16(&buf, 22050, []float32{0.1, 0.2}); err != nil {
		t.Fatalf("EncodePCM16() error = %v", err)
	}

	// bytes.Buffer is not an io.ReadSeeker, so this exercises the
	// buffering fallback.
	src, err := Decoder{}.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not a wav file at all")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_Empty(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() on empty input should fail")
	}
}

// mockWavReader is a wavReader seam for source-level tests.
type mockWavReader struct {
	data []int
	pos  int
}

func (m *mockWavReader) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 44100}
}

func (m *mockWavReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.pos >= len(m.data) {
		return 0, nil
	}
	n := copy(buf.Data, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func TestSource_ReadSamplesNormalizes(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &mockWavReader{data: []int{16384, -16384, 32767, -32768}},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 4)
	n, err := s.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamplesEOF(t *testing.T) {
	t.Parallel()

	s := &source{
		dec:        &mockWavReader{},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 8)
	if _, err := s.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() on drained source error = %v, want io.EOF", err)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	s := &source{dec: &mockWavReader{data: []int{1}}}
	n, err := s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
