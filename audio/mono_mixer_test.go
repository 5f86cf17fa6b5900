package audio

import (
	"io"
	"math"
	"testing"
)

func TestMonoMixer_StereoAverage(t *testing.T) {
	t.Parallel()

	// Left channel 0.8, right channel 0.2; the average is 0.5.
	src := newMockSource(44100, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.8
		}
		return 0.2
	})
	m := NewMonoMixer(src)

	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if m.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", m.SampleRate())
	}

	out := drain(t, m, 64)
	if len(out) != 100 {
		t.Fatalf("got %d mono samples, want 100", len(out))
	}
	for i, s := range out {
		if math.Abs(float64(s)-0.5) > 1e-5 {
			t.Fatalf("out[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(22050, 1, 50, 0.3)
	m := NewMonoMixer(src)

	out := drain(t, m, 16)
	if len(out) != 50 {
		t.Fatalf("got %d samples, want 50", len(out))
	}
	for _, s := range out {
		if s != 0.3 {
			t.Fatalf("passthrough altered sample to %v", s)
		}
	}
}

func TestMonoMixer_ThreeChannels(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 3, 30, func(sample, channel int) float32 {
		return float32(channel) // 0, 1, 2 -> average 1
	})
	m := NewMonoMixer(src)

	for _, s := range drain(t, m, 32) {
		if math.Abs(float64(s)-1.0) > 1e-5 {
			t.Fatalf("3-channel average = %v, want 1.0", s)
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newConstantSource(44100, 2, 10, 0.1))

	n, err := m.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(newSilentSource(44100, 2, 0))

	buf := make([]float32, 16)
	if _, err := m.ReadSamples(buf); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}
