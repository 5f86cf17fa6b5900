// SPDX-License-Identifier: EPL-2.0

package geometry

import "testing"

func TestComputeLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		cw, ch                 float64
		iw, ih                 int
		wantScale              float64
		wantOffsetX, wantOffsetY float64
	}{
		{
			name: "wide image limited by width",
			cw:   400, ch: 400, iw: 800, ih: 400,
			wantScale: 0.5, wantOffsetX: 0, wantOffsetY: 100,
		},
		{
			name: "tall image limited by height",
			cw:   400, ch: 200, iw: 400, ih: 800,
			wantScale: 0.25, wantOffsetX: 150, wantOffsetY: 0,
		},
		{
			name: "small image is never upscaled",
			cw:   1000, ch: 1000, iw: 100, ih: 50,
			wantScale: 1, wantOffsetX: 450, wantOffsetY: 475,
		},
		{
			name: "exact fit",
			cw:   640, ch: 480, iw: 640, ih: 480,
			wantScale: 1, wantOffsetX: 0, wantOffsetY: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := ComputeLayout(tt.cw, tt.ch, tt.iw, tt.ih)
			if l.Scale != tt.wantScale {
				t.Errorf("Scale = %v, want %v", l.Scale, tt.wantScale)
			}
			if l.OffsetX != tt.wantOffsetX || l.OffsetY != tt.wantOffsetY {
				t.Errorf("Offset = (%v, %v), want (%v, %v)",
					l.OffsetX, l.OffsetY, tt.wantOffsetX, tt.wantOffsetY)
			}
		})
	}
}

func TestComputeLayout_DegenerateInputs(t *testing.T) {
	t.Parallel()

	l := ComputeLayout(0, 0, 0, 0)
	if l.Scale != 1 {
		t.Errorf("degenerate layout Scale = %v, want 1", l.Scale)
	}
}

func TestLayout_ToSourceRoundTrip(t *testing.T) {
	t.Parallel()

	l := ComputeLayout(400, 400, 800, 400) // scale 0.5, offset (0, 100)

	sx, sy := l.ToSource(200, 200)
	if sx != 400 || sy != 200 {
		t.Errorf("ToSource(200, 200) = (%d, %d), want (400, 200)", sx, sy)
	}

	dx, dy := l.ToDisplay(400, 200)
	if dx != 200 || dy != 200 {
		t.Errorf("ToDisplay(400, 200) = (%v, %v), want (200, 200)", dx, dy)
	}
}

func TestLayout_ToSourceIdentity(t *testing.T) {
	t.Parallel()

	l := Layout{Scale: 1}
	sx, sy := l.ToSource(10.7, 3.2)
	if sx != 10 || sy != 3 {
		t.Errorf("identity ToSource floors to pixels, got (%d, %d)", sx, sy)
	}
}
