package uihelpers

import "testing"

func TestComputeContainRectWideView(t *testing.T) {
	// Image narrower than the view: vertical fit, horizontal centering.
	x, y, w, h, scale := ComputeContainRect(400, 400, 800, 400)
	if scale != 1 {
		t.Fatalf("scale %v want 1", scale)
	}
	if w != 400 || h != 400 {
		t.Fatalf("drawn size %vx%v want 400x400", w, h)
	}
	if x != 200 || y != 0 {
		t.Fatalf("offset (%v,%v) want (200,0)", x, y)
	}
}

func TestComputeContainRectDownscale(t *testing.T) {
	x, y, w, h, scale := ComputeContainRect(1000, 500, 500, 500)
	if scale != 0.5 {
		t.Fatalf("scale %v want 0.5", scale)
	}
	if w != 500 || h != 250 {
		t.Fatalf("drawn size %vx%v want 500x250", w, h)
	}
	if x != 0 || y != 125 {
		t.Fatalf("offset (%v,%v) want (0,125)", x, y)
	}
}

func TestComputeContainRectDegenerate(t *testing.T) {
	_, _, w, h, scale := ComputeContainRect(0, 100, 500, 500)
	if w != 0 || h != 0 || scale != 1 {
		t.Fatalf("degenerate input must return zero rect with scale 1")
	}
}

func TestViewToImageRoundTrip(t *testing.T) {
	const imgW, imgH, viewW, viewH = 1000, 500, 500, 500
	x, y, _, _, scale := ComputeContainRect(imgW, imgH, viewW, viewH)
	// The center of the drawn image maps back to the image center.
	ix, iy, ok := ViewToImage(x+imgW*scale/2, y+imgH*scale/2, imgW, imgH, viewW, viewH)
	if !ok {
		t.Fatalf("center must map")
	}
	if ix != imgW/2 || iy != imgH/2 {
		t.Fatalf("mapped to (%v,%v) want (%v,%v)", ix, iy, imgW/2, imgH/2)
	}
}

func TestViewToImageRejectsLetterbox(t *testing.T) {
	// Letterbox band above the drawn image must not map.
	if _, _, ok := ViewToImage(250, 10, 1000, 500, 500, 500); ok {
		t.Fatalf("letterbox point should not map")
	}
}

func TestComputeHeatmapSizeClamps(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 500},
		{500, 500},
		{1200, 1200},
		{2400, 1600},
	}
	for _, c := range cases {
		w, h := ComputeHeatmapSize(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 340 || h > 900 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestComputeSliceChartSizeClamps(t *testing.T) {
	w, h := ComputeSliceChartSize(900)
	if w != 900 {
		t.Fatalf("width %d want 900", w)
	}
	if h < 240 || h > 480 {
		t.Fatalf("height clamp violated: %d", h)
	}
}
