package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/canvas"

	"github.com/DavidYu75/black-scholes/cmd/bsviewer/uihelpers"
	"github.com/DavidYu75/black-scholes/src/heatmap"
	"github.com/DavidYu75/black-scholes/src/pricing"
)

func TestRunScreenshotsModeWritesAllVariants(t *testing.T) {
	dir := t.TempDir()
	screenshotWidthOverride = 1000
	defer func() { screenshotWidthOverride = 0 }()

	if err := RunScreenshotsMode(dir, defaultRequest()); err != nil {
		t.Fatalf("RunScreenshotsMode: %v", err)
	}

	wantW, wantH := uihelpers.ComputeHeatmapSize(1000)
	names := []string{
		"surface_call_seller.png",
		"surface_call_buyer.png",
		"surface_put_seller.png",
		"surface_put_buyer.png",
	}
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		b := img.Bounds()
		if b.Dx() != wantW || b.Dy() != wantH {
			t.Errorf("%s: size = %dx%d, want %dx%d", name, b.Dx(), b.Dy(), wantW, wantH)
		}
	}

	f, err := os.Open(filepath.Join(dir, "price_slice.png"))
	if err != nil {
		t.Fatalf("missing price_slice.png: %v", err)
	}
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode price_slice.png: %v", err)
	}
	f.Close()
}

func TestRenderSliceChartHeadless(t *testing.T) {
	ds, err := pricing.Surface(defaultRequest())
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	state := &uiState{request: defaultRequest(), dataset: ds, sliceRow: -1, renderScale: 1}
	screenshotWidthOverride = 900
	defer func() { screenshotWidthOverride = 0 }()

	img := renderSliceChart(state)
	if img == nil {
		t.Fatal("renderSliceChart returned nil for a valid dataset")
	}
	wantW, wantH := uihelpers.ComputeSliceChartSize(900)
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("slice chart size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}

	if img := renderSliceChart(&uiState{}); img != nil {
		t.Error("expected nil slice chart when no dataset is loaded")
	}
}

func TestHoverRowSwitchUpdatesSliceChart(t *testing.T) {
	ds, err := pricing.Surface(defaultRequest())
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
	screenshotWidthOverride = 900
	defer func() { screenshotWidthOverride = 0 }()
	state := &uiState{request: defaultRequest(), dataset: ds, sliceRow: -1, renderScale: 1}
	state.sliceCanvas = canvas.NewImageFromImage(blank(10, 10))

	setSliceRow(state, 0)
	if state.sliceRow != 0 {
		t.Fatalf("sliceRow = %d, want 0", state.sliceRow)
	}
	first := state.sliceCanvas.Image
	if first == nil {
		t.Fatal("slice chart not rendered after row switch")
	}

	// Hovering within the same row costs nothing.
	setSliceRow(state, 0)
	if state.sliceCanvas.Image != first {
		t.Fatal("slice chart re-rendered for an unchanged row")
	}

	// Crossing into another row replaces the chart.
	last := ds.Call.Rows() - 1
	setSliceRow(state, last)
	if state.sliceRow != last {
		t.Fatalf("sliceRow = %d, want %d", state.sliceRow, last)
	}
	if state.sliceCanvas.Image == first {
		t.Fatal("slice chart not re-rendered after the hovered row changed")
	}
}

func TestHoverLabel(t *testing.T) {
	res := heatmap.HoverResult{Row: 1, Col: 2, Value: 12.3456, Spot: 104.5, Volatility: 0.325}
	got := hoverLabel(res, heatmap.SeriesCall)
	want := "Spot $104.50  Vol 32.5%\nCall price: 12.35"
	if got != want {
		t.Errorf("hoverLabel = %q, want %q", got, want)
	}
	got = hoverLabel(res, heatmap.SeriesPut)
	if got != "Spot $104.50  Vol 32.5%\nPut price: 12.35" {
		t.Errorf("put label = %q", got)
	}
}

func TestParseFloatOr(t *testing.T) {
	if v := parseFloatOr(" 1.25 ", 0); v != 1.25 {
		t.Errorf("parseFloatOr(1.25) = %v", v)
	}
	if v := parseFloatOr("abc", 7); v != 7 {
		t.Errorf("parseFloatOr(abc) = %v, want fallback 7", v)
	}
	if v := parseFloatOr("", 3); v != 3 {
		t.Errorf("parseFloatOr(empty) = %v, want fallback 3", v)
	}
}

func TestHeatmapSizeUsesOverride(t *testing.T) {
	screenshotWidthOverride = 1200
	defer func() { screenshotWidthOverride = 0 }()
	w, h := heatmapSize(&uiState{})
	ww, wh := uihelpers.ComputeHeatmapSize(1200)
	if w != ww || h != wh {
		t.Errorf("heatmapSize = %dx%d, want %dx%d", w, h, ww, wh)
	}
}
