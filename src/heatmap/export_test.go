package heatmap

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNGRoundTrip(t *testing.T) {
	img, _ := Render(exampleDataset(), SeriesCall, PerspectiveSeller, RenderOptions{Width: 400, Height: 300, Scale: 1})
	if img == nil {
		t.Fatalf("render no-opped")
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds changed: %v vs %v", decoded.Bounds(), img.Bounds())
	}
}

func TestEncodePNGNilImage(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, nil); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestSavePNG(t *testing.T) {
	img, _ := Render(exampleDataset(), SeriesPut, PerspectiveBuyer, RenderOptions{Width: 400, Height: 300, Scale: 1})
	path := filepath.Join(t.TempDir(), "surface.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("decode written file: %v", err)
	}
}
