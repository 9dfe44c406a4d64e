package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DavidYu75/black-scholes/src/heatmap"
	"github.com/DavidYu75/black-scholes/src/pricing"
)

// RunScreenshotsMode renders every chart variant to PNG files in outDir
// without opening a window. Used by -screenshots and by tests.
func RunScreenshotsMode(outDir string, req pricing.SurfaceRequest) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if screenshotWidthOverride == 0 {
		screenshotWidthOverride = 1280
		defer func() { screenshotWidthOverride = 0 }()
	}

	ds, err := pricing.Surface(req)
	if err != nil {
		return fmt.Errorf("generate surface: %w", err)
	}
	state := &uiState{
		request:     req,
		dataset:     ds,
		renderScale: 1,
	}

	variants := []struct {
		series heatmap.Series
		persp  heatmap.Perspective
	}{
		{heatmap.SeriesCall, heatmap.PerspectiveSeller},
		{heatmap.SeriesCall, heatmap.PerspectiveBuyer},
		{heatmap.SeriesPut, heatmap.PerspectiveSeller},
		{heatmap.SeriesPut, heatmap.PerspectiveBuyer},
	}
	for _, v := range variants {
		state.series = v.series
		state.perspective = v.persp
		img := renderHeatmap(state)
		name := fmt.Sprintf("surface_%s_%s.png", v.series, v.persp)
		if err := heatmap.SavePNG(filepath.Join(outDir, name), img); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		fmt.Printf("[viewer] wrote %s\n", name)
	}

	state.sliceRow = -1
	if img := renderSliceChart(state); img != nil {
		name := "price_slice.png"
		if err := heatmap.SavePNG(filepath.Join(outDir, name), img); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		fmt.Printf("[viewer] wrote %s\n", name)
	}
	return nil
}
