package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// renderSliceChart draws call and put price against spot for one volatility
// row of the current surface. Returns nil when there is nothing to plot yet.
func renderSliceChart(state *uiState) image.Image {
	if state == nil || state.dataset == nil || !state.dataset.Valid() {
		return nil
	}
	ds := state.dataset
	row := state.sliceRow
	if row < 0 || row >= ds.Call.Rows() {
		row = ds.Call.Rows() / 2
	}
	w, h := sliceChartSize(state)

	xs := make([]float64, len(ds.SpotValues))
	copy(xs, ds.SpotValues)
	callYs := make([]float64, len(ds.Call[row]))
	copy(callYs, ds.Call[row])
	putYs := make([]float64, len(ds.Put[row]))
	copy(putYs, ds.Put[row])

	ch := chart.Chart{
		Title:  fmt.Sprintf("Option Price vs Spot (vol %.1f%%)", ds.VolatilityValues[row]*100),
		Width:  w,
		Height: h,
		XAxis: chart.XAxis{
			Name:           "Spot Price ($)",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		YAxis: chart.YAxis{
			Name: "Price",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Call",
				XValues: xs,
				YValues: callYs,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("2a7de1"),
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Put",
				XValues: xs,
				YValues: putYs,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("d64541"),
					StrokeWidth: 2,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[viewer] slice chart render failed: %v\n", err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[viewer] slice chart decode failed: %v\n", err)
		return blank(w, h)
	}
	return img
}
