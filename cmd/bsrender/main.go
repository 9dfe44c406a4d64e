// Command bsrender renders a Black-Scholes price surface to a PNG without a
// GUI. It is the headless companion to bsviewer, useful for scripting and
// for generating documentation images.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DavidYu75/black-scholes/src/heatmap"
	"github.com/DavidYu75/black-scholes/src/pricing"
)

func main() {
	var (
		strike   = flag.Float64("strike", 100, "Option strike price")
		maturity = flag.Float64("maturity", 1, "Time to maturity in years")
		rate     = flag.Float64("rate", 0.05, "Risk-free interest rate")
		dividend = flag.Float64("dividend", 0, "Annual dividend yield (decimal)")
		spotMin  = flag.Float64("spot-min", 80, "Minimum spot price")
		spotMax  = flag.Float64("spot-max", 120, "Maximum spot price")
		volMin   = flag.Float64("vol-min", 0.1, "Minimum volatility")
		volMax   = flag.Float64("vol-max", 0.5, "Maximum volatility")
		gridSize = flag.Int("grid", pricing.DefaultGridSize, "Grid steps per axis (5-20)")
		series   = flag.String("series", "call", "Option series: call or put")
		persp    = flag.String("perspective", "seller", "Color perspective: buyer or seller")
		width    = flag.Int("width", 900, "Image width in logical pixels")
		height   = flag.Int("height", 600, "Image height in logical pixels")
		scale    = flag.Float64("scale", 1, "Device pixel ratio for the backing image")
		out      = flag.String("o", "surface.png", "Output PNG path")
		logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()
	pricing.SetLogLevel(*logLevel)

	ds, err := pricing.Surface(pricing.SurfaceRequest{
		Base: pricing.Params{
			Strike:        *strike,
			Maturity:      *maturity,
			Rate:          *rate,
			DividendYield: *dividend,
		},
		SpotMin:  *spotMin,
		SpotMax:  *spotMax,
		VolMin:   *volMin,
		VolMax:   *volMax,
		GridSize: *gridSize,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	img, info := heatmap.Render(ds, heatmap.ParseSeries(*series), heatmap.ParsePerspective(*persp), heatmap.RenderOptions{
		Width:  *width,
		Height: *height,
		Scale:  *scale,
	})
	if img == nil {
		fmt.Fprintf(os.Stderr, "error: surface %dx%d too small to render\n", *width, *height)
		os.Exit(1)
	}
	if err := heatmap.SavePNG(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s/%s %dx%d cells, price range [%.2f, %.2f]\n",
		*out, *series, *persp, ds.Call.Rows(), ds.Call.Cols(), info.VMin, info.VMax)
}
