package heatmap

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// intensityGamma lifts mid-range intensities so adjacent cells stay visually
// separable.
const intensityGamma = 0.7

// Intensity maps a raw grid value to the normalized color intensity in
// [0, 1]. vmin and vmax are the active grid's global extremes. A flat grid
// (vmax == vmin) yields the fixed mid-scale value 0.5 rather than NaN.
//
// For the buyer perspective the scale is inverted: a lower price is the
// better deal, so it ends up at high intensity.
func Intensity(v, vmin, vmax float64, p Perspective) float64 {
	var t float64
	if vmax == vmin {
		t = 0.5
	} else {
		t = (v - vmin) / (vmax - vmin)
	}
	if p == PerspectiveBuyer {
		t = 1 - t
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Pow(t, intensityGamma)
}

// ScaleColor maps a normalized intensity to its display color. Hue runs
// from 0 (red, "worse") to 120 degrees (green, "better"); saturation and
// lightness rise with intensity so the endpoints are deterministic
// regardless of perspective.
func ScaleColor(i float64) colorful.Color {
	if i < 0 {
		i = 0
	} else if i > 1 {
		i = 1
	}
	return colorful.Hsl(i*120, 0.70+i*0.30, 0.35+i*0.25)
}

// LegendEndpoints returns the two fixed endpoint colors of the scale:
// low is the i=0 ("worse") color, high the i=1 ("better") color.
func LegendEndpoints() (low, high colorful.Color) {
	return ScaleColor(0), ScaleColor(1)
}
