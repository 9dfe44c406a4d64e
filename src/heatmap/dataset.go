// Package heatmap renders an option-price surface (price over spot x
// volatility) as a color-mapped raster image and supports the inverse
// pixel-to-cell lookup used for hover tooltips, plus PNG export.
//
// The package is a pure rendering engine: it does not compute prices and
// treats the Dataset it is handed as immutable for the duration of a call.
package heatmap

import "math"

// Grid is a rectangular R x C matrix of option prices. Row i corresponds to
// VolatilityValues[i], column j to SpotValues[j].
type Grid [][]float64

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, zero for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// MinMax scans every cell and returns the global minimum and maximum.
// ok is false when the grid has no cells.
func (g Grid) MinMax() (vmin, vmax float64, ok bool) {
	vmin = math.MaxFloat64
	vmax = -math.MaxFloat64
	for _, row := range g {
		for _, v := range row {
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return vmin, vmax, true
}

// Series selects which option grid of a Dataset is displayed.
type Series int

const (
	SeriesCall Series = iota
	SeriesPut
)

func (s Series) String() string {
	if s == SeriesPut {
		return "put"
	}
	return "call"
}

// ParseSeries maps a user-facing name ("call"/"put") to a Series.
// Unknown input falls back to SeriesCall.
func ParseSeries(s string) Series {
	if s == "put" {
		return SeriesPut
	}
	return SeriesCall
}

// Perspective chooses which price extreme is colored "better". It only
// affects the color scale, never the underlying values.
type Perspective int

const (
	PerspectiveSeller Perspective = iota
	PerspectiveBuyer
)

func (p Perspective) String() string {
	if p == PerspectiveBuyer {
		return "buyer"
	}
	return "seller"
}

// ParsePerspective maps "buyer"/"seller" to a Perspective, defaulting to
// seller for unknown input.
func ParsePerspective(s string) Perspective {
	if s == "buyer" {
		return PerspectiveBuyer
	}
	return PerspectiveSeller
}

// Dataset is one complete surface as produced by the pricing layer: both
// option grids plus the axis coordinate values. SpotValues maps to columns
// (strictly increasing, left to right) and VolatilityValues to rows
// (strictly increasing in storage order).
type Dataset struct {
	Call             Grid
	Put              Grid
	SpotValues       []float64
	VolatilityValues []float64
}

// Grid returns the active grid for the given series.
func (d *Dataset) Grid(s Series) Grid {
	if s == SeriesPut {
		return d.Put
	}
	return d.Call
}

// Valid reports whether both grids are non-empty, rectangular and match the
// axis lengths. Renderer and hit-tester treat anything else as "no data".
func (d *Dataset) Valid() bool {
	if d == nil {
		return false
	}
	rows, cols := d.Call.Rows(), d.Call.Cols()
	if rows < 1 || cols < 1 {
		return false
	}
	if d.Put.Rows() != rows || d.Put.Cols() != cols {
		return false
	}
	if len(d.VolatilityValues) != rows || len(d.SpotValues) != cols {
		return false
	}
	for _, g := range []Grid{d.Call, d.Put} {
		for _, r := range g {
			if len(r) != cols {
				return false
			}
		}
	}
	return true
}

// axisRow maps a visual row index (0 = top of the plot) to the index into
// VolatilityValues, so the top row carries the highest volatility. This flip
// is deliberately the only place display order and storage order meet; both
// the axis labels and the hit-tester go through it.
func axisRow(row, rows int) int { return rows - 1 - row }

// HoverResult describes the grid cell under a pointer position.
type HoverResult struct {
	Row        int
	Col        int
	Value      float64
	Spot       float64
	Volatility float64
}
