package heatmap

import "errors"

// ErrDegenerateGeometry is returned when the surface is too small to hold a
// plot after the margins are subtracted. Callers skip drawing instead of
// dividing by zero.
var ErrDegenerateGeometry = errors.New("heatmap: degenerate plot geometry")

// Margins reserve space around the plot rectangle, in logical pixels.
// Left and bottom hold the axis tick labels and titles, right holds the
// legend.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargins are the engine's fixed margins.
var DefaultMargins = Margins{Top: 20, Right: 90, Bottom: 50, Left: 70}

// PlotGeometry is the derived drawable region and per-cell size for one
// render pass. It is recomputed from scratch on every call and never stored.
type PlotGeometry struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	CellWidth  float64
	CellHeight float64
}

// ComputeGeometry derives the plot rectangle and cell dimensions for an
// R x C grid on a width x height surface (logical pixels).
func ComputeGeometry(width, height float64, m Margins, rows, cols int) (PlotGeometry, error) {
	if rows < 1 || cols < 1 {
		return PlotGeometry{}, ErrDegenerateGeometry
	}
	pw := width - m.Left - m.Right
	ph := height - m.Top - m.Bottom
	if pw <= 0 || ph <= 0 {
		return PlotGeometry{}, ErrDegenerateGeometry
	}
	return PlotGeometry{
		X:          m.Left,
		Y:          m.Top,
		Width:      pw,
		Height:     ph,
		CellWidth:  pw / float64(cols),
		CellHeight: ph / float64(rows),
	}, nil
}

// CellRect returns the pixel rectangle covered by the cell at (row, col),
// row 0 at the top of the plot.
func (g PlotGeometry) CellRect(row, col int) (x0, y0, x1, y1 float64) {
	x0 = g.X + float64(col)*g.CellWidth
	y0 = g.Y + float64(row)*g.CellHeight
	return x0, y0, x0 + g.CellWidth, y0 + g.CellHeight
}

// Contains reports whether (x, y) lies inside the plot rectangle.
func (g PlotGeometry) Contains(x, y float64) bool {
	return x >= g.X && x < g.X+g.Width && y >= g.Y && y < g.Y+g.Height
}
