package heatmap

// HitTest maps a pointer position (logical pixels, relative to the surface)
// back to the grid cell it covers. width and height are the logical surface
// size the last render used; the geometry is recomputed rather than cached
// so the mapping can never go stale.
//
// ok is false when the dataset is absent, the geometry is degenerate, or the
// point falls in the margins. The value reported is the one painted at that
// cell; the volatility is read through the same axis flip the renderer uses
// for its labels, so the top visual row reports the maximum volatility.
func HitTest(ds *Dataset, series Series, width, height, x, y float64) (HoverResult, bool) {
	if !ds.Valid() {
		return HoverResult{}, false
	}
	grid := ds.Grid(series)
	rows, cols := grid.Rows(), grid.Cols()

	geo, err := ComputeGeometry(width, height, DefaultMargins, rows, cols)
	if err != nil {
		return HoverResult{}, false
	}
	if !geo.Contains(x, y) {
		return HoverResult{}, false
	}
	col := int((x - geo.X) / geo.CellWidth)
	row := int((y - geo.Y) / geo.CellHeight)
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return HoverResult{}, false
	}
	return HoverResult{
		Row:        row,
		Col:        col,
		Value:      grid[row][col],
		Spot:       ds.SpotValues[col],
		Volatility: ds.VolatilityValues[axisRow(row, rows)],
	}, true
}
