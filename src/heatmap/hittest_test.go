package heatmap

import "testing"

func TestHitTestRoundTripAllCells(t *testing.T) {
	ds := exampleDataset()
	const w, h = 400.0, 300.0
	geo, err := ComputeGeometry(w, h, DefaultMargins, 3, 3)
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x0, y0, x1, y1 := geo.CellRect(i, j)
			res, ok := HitTest(ds, SeriesCall, w, h, (x0+x1)/2, (y0+y1)/2)
			if !ok {
				t.Fatalf("cell (%d,%d): no hit at center", i, j)
			}
			if res.Row != i || res.Col != j {
				t.Fatalf("cell (%d,%d): hit returned (%d,%d)", i, j, res.Row, res.Col)
			}
			if res.Value != ds.Call[i][j] {
				t.Fatalf("cell (%d,%d): value %v want %v", i, j, res.Value, ds.Call[i][j])
			}
		}
	}
}

func TestHitTestExampleScenario(t *testing.T) {
	ds := exampleDataset()
	const w, h = 400.0, 300.0
	geo, _ := ComputeGeometry(w, h, DefaultMargins, 3, 3)
	x0, y0, x1, y1 := geo.CellRect(0, 0)
	res, ok := HitTest(ds, SeriesCall, w, h, (x0+x1)/2, (y0+y1)/2)
	if !ok {
		t.Fatalf("expected hit on top-left cell")
	}
	want := HoverResult{Row: 0, Col: 0, Value: 5, Spot: 100, Volatility: 0.3}
	if res != want {
		t.Fatalf("got %+v want %+v", res, want)
	}
}

// The top visual row must report the highest volatility, matching the label
// the renderer draws there.
func TestHitTestRowFlip(t *testing.T) {
	ds := exampleDataset()
	const w, h = 400.0, 300.0
	geo, _ := ComputeGeometry(w, h, DefaultMargins, 3, 3)

	_, y0, _, y1 := geo.CellRect(0, 0)
	top, ok := HitTest(ds, SeriesCall, w, h, geo.X+1, (y0+y1)/2)
	if !ok || top.Volatility != 0.3 {
		t.Fatalf("top row volatility: got %+v want 0.3", top)
	}
	_, y0, _, y1 = geo.CellRect(2, 0)
	bottom, ok := HitTest(ds, SeriesCall, w, h, geo.X+1, (y0+y1)/2)
	if !ok || bottom.Volatility != 0.1 {
		t.Fatalf("bottom row volatility: got %+v want 0.1", bottom)
	}
}

func TestHitTestSeriesSelectsGrid(t *testing.T) {
	ds := exampleDataset()
	const w, h = 400.0, 300.0
	geo, _ := ComputeGeometry(w, h, DefaultMargins, 3, 3)
	x0, y0, x1, y1 := geo.CellRect(1, 1)
	res, ok := HitTest(ds, SeriesPut, w, h, (x0+x1)/2, (y0+y1)/2)
	if !ok || res.Value != ds.Put[1][1] {
		t.Fatalf("put series value: got %+v want %v", res, ds.Put[1][1])
	}
}

func TestHitTestOutsidePlot(t *testing.T) {
	ds := exampleDataset()
	const w, h = 400.0, 300.0
	points := [][2]float64{
		{1, 1},                   // top-left margin
		{w - 1, h - 1},           // bottom-right margin
		{DefaultMargins.Left - 1, h / 2}, // just left of plot
		{w - DefaultMargins.Right + 1, h / 2}, // legend area
	}
	for _, pt := range points {
		if _, ok := HitTest(ds, SeriesCall, w, h, pt[0], pt[1]); ok {
			t.Fatalf("point (%v,%v) should miss", pt[0], pt[1])
		}
	}
}

func TestHitTestDegenerateInputs(t *testing.T) {
	if _, ok := HitTest(nil, SeriesCall, 400, 300, 200, 150); ok {
		t.Fatalf("nil dataset should never hit")
	}
	if _, ok := HitTest(&Dataset{}, SeriesCall, 400, 300, 200, 150); ok {
		t.Fatalf("empty dataset should never hit")
	}
	ds := exampleDataset()
	if _, ok := HitTest(ds, SeriesCall, 50, 30, 10, 10); ok {
		t.Fatalf("degenerate surface should never hit")
	}
}

func TestHitTestSingleCell(t *testing.T) {
	ds := &Dataset{
		Call:             Grid{{7}},
		Put:              Grid{{3}},
		SpotValues:       []float64{100},
		VolatilityValues: []float64{0.25},
	}
	const w, h = 300.0, 200.0
	geo, _ := ComputeGeometry(w, h, DefaultMargins, 1, 1)
	// Any in-plot point hits the sole cell.
	res, ok := HitTest(ds, SeriesCall, w, h, geo.X+1, geo.Y+1)
	if !ok || res.Row != 0 || res.Col != 0 || res.Value != 7 || res.Volatility != 0.25 {
		t.Fatalf("single cell hit: %+v", res)
	}
	res, ok = HitTest(ds, SeriesCall, w, h, geo.X+geo.Width-1, geo.Y+geo.Height-1)
	if !ok || res.Row != 0 || res.Col != 0 {
		t.Fatalf("single cell far corner hit: %+v", res)
	}
}
