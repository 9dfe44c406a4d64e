// Command bsviewer is the interactive Black-Scholes surface viewer: a
// parameter panel, a color-mapped price heatmap with hover lookup, a
// companion price-vs-spot chart, and PNG export.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/DavidYu75/black-scholes/cmd/bsviewer/uihelpers"
	"github.com/DavidYu75/black-scholes/src/heatmap"
	"github.com/DavidYu75/black-scholes/src/pricing"
)

// screenshotWidthOverride forces a fixed render width when running headless
// (screenshots mode and tests), where no window exists to measure.
var screenshotWidthOverride int

type uiState struct {
	app    fyne.App
	window fyne.Window

	request pricing.SurfaceRequest
	dataset *heatmap.Dataset

	series      heatmap.Series
	perspective heatmap.Perspective

	crosshairEnabled bool
	// sliceRow is the storage row (volatility index) the slice chart plots;
	// -1 selects the middle row until the user hovers a cell.
	sliceRow int

	// last heatmap render, needed to map hover positions back to cells
	renderW, renderH int
	renderScale      float64
	renderInfo       heatmap.RenderInfo

	// widgets
	heatmapCanvas *canvas.Image
	sliceCanvas   *canvas.Image
	overlay       *hoverOverlay
	quoteLabel    *widget.Label
}

func defaultRequest() pricing.SurfaceRequest {
	return pricing.SurfaceRequest{
		Base:     pricing.Params{Spot: 100, Strike: 100, Maturity: 1, Volatility: 0.2, Rate: 0.05},
		SpotMin:  80,
		SpotMax:  120,
		VolMin:   0.1,
		VolMax:   0.5,
		GridSize: pricing.DefaultGridSize,
	}
}

func main() {
	var (
		screenshots bool
		outDir      string
		logLevel    string
	)
	flag.BoolVar(&screenshots, "screenshots", false, "Render all chart variants as PNGs and exit (headless)")
	flag.StringVar(&outDir, "out", "screenshots", "Output directory for -screenshots")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	pricing.SetLogLevel(logLevel)

	if screenshots {
		if err := RunScreenshotsMode(outDir, defaultRequest()); err != nil {
			fmt.Printf("[viewer] screenshots mode failed: %v\n", err)
			return
		}
		fmt.Printf("[viewer] screenshots written to %s\n", outDir)
		return
	}

	a := app.NewWithID("com.davidyu.blackscholes")
	w := a.NewWindow("Black-Scholes Surface Viewer")
	w.Resize(fyne.NewSize(1100, 900))

	state := &uiState{
		app:         a,
		window:      w,
		request:     defaultRequest(),
		series:      heatmap.SeriesCall,
		perspective: heatmap.PerspectiveSeller,
		sliceRow:    -1,
		renderScale: 1,
	}
	loadPrefs(state)

	// Parameter entries; callbacks are wired after the canvases exist.
	entries := newParamEntries(state.request)
	gridSelect := widget.NewSelect([]string{"5", "10", "15", "20"}, nil)
	gridSelect.Selected = strconv.Itoa(state.request.GridSize)

	seriesSelect := widget.NewSelect([]string{"Call", "Put"}, nil)
	seriesSelect.Selected = titleCase(state.series.String())
	perspSelect := widget.NewSelect([]string{"Seller", "Buyer"}, nil)
	perspSelect.Selected = titleCase(state.perspective.String())
	crosshairChk := widget.NewCheck("Crosshair", nil)
	crosshairChk.SetChecked(state.crosshairEnabled)

	state.quoteLabel = widget.NewLabel("")

	// chart placeholders
	state.heatmapCanvas = canvas.NewImageFromImage(blank(100, 60))
	state.heatmapCanvas.FillMode = canvas.ImageFillContain
	state.heatmapCanvas.SetMinSize(fyne.NewSize(900, 600))
	state.sliceCanvas = canvas.NewImageFromImage(blank(100, 60))
	state.sliceCanvas.FillMode = canvas.ImageFillContain
	state.sliceCanvas.SetMinSize(fyne.NewSize(900, 300))
	state.overlay = newHoverOverlay(state)
	state.overlay.enabled = state.crosshairEnabled

	applyBtn := widget.NewButton("Recompute", func() {
		state.request = entries.request(state.request)
		savePrefs(state)
		recompute(state)
	})

	top := container.NewVBox(
		container.NewHBox(
			widget.NewLabel("Strike:"), entries.strike,
			widget.NewLabel("Maturity:"), entries.maturity,
			widget.NewLabel("Rate:"), entries.rate,
			widget.NewLabel("Dividend:"), entries.dividend,
			widget.NewLabel("Grid:"), gridSelect,
			applyBtn,
		),
		container.NewHBox(
			widget.NewLabel("Spot:"), entries.spotMin, widget.NewLabel("to"), entries.spotMax,
			widget.NewLabel("Vol:"), entries.volMin, widget.NewLabel("to"), entries.volMax,
			widget.NewLabel("Series:"), seriesSelect,
			widget.NewLabel("View as:"), perspSelect,
			crosshairChk,
		),
		state.quoteLabel,
	)

	chartsColumn := container.NewVBox(
		container.NewStack(state.heatmapCanvas, state.overlay),
		widget.NewSeparator(),
		state.sliceCanvas,
	)
	chartsScroll := container.NewVScroll(chartsColumn)
	chartsScroll.SetMinSize(fyne.NewSize(900, 750))
	w.SetContent(container.NewBorder(top, nil, nil, nil, chartsScroll))

	// Now that canvases exist, wire the callbacks.
	gridSelect.OnChanged = func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			state.request.GridSize = n
			savePrefs(state)
			recompute(state)
		}
	}
	seriesSelect.OnChanged = func(v string) {
		state.series = heatmap.ParseSeries(strings.ToLower(v))
		savePrefs(state)
		redraw(state)
	}
	perspSelect.OnChanged = func(v string) {
		state.perspective = heatmap.ParsePerspective(strings.ToLower(v))
		savePrefs(state)
		redraw(state)
	}
	crosshairChk.OnChanged = func(b bool) {
		state.crosshairEnabled = b
		savePrefs(state)
		if state.overlay != nil {
			state.overlay.enabled = b
			state.overlay.Refresh()
		}
	}

	buildMenus(state)

	// Redraw on window resize so the heatmap re-renders at the new width.
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					if curW := int(c.Size().Width); curW != prevW {
						prevW = curW
						fyne.Do(func() { redraw(state) })
					}
				}
			}
		}()
	}

	recompute(state)
	w.ShowAndRun()
}

// paramEntries groups the numeric input fields.
type paramEntries struct {
	strike, maturity, rate, dividend *widget.Entry
	spotMin, spotMax, volMin, volMax *widget.Entry
}

func newNumEntry(v float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(v, 'g', -1, 64))
	return e
}

func newParamEntries(req pricing.SurfaceRequest) *paramEntries {
	return &paramEntries{
		strike:   newNumEntry(req.Base.Strike),
		maturity: newNumEntry(req.Base.Maturity),
		rate:     newNumEntry(req.Base.Rate),
		dividend: newNumEntry(req.Base.DividendYield),
		spotMin:  newNumEntry(req.SpotMin),
		spotMax:  newNumEntry(req.SpotMax),
		volMin:   newNumEntry(req.VolMin),
		volMax:   newNumEntry(req.VolMax),
	}
}

// request folds the entry values into prev, keeping each previous value when
// an entry does not parse.
func (e *paramEntries) request(prev pricing.SurfaceRequest) pricing.SurfaceRequest {
	out := prev
	out.Base.Strike = parseFloatOr(e.strike.Text, prev.Base.Strike)
	out.Base.Maturity = parseFloatOr(e.maturity.Text, prev.Base.Maturity)
	out.Base.Rate = parseFloatOr(e.rate.Text, prev.Base.Rate)
	out.Base.DividendYield = parseFloatOr(e.dividend.Text, prev.Base.DividendYield)
	out.SpotMin = parseFloatOr(e.spotMin.Text, prev.SpotMin)
	out.SpotMax = parseFloatOr(e.spotMax.Text, prev.SpotMax)
	out.VolMin = parseFloatOr(e.volMin.Text, prev.VolMin)
	out.VolMax = parseFloatOr(e.volMax.Text, prev.VolMax)
	return out
}

func parseFloatOr(s string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	return fallback
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// recompute reprices the surface and redraws everything.
func recompute(state *uiState) {
	ds, err := pricing.Surface(state.request)
	if err != nil {
		fmt.Printf("[viewer] surface generation failed: %v\n", err)
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		return
	}
	state.dataset = ds
	state.sliceRow = -1
	updateQuoteLabel(state)
	redraw(state)
}

func updateQuoteLabel(state *uiState) {
	if state.quoteLabel == nil {
		return
	}
	p := state.request.Base
	// Quote the base contract at the middle of both sweep ranges.
	p.Spot = (state.request.SpotMin + state.request.SpotMax) / 2
	p.Volatility = (state.request.VolMin + state.request.VolMax) / 2
	q := pricing.Price(p)
	state.quoteLabel.SetText(fmt.Sprintf(
		"At spot $%.2f, vol %.0f%%:  call %.2f (Δ %.3f)   put %.2f (Δ %.3f)   Γ %.4f",
		p.Spot, p.Volatility*100, q.CallPrice, q.CallDelta, q.PutPrice, q.PutDelta, q.Gamma))
}

// heatmapSize picks the logical render size from the window width, the
// screenshot override, or a default when headless.
func heatmapSize(state *uiState) (int, int) {
	raw := 1100
	if screenshotWidthOverride > 0 {
		raw = screenshotWidthOverride
	} else if state != nil && state.window != nil && state.window.Canvas() != nil {
		raw = int(state.window.Canvas().Size().Width*0.95) - 12
	}
	return uihelpers.ComputeHeatmapSize(raw)
}

func sliceChartSize(state *uiState) (int, int) {
	raw := 1100
	if screenshotWidthOverride > 0 {
		raw = screenshotWidthOverride
	} else if state != nil && state.window != nil && state.window.Canvas() != nil {
		raw = int(state.window.Canvas().Size().Width*0.95) - 12
	}
	return uihelpers.ComputeSliceChartSize(raw)
}

// renderHeatmap performs one full repaint at the current size and records
// the geometry for the hover overlay.
func renderHeatmap(state *uiState) image.Image {
	w, h := heatmapSize(state)
	scale := 1.0
	if state.window != nil && state.window.Canvas() != nil {
		if s := float64(state.window.Canvas().Scale()); s > 1 {
			scale = s
		}
	}
	img, info := heatmap.Render(state.dataset, state.series, state.perspective, heatmap.RenderOptions{
		Width:  w,
		Height: h,
		Scale:  scale,
	})
	state.renderW, state.renderH = w, h
	state.renderScale = scale
	state.renderInfo = info
	if img == nil {
		fmt.Printf("[viewer] heatmap render no-op (no data or degenerate size %dx%d)\n", w, h)
		return blank(w, h)
	}
	return img
}

func redraw(state *uiState) {
	hm := renderHeatmap(state)
	if state.heatmapCanvas != nil {
		state.heatmapCanvas.Image = hm
		w, h := heatmapSize(state)
		state.heatmapCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		state.heatmapCanvas.Refresh()
	}
	if state.overlay != nil {
		state.overlay.Refresh()
	}
	sl := renderSliceChart(state)
	if sl != nil && state.sliceCanvas != nil {
		state.sliceCanvas.Image = sl
		w, h := sliceChartSize(state)
		state.sliceCanvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		state.sliceCanvas.Refresh()
	}
}

// setSliceRow switches the slice chart to the given volatility row and
// re-renders it. Hover events for the same row are free; the chart is only
// rebuilt when the pointer crosses into a different row.
func setSliceRow(state *uiState, row int) {
	if state == nil || row == state.sliceRow {
		return
	}
	state.sliceRow = row
	refreshSliceChart(state)
}

// refreshSliceChart re-renders only the slice chart, leaving the heatmap
// untouched.
func refreshSliceChart(state *uiState) {
	img := renderSliceChart(state)
	if img == nil || state.sliceCanvas == nil {
		return
	}
	state.sliceCanvas.Image = img
	if state.window != nil {
		state.sliceCanvas.Refresh()
	}
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Heatmap…", func() { exportImagePNG(state, state.heatmapCanvas, "surface.png") }),
		fyne.NewMenuItem("Export Price Chart…", func() { exportImagePNG(state, state.sliceCanvas, "price_slice.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { exportImagePNG(state, state.heatmapCanvas, "surface.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { exportImagePNG(state, state.heatmapCanvas, "surface.png") })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// exportImagePNG saves whatever the canvas currently shows; no recompute.
func exportImagePNG(state *uiState, img *canvas.Image, defaultName string) {
	if state == nil || state.window == nil {
		return
	}
	if img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "Nothing to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := heatmap.EncodePNG(wc, img.Image); err != nil {
			fmt.Printf("[viewer] export failed: %v\n", err)
		}
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetFloat("strike", state.request.Base.Strike)
	prefs.SetFloat("maturity", state.request.Base.Maturity)
	prefs.SetFloat("rate", state.request.Base.Rate)
	prefs.SetFloat("dividend", state.request.Base.DividendYield)
	prefs.SetFloat("spotMin", state.request.SpotMin)
	prefs.SetFloat("spotMax", state.request.SpotMax)
	prefs.SetFloat("volMin", state.request.VolMin)
	prefs.SetFloat("volMax", state.request.VolMax)
	prefs.SetInt("gridSize", state.request.GridSize)
	prefs.SetString("series", state.series.String())
	prefs.SetString("perspective", state.perspective.String())
	prefs.SetBool("crosshair", state.crosshairEnabled)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	state.request.Base.Strike = prefs.FloatWithFallback("strike", state.request.Base.Strike)
	state.request.Base.Maturity = prefs.FloatWithFallback("maturity", state.request.Base.Maturity)
	state.request.Base.Rate = prefs.FloatWithFallback("rate", state.request.Base.Rate)
	state.request.Base.DividendYield = prefs.FloatWithFallback("dividend", state.request.Base.DividendYield)
	state.request.SpotMin = prefs.FloatWithFallback("spotMin", state.request.SpotMin)
	state.request.SpotMax = prefs.FloatWithFallback("spotMax", state.request.SpotMax)
	state.request.VolMin = prefs.FloatWithFallback("volMin", state.request.VolMin)
	state.request.VolMax = prefs.FloatWithFallback("volMax", state.request.VolMax)
	if n := prefs.IntWithFallback("gridSize", state.request.GridSize); n > 0 {
		state.request.GridSize = n
	}
	state.series = heatmap.ParseSeries(prefs.StringWithFallback("series", state.series.String()))
	state.perspective = heatmap.ParsePerspective(prefs.StringWithFallback("perspective", state.perspective.String()))
	state.crosshairEnabled = prefs.BoolWithFallback("crosshair", state.crosshairEnabled)
}

// blank is the placeholder shown before the first successful render.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 245, G: 245, B: 245, A: 255})
		}
	}
	return img
}
