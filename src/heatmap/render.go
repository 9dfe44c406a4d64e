package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxAxisTicks caps how many tick labels each axis draws.
const maxAxisTicks = 6

var (
	backgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	separatorColor  = color.RGBA{R: 0, G: 0, B: 0, A: 30}
	labelColor      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	legendBorder    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// RenderOptions describes the target surface. Width and Height are logical
// (CSS) pixels; Scale is the device pixel ratio, so the backing image is
// Width*Scale x Height*Scale. Scale values below 1 are treated as 1.
type RenderOptions struct {
	Width  int
	Height int
	Scale  float64
}

// RenderInfo surfaces the values a render pass derived, for diagnostics and
// for callers that label the legend externally. Drawn is false when the
// renderer no-opped on degenerate input.
type RenderInfo struct {
	VMin     float64
	VMax     float64
	Geometry PlotGeometry
	Drawn    bool
}

// Render paints the active grid of ds as a color-mapped surface with grid
// separators, axis ticks and titles, and a legend gradient. Every call is a
// full repaint of a freshly allocated image; nothing is cached between
// calls.
//
// A nil image is returned when the dataset is absent/empty or the surface is
// too small to hold a plot. The caller keeps whatever placeholder it had.
func Render(ds *Dataset, series Series, p Perspective, opts RenderOptions) (*image.RGBA, RenderInfo) {
	if !ds.Valid() {
		return nil, RenderInfo{}
	}
	grid := ds.Grid(series)
	rows, cols := grid.Rows(), grid.Cols()

	geo, err := ComputeGeometry(float64(opts.Width), float64(opts.Height), DefaultMargins, rows, cols)
	if err != nil {
		return nil, RenderInfo{}
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, devicePx(float64(opts.Width), scale), devicePx(float64(opts.Height), scale)))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	vmin, vmax, _ := grid.MinMax()

	// Cells first, separators on top of each cell edge.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x0, y0, x1, y1 := geo.CellRect(i, j)
			r, g, b := ScaleColor(Intensity(grid[i][j], vmin, vmax, p)).RGB255()
			fillRect(img, scaledRect(x0, y0, x1, y1, scale), color.RGBA{R: r, G: g, B: b, A: 255})
			strokeRect(img, scaledRect(x0, y0, x1, y1, scale), separatorColor, 1)
		}
	}

	drawXAxis(img, ds, geo, scale)
	drawYAxis(img, ds, geo, scale)
	drawTitles(img, geo, opts, scale)
	drawLegend(img, geo, p, vmin, vmax, scale)

	return img, RenderInfo{VMin: vmin, VMax: vmax, Geometry: geo, Drawn: true}
}

// drawXAxis draws up to maxAxisTicks spot labels under the plot, centered on
// their column, formatted as whole currency.
func drawXAxis(img *image.RGBA, ds *Dataset, geo PlotGeometry, scale float64) {
	cols := len(ds.SpotValues)
	n := textScale(scale)
	y := devicePx(geo.Y+geo.Height+16, scale)
	for _, j := range tickIndices(cols, maxAxisTicks) {
		label := fmt.Sprintf("$%.0f", ds.SpotValues[j])
		cx := devicePx(geo.X+(float64(j)+0.5)*geo.CellWidth, scale)
		drawString(img, cx-measureString(label)*n/2, y, label, labelColor, n)
	}
}

// drawYAxis draws up to maxAxisTicks volatility labels left of the plot.
// Rows are labeled through axisRow, so the top label is the maximum
// volatility.
func drawYAxis(img *image.RGBA, ds *Dataset, geo PlotGeometry, scale float64) {
	rows := len(ds.VolatilityValues)
	n := textScale(scale)
	x := devicePx(geo.X-8, scale)
	for _, i := range tickIndices(rows, maxAxisTicks) {
		label := fmt.Sprintf("%.0f%%", ds.VolatilityValues[axisRow(i, rows)]*100)
		cy := devicePx(geo.Y+(float64(i)+0.5)*geo.CellHeight, scale)
		drawString(img, x-measureString(label)*n, cy+basicfont.Face7x13.Ascent*n/2, label, labelColor, n)
	}
}

func drawTitles(img *image.RGBA, geo PlotGeometry, opts RenderOptions, scale float64) {
	const xTitle = "Spot Price"
	n := textScale(scale)
	cx := devicePx(geo.X+geo.Width/2, scale)
	by := devicePx(float64(opts.Height)-10, scale)
	drawString(img, cx-measureString(xTitle)*n/2, by, xTitle, labelColor, n)

	const yTitle = "Volatility"
	cy := devicePx(geo.Y+geo.Height/2, scale)
	drawStringRotated(img, devicePx(16, scale), cy, yTitle, labelColor, n)
}

// drawLegend paints the vertical gradient bar in the right margin: the i=1
// ("better") color at the top, i=0 at the bottom. The numeric labels follow
// the perspective: whichever raw extreme maps to high intensity is labeled
// at the top.
func drawLegend(img *image.RGBA, geo PlotGeometry, p Perspective, vmin, vmax float64, scale float64) {
	low, high := LegendEndpoints()
	barX0 := devicePx(geo.X+geo.Width+24, scale)
	barX1 := devicePx(geo.X+geo.Width+40, scale)
	barY0 := devicePx(geo.Y, scale)
	barY1 := devicePx(geo.Y+geo.Height, scale)
	if barY1 <= barY0+1 || barX1 <= barX0 {
		return
	}
	for y := barY0; y < barY1; y++ {
		// t runs 1 at the top of the bar down to 0.
		t := 1 - float64(y-barY0)/float64(barY1-barY0-1)
		c := low.BlendRgb(high, t)
		r, g, b := c.RGB255()
		fillRect(img, image.Rect(barX0, y, barX1, y+1), color.RGBA{R: r, G: g, B: b, A: 255})
	}
	strokeRect(img, image.Rect(barX0, barY0, barX1, barY1), legendBorder, 1)

	topValue, bottomValue := vmax, vmin
	if p == PerspectiveBuyer {
		topValue, bottomValue = vmin, vmax
	}
	n := textScale(scale)
	tx := barX1 + 4*n
	drawString(img, tx, barY0+basicfont.Face7x13.Ascent*n, fmt.Sprintf("%.2f", topValue), labelColor, n)
	drawString(img, tx, barY1, fmt.Sprintf("%.2f", bottomValue), labelColor, n)
	drawString(img, barX0, barY0-6*n, "Better", labelColor, n)
	drawString(img, barX0, barY1+(basicfont.Face7x13.Height+2)*n, "Worse", labelColor, n)
}

// tickIndices picks up to max indices evenly spread across [0, n), always
// including the first and last when more than one fits.
func tickIndices(n, max int) []int {
	if n <= 0 {
		return nil
	}
	if n <= max {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, max)
	prev := -1
	for k := 0; k < max; k++ {
		idx := int(math.Round(float64(k) * float64(n-1) / float64(max-1)))
		if idx != prev {
			out = append(out, idx)
			prev = idx
		}
	}
	return out
}

func devicePx(v, scale float64) int { return int(math.Round(v * scale)) }

func scaledRect(x0, y0, x1, y1, scale float64) image.Rectangle {
	return image.Rect(devicePx(x0, scale), devicePx(y0, scale), devicePx(x1, scale), devicePx(y1, scale))
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect draws a w-pixel border just inside r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color, w int) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), c)
	fillRect(img, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), c)
}

func measureString(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}

// textScale is the integer magnification applied to the bitmap face.
// Face7x13 comes in a single size, so on high-density backing stores each
// glyph pixel is blitted as an n x n block to keep labels at their logical
// size.
func textScale(scale float64) int {
	n := int(math.Round(scale))
	if n < 1 {
		n = 1
	}
	return n
}

// drawString draws s with its baseline at (x, y), magnified n times.
func drawString(img *image.RGBA, x, y int, s string, c color.Color, n int) {
	if n <= 1 {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
		}
		d.DrawString(s)
		return
	}
	w := measureString(s)
	h := basicfont.Face7x13.Height
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawString(tmp, 0, basicfont.Face7x13.Ascent, s, c, 1)
	y0 := y - basicfont.Face7x13.Ascent*n
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			px := tmp.RGBAAt(tx, ty)
			if px.A == 0 {
				continue
			}
			fillRect(img, image.Rect(x+tx*n, y0+ty*n, x+(tx+1)*n, y0+(ty+1)*n), px)
		}
	}
}

// drawStringRotated draws s rotated 90 degrees counter-clockwise, centered
// vertically on (x, cy) and magnified n times. The label is rasterized into
// a scratch image and copied transposed; basicfont has no vector path to
// rotate.
func drawStringRotated(img *image.RGBA, x, cy int, s string, c color.Color, n int) {
	w := measureString(s)
	h := basicfont.Face7x13.Height
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawString(tmp, 0, basicfont.Face7x13.Ascent, s, c, 1)
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			px := tmp.RGBAAt(tx, ty)
			if px.A == 0 {
				continue
			}
			// (tx, ty) -> rotated: x grows with ty, y shrinks with tx.
			dx := x + ty*n
			dy := cy + (w/2-tx)*n
			fillRect(img, image.Rect(dx, dy, dx+n, dy+n), px)
		}
	}
}
