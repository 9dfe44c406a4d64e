package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/DavidYu75/black-scholes/cmd/bsviewer/uihelpers"
	"github.com/DavidYu75/black-scholes/src/heatmap"
)

// hoverOverlay sits on top of the heatmap canvas, tracks the mouse, and
// shows a crosshair plus a cell readout when the pointer is over a cell.
type hoverOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool
	hovering bool
	mouse    fyne.Position
}

func newHoverOverlay(state *uiState) *hoverOverlay {
	o := &hoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

func (o *hoverOverlay) MouseIn(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.mouse = ev.Position
	o.Refresh()
}

func (o *hoverOverlay) MouseOut() {
	o.hovering = false
	o.Refresh()
}

func (o *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	lineV := canvas.NewLine(color.NRGBA{R: 40, G: 40, B: 40, A: 150})
	lineH := canvas.NewLine(color.NRGBA{R: 40, G: 40, B: 40, A: 150})
	lineV.StrokeWidth = 1
	lineH.StrokeWidth = 1
	dot := canvas.NewCircle(color.NRGBA{R: 20, G: 20, B: 20, A: 220})
	labelBG := canvas.NewRectangle(color.NRGBA{R: 255, G: 255, B: 255, A: 235})
	labelBG.StrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	labelBG.StrokeWidth = 1
	label := widget.NewLabel("")
	return &hoverOverlayRenderer{
		overlay: o,
		lineV:   lineV,
		lineH:   lineH,
		dot:     dot,
		labelBG: labelBG,
		label:   label,
		objects: []fyne.CanvasObject{lineV, lineH, dot, labelBG, label},
	}
}

type hoverOverlayRenderer struct {
	overlay *hoverOverlay
	lineV   *canvas.Line
	lineH   *canvas.Line
	dot     *canvas.Circle
	labelBG *canvas.Rectangle
	label   *widget.Label
	objects []fyne.CanvasObject
}

func (r *hoverOverlayRenderer) Destroy() {}

func (r *hoverOverlayRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *hoverOverlayRenderer) MinSize() fyne.Size { return fyne.NewSize(0, 0) }

func (r *hoverOverlayRenderer) Refresh() { r.Layout(r.overlay.Size()) }

func (r *hoverOverlayRenderer) hide() {
	r.lineV.Hide()
	r.lineH.Hide()
	r.dot.Hide()
	r.labelBG.Hide()
	r.label.Hide()
}

func (r *hoverOverlayRenderer) Layout(size fyne.Size) {
	st := r.overlay.state
	if st == nil || !r.overlay.enabled || !r.overlay.hovering || st.dataset == nil {
		r.hide()
		return
	}
	img := st.heatmapCanvas
	if img == nil || img.Image == nil {
		r.hide()
		return
	}
	b := img.Image.Bounds()
	ix, iy, ok := uihelpers.ViewToImage(
		r.overlay.mouse.X, r.overlay.mouse.Y,
		float32(b.Dx()), float32(b.Dy()),
		size.Width, size.Height)
	if !ok {
		r.hide()
		return
	}
	// Image pixels are backing-store pixels; the hit test works in the
	// logical coordinate space the surface was laid out in.
	scale := st.renderScale
	if scale <= 0 {
		scale = 1
	}
	res, hit := heatmap.HitTest(st.dataset, st.series,
		float64(st.renderW), float64(st.renderH),
		float64(ix)/scale, float64(iy)/scale)
	if !hit {
		r.hide()
		return
	}
	setSliceRow(st, res.Row)

	r.lineV.Position1 = fyne.NewPos(r.overlay.mouse.X, 0)
	r.lineV.Position2 = fyne.NewPos(r.overlay.mouse.X, size.Height)
	r.lineH.Position1 = fyne.NewPos(0, r.overlay.mouse.Y)
	r.lineH.Position2 = fyne.NewPos(size.Width, r.overlay.mouse.Y)
	r.dot.Resize(fyne.NewSize(7, 7))
	r.dot.Move(fyne.NewPos(r.overlay.mouse.X-3.5, r.overlay.mouse.Y-3.5))

	r.label.SetText(hoverLabel(res, st.series))
	tSize := r.label.MinSize()
	pos := fyne.NewPos(r.overlay.mouse.X+12, r.overlay.mouse.Y+12)
	if pos.X+tSize.Width+8 > size.Width {
		pos.X = r.overlay.mouse.X - tSize.Width - 12
	}
	if pos.Y+tSize.Height+8 > size.Height {
		pos.Y = r.overlay.mouse.Y - tSize.Height - 12
	}
	r.labelBG.Move(pos)
	r.labelBG.Resize(fyne.NewSize(tSize.Width+8, tSize.Height))
	r.label.Move(fyne.NewPos(pos.X+4, pos.Y))
	r.label.Resize(tSize)

	r.lineV.Show()
	r.lineH.Show()
	r.dot.Show()
	r.labelBG.Show()
	r.label.Show()
}

// hoverLabel formats the readout for one cell.
func hoverLabel(res heatmap.HoverResult, s heatmap.Series) string {
	return fmt.Sprintf("Spot $%.2f  Vol %.1f%%\n%s price: %.2f",
		res.Spot, res.Volatility*100, titleCase(s.String()), res.Value)
}
