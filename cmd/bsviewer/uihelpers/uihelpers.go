// Package uihelpers holds the pure layout math the viewer needs, split out
// from the widget code so it can be tested headlessly.
package uihelpers

// ComputeContainRect returns where an imgW x imgH image is drawn inside a
// viewW x viewH area under contain-fit scaling (aspect preserved, centered),
// plus the applied scale factor. Degenerate inputs yield a zero rect with
// scale 1 so callers can divide safely.
func ComputeContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// ViewToImage maps a position inside the contain-fit rect back to image
// pixel coordinates. ok is false when the point lies outside the drawn
// image (letterbox bands included).
func ViewToImage(vx, vy, imgW, imgH, viewW, viewH float32) (ix, iy float32, ok bool) {
	x, y, w, h, scale := ComputeContainRect(imgW, imgH, viewW, viewH)
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	if vx < x || vx > x+w || vy < y || vy > y+h {
		return 0, 0, false
	}
	return (vx - x) / scale, (vy - y) / scale, true
}

// ComputeHeatmapSize clamps the desired raw width (usually the window width)
// to the sizes the heatmap renders well at and derives a 2:3 height.
func ComputeHeatmapSize(rawW int) (int, int) {
	w := rawW
	if w < 500 {
		w = 500
	}
	if w > 1600 {
		w = 1600
	}
	h := int(float32(w) * 0.66)
	if h < 340 {
		h = 340
	}
	if h > 900 {
		h = 900
	}
	return w, h
}

// ComputeSliceChartSize derives the companion line chart size from the same
// raw width; flatter aspect than the heatmap.
func ComputeSliceChartSize(rawW int) (int, int) {
	w := rawW
	if w < 500 {
		w = 500
	}
	if w > 1600 {
		w = 1600
	}
	h := int(float32(w) * 0.33)
	if h < 240 {
		h = 240
	}
	if h > 480 {
		h = 480
	}
	return w, h
}
