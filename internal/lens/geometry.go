package lens

import (
	"image"
	"math"
)

// Point is a position in display coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry describes one lens placement: the window of natural-image pixels
// to sample and the circle (or square, via its bounding box) to draw them
// into on the display.
type Geometry struct {
	// Window is the source sample rectangle in natural coordinates. It is
	// always contained in [0,naturalW]x[0,naturalH].
	Window image.Rectangle

	// CenterX, CenterY locate the lens center in display coordinates.
	CenterX float64
	CenterY float64

	// Radius is half the lens diameter in display pixels.
	Radius float64
}

// Bounding returns the lens bounding square in display coordinates.
func (g Geometry) Bounding() image.Rectangle {
	x0 := int(math.Round(g.CenterX - g.Radius))
	y0 := int(math.Round(g.CenterY - g.Radius))
	size := int(math.Round(2 * g.Radius))
	return image.Rect(x0, y0, x0+size, y0+size)
}

// Compute maps a pointer position to a lens placement.
//
// The lens shows a natural-space window of lensSize*scale/zoom pixels per
// axis centered on the pointer's natural position, magnified to fill the
// on-screen lens diameter. A higher zoom samples a smaller window. The
// window is clamped to the image bounds by shifting, not shrinking: near an
// edge the lens keeps its sample size and slides inward. Only when the image
// itself is smaller than the window does the window shrink to the full image
// extent along that axis.
//
// displayW/displayH are the on-screen dimensions of the image, naturalW and
// naturalH its native resolution. The pointer position is expected in
// display coordinates; callers clamp it to the display bounds first.
func Compute(pos Point, displayW, displayH, naturalW, naturalH, lensSize int, zoom float64) Geometry {
	scaleX := float64(naturalW) / float64(displayW)
	scaleY := float64(naturalH) / float64(displayH)

	natX := pos.X * scaleX
	natY := pos.Y * scaleY

	zoom = ClampZoom(zoom)
	ww := int(math.Round(float64(lensSize) * scaleX / zoom))
	wh := int(math.Round(float64(lensSize) * scaleY / zoom))
	if ww < 1 {
		ww = 1
	}
	if wh < 1 {
		wh = 1
	}
	// Image smaller than the window: the window is the full extent.
	if ww > naturalW {
		ww = naturalW
	}
	if wh > naturalH {
		wh = naturalH
	}

	x0 := int(math.Round(natX)) - ww/2
	y0 := int(math.Round(natY)) - wh/2
	x0 = shiftIntoRange(x0, ww, naturalW)
	y0 = shiftIntoRange(y0, wh, naturalH)

	return Geometry{
		Window:  image.Rect(x0, y0, x0+ww, y0+wh),
		CenterX: pos.X,
		CenterY: pos.Y,
		Radius:  float64(lensSize) / 2,
	}
}

// shiftIntoRange slides a window of the given size so [start, start+size]
// lies within [0, max]. size is already <= max.
func shiftIntoRange(start, size, max int) int {
	if start < 0 {
		return 0
	}
	if start+size > max {
		return max - size
	}
	return start
}
