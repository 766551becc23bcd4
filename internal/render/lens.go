package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/zoom-lens-mcp/internal/lens"
)

// LensLayer renders the lens into a transparent layer of frameW x frameH
// display pixels. The source window is cropped from the natural-resolution
// raster, magnified to the lens bounding square with Lanczos resampling,
// clipped to the configured shape, and stroked with the style's border.
func LensLayer(natural *image.NRGBA, g lens.Geometry, shape lens.Shape, style lens.Style, frameW, frameH int) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, frameW, frameH))

	window := imaging.Crop(natural, g.Window)
	dst := g.Bounding()
	size := dst.Dx()
	magnified := imaging.Resize(window, size, size, imaging.Lanczos)

	if shape == lens.ShapeSquare {
		draw.Draw(layer, dst, magnified, image.Point{}, draw.Src)
	} else {
		mask := &circleMask{cx: float64(size) / 2, cy: float64(size) / 2, r: g.Radius, size: size}
		draw.DrawMask(layer, dst, magnified, image.Point{}, mask, image.Point{}, draw.Over)
	}

	if style.BorderWidth > 0 {
		drawBorder(layer, dst, shape, g.Radius, style.BorderWidth, style.BorderRGBA())
	}
	return layer
}

// Frame composites the current display view: the base image at display
// size, with the lens layer on top while the pointer is hovering.
func Frame(w *lens.Widget, style lens.Style) *image.NRGBA {
	dw, dh := w.DisplaySize()
	nw, nh := w.NaturalSize()

	var frame *image.NRGBA
	if dw == nw && dh == nh {
		frame = imaging.Clone(w.Raster())
	} else {
		frame = imaging.Resize(w.Raster(), dw, dh, imaging.Lanczos)
	}

	g, ok := w.Geometry()
	if !ok {
		return frame
	}
	layer := LensLayer(w.Raster(), g, w.Config().Shape, style, dw, dh)
	return imaging.Overlay(frame, layer, image.Point{}, 1.0)
}

// circleMask is an alpha mask that is opaque inside a circle of radius r
// centered in a size x size square, used to clip the magnified window.
type circleMask struct {
	cx, cy float64
	r      float64
	size   int
}

func (m *circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m *circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, m.size, m.size) }

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// drawBorder strokes the lens outline: a ring for circular lenses, an inset
// rectangular frame for square ones. Pixels outside the layer are skipped so
// a lens at the image edge never writes out of bounds.
func drawBorder(layer *image.NRGBA, dst image.Rectangle, shape lens.Shape, radius float64, width int, c color.NRGBA) {
	bounds := layer.Bounds()
	if shape == lens.ShapeSquare {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			for x := dst.Min.X; x < dst.Max.X; x++ {
				inset := minInt(minInt(x-dst.Min.X, dst.Max.X-1-x), minInt(y-dst.Min.Y, dst.Max.Y-1-y))
				if inset < width && image.Pt(x, y).In(bounds) {
					layer.SetNRGBA(x, y, c)
				}
			}
		}
		return
	}

	cx := float64(dst.Min.X) + float64(dst.Dx())/2
	cy := float64(dst.Min.Y) + float64(dst.Dy())/2
	inner := radius - float64(width)
	if inner < 0 {
		inner = 0
	}
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= radius && d > inner && image.Pt(x, y).In(bounds) {
				layer.SetNRGBA(x, y, c)
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
