package lens

import (
	"fmt"
	"image"
)

// Widget is one zoom-lens instance: a decoded raster, its lens
// configuration, and the pointer state driving the lens. All mutation goes
// through Apply or SetZoom; a widget is owned by a single event dispatch
// loop and is not safe for concurrent use.
type Widget struct {
	raster   *image.NRGBA
	naturalW int
	naturalH int
	displayW int
	displayH int

	config  Config
	style   Style
	pointer PointerState
}

// ExportRequest is the frozen input of one export pass: the raster, the
// pointer position at trigger time and a copy of the configuration. The
// request is consumed by the export package and discarded afterwards.
type ExportRequest struct {
	Raster   *image.NRGBA
	NaturalW int
	NaturalH int
	DisplayW int
	DisplayH int
	Pos      Point
	Config   Config
}

// NewWidget creates a widget for a decoded raster. displayW/displayH give
// the on-screen size of the image; zero values mean the image is displayed
// at its natural resolution. Numeric config values are clamped to their
// bounds. A nil or empty raster is an error.
func NewWidget(raster *image.NRGBA, cfg Config, style Style, displayW, displayH int) (*Widget, error) {
	if raster == nil {
		return nil, fmt.Errorf("widget requires a decoded image")
	}
	b := raster.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("widget image is empty (%dx%d)", b.Dx(), b.Dy())
	}
	if displayW <= 0 {
		displayW = b.Dx()
	}
	if displayH <= 0 {
		displayH = b.Dy()
	}
	return &Widget{
		raster:   raster,
		naturalW: b.Dx(),
		naturalH: b.Dy(),
		displayW: displayW,
		displayH: displayH,
		config:   cfg.Clamp(),
		style:    style,
	}, nil
}

// Apply processes one input event and returns the resulting update.
func (w *Widget) Apply(ev Event) Update {
	switch e := ev.(type) {
	case Move:
		began := w.pointer.move(e.X, e.Y, w.displayW, w.displayH)
		return Update{HoverBegan: began, Hovering: true, ZoomLevel: w.config.ZoomLevel}
	case Wheel:
		step := w.style.WheelStep
		if e.Delta < 0 {
			step = -step
		}
		w.config.ZoomLevel = ClampZoom(w.config.ZoomLevel + step)
		return Update{Hovering: w.pointer.Hovering, ZoomLevel: w.config.ZoomLevel}
	case HoverEnd:
		ended := w.pointer.end()
		return Update{HoverEnded: ended, Hovering: false, ZoomLevel: w.config.ZoomLevel}
	case ExportTrigger:
		req := w.exportRequest()
		return Update{Hovering: w.pointer.Hovering, ZoomLevel: w.config.ZoomLevel, Export: &req}
	default:
		return Update{Hovering: w.pointer.Hovering, ZoomLevel: w.config.ZoomLevel}
	}
}

// SetZoom sets the zoom level directly (host-side slider sync), clamped to
// its bounds, and returns the effective value. Setting the current value is
// a no-op.
func (w *Widget) SetZoom(z float64) float64 {
	w.config.ZoomLevel = ClampZoom(z)
	return w.config.ZoomLevel
}

// Geometry returns the current lens placement. ok is false while the lens is
// hidden (no hover yet, or after HoverEnd).
func (w *Widget) Geometry() (Geometry, bool) {
	if !w.pointer.Hovering {
		return Geometry{}, false
	}
	g := Compute(w.pointer.Pos, w.displayW, w.displayH, w.naturalW, w.naturalH,
		w.config.LensSize, w.config.ZoomLevel)
	return g, true
}

// exportRequest freezes the current state for an export pass. If no pointer
// position was ever recorded the lens defaults to the image center.
func (w *Widget) exportRequest() ExportRequest {
	pos := w.pointer.Pos
	if !w.pointer.recorded {
		pos = Point{X: float64(w.displayW) / 2, Y: float64(w.displayH) / 2}
	}
	return ExportRequest{
		Raster:   w.raster,
		NaturalW: w.naturalW,
		NaturalH: w.naturalH,
		DisplayW: w.displayW,
		DisplayH: w.displayH,
		Pos:      pos,
		Config:   w.config,
	}
}

// Raster returns the widget's decoded image. The raster is immutable for the
// widget's lifetime.
func (w *Widget) Raster() *image.NRGBA { return w.raster }

// NaturalSize returns the image's native dimensions.
func (w *Widget) NaturalSize() (int, int) { return w.naturalW, w.naturalH }

// DisplaySize returns the on-screen dimensions of the image.
func (w *Widget) DisplaySize() (int, int) { return w.displayW, w.displayH }

// Config returns the current configuration, including live zoom changes.
func (w *Widget) Config() Config { return w.config }

// Style returns the widget's cosmetic constants.
func (w *Widget) Style() Style { return w.style }

// Hovering reports whether the lens is currently visible.
func (w *Widget) Hovering() bool { return w.pointer.Hovering }
