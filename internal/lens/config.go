package lens

import (
	"fmt"
	"strings"
)

// Configuration bounds. Out-of-range numeric values are clamped to these,
// never rejected.
const (
	MinLensSize = 50
	MaxLensSize = 500

	MinZoomLevel = 1.0
	MaxZoomLevel = 20.0

	DefaultLensSize  = 150
	DefaultZoomLevel = 2.0
)

// Format is the encoding used for exported artifacts.
type Format string

const (
	FormatJPG Format = "jpg"
	FormatPNG Format = "png"
)

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Shape selects the outline of the lens overlay.
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
)

// ParseFormat validates a download format string. "jpeg" is accepted and
// normalized to "jpg". An empty string selects the default (jpg). Any other
// value is a configuration error.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "jpg", "jpeg":
		return FormatJPG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("invalid download format %q: must be jpg or png", s)
	}
}

// ParseShape validates a lens shape string. An empty string selects the
// default circle shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(s) {
	case "", "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	default:
		return "", fmt.Errorf("invalid lens shape %q: must be circle or square", s)
	}
}

// Config holds the per-widget lens parameters supplied by the host at
// creation time. ZoomLevel may additionally change at runtime through wheel
// events.
type Config struct {
	// LensSize is the lens diameter in on-screen pixels.
	LensSize int `json:"lens_size"`

	// ZoomLevel is the magnification factor applied to the sampled window.
	ZoomLevel float64 `json:"zoom_level"`

	// DownloadFormat selects the export encoding.
	DownloadFormat Format `json:"download_format"`

	// Shape selects the lens outline (circle by default).
	Shape Shape `json:"lens_shape"`
}

// DefaultConfig returns the widget defaults: a 150px circular lens at 2.0x
// zoom exporting JPEG.
func DefaultConfig() Config {
	return Config{
		LensSize:       DefaultLensSize,
		ZoomLevel:      DefaultZoomLevel,
		DownloadFormat: FormatJPG,
		Shape:          ShapeCircle,
	}
}

// Clamp forces LensSize and ZoomLevel into their declared bounds and fills
// zero values with defaults. It returns the receiver for chaining.
func (c Config) Clamp() Config {
	if c.LensSize == 0 {
		c.LensSize = DefaultLensSize
	}
	if c.ZoomLevel == 0 {
		c.ZoomLevel = DefaultZoomLevel
	}
	c.LensSize = clampInt(c.LensSize, MinLensSize, MaxLensSize)
	c.ZoomLevel = ClampZoom(c.ZoomLevel)
	if c.DownloadFormat == "" {
		c.DownloadFormat = FormatJPG
	}
	if c.Shape == "" {
		c.Shape = ShapeCircle
	}
	return c
}

// ClampZoom forces a zoom level into [MinZoomLevel, MaxZoomLevel].
func ClampZoom(z float64) float64 {
	if z < MinZoomLevel {
		return MinZoomLevel
	}
	if z > MaxZoomLevel {
		return MaxZoomLevel
	}
	return z
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
