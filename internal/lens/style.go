package lens

import (
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Style collects the cosmetic and tunable constants of the widget. These are
// deliberately configuration rather than hardcoded values; hosts that never
// supply a style file get DefaultStyle.
type Style struct {
	// WheelStep is the zoom change per wheel tick.
	WheelStep float64 `yaml:"wheel_step"`

	// BorderWidth is the lens border stroke width in display pixels.
	BorderWidth int `yaml:"border_width"`

	// BorderColor is the lens border color as "#RRGGBB" or "#RRGGBBAA".
	BorderColor string `yaml:"border_color"`

	// JPEGQuality is the quality used for jpg exports (1-100).
	JPEGQuality int `yaml:"jpeg_quality"`
}

// DefaultStyle returns the built-in widget style: 0.1 zoom per wheel tick, a
// 3px dark semi-transparent border, and JPEG quality 90.
func DefaultStyle() Style {
	return Style{
		WheelStep:   0.1,
		BorderWidth: 3,
		BorderColor: "#333333CC",
		JPEGQuality: 90,
	}
}

// LoadStyle reads a YAML style file and merges it over the defaults. Fields
// missing from the file keep their default values.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse style file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the style for usable values.
func (s Style) Validate() error {
	if s.WheelStep <= 0 {
		return fmt.Errorf("wheel_step must be positive, got %v", s.WheelStep)
	}
	if s.BorderWidth < 0 {
		return fmt.Errorf("border_width must not be negative, got %d", s.BorderWidth)
	}
	if s.JPEGQuality < 1 || s.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be in 1-100, got %d", s.JPEGQuality)
	}
	if _, err := parseBorderColor(s.BorderColor); err != nil {
		return fmt.Errorf("border_color: %w", err)
	}
	return nil
}

// BorderRGBA returns the parsed border color. The zero alpha case only
// happens for invalid strings, which Validate rejects; on parse failure the
// default border color is returned so rendering never fails.
func (s Style) BorderRGBA() color.NRGBA {
	c, err := parseBorderColor(s.BorderColor)
	if err != nil {
		c, _ = parseBorderColor(DefaultStyle().BorderColor)
	}
	return c
}

// parseBorderColor parses "#RRGGBB" or "#RRGGBBAA". The RGB part goes
// through go-colorful so that malformed hex is reported consistently.
func parseBorderColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	rgb := hex
	alpha := uint8(255)
	if len(hex) == 9 && hex[0] == '#' {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q", hex)
		}
		alpha = uint8(a)
		rgb = hex[:7]
	}
	c, err := colorful.Hex(rgb)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
