package lens

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStyle_Valid(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Fatalf("default style invalid: %v", err)
	}
}

func TestStyle_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Style)
	}{
		{"zero wheel step", func(s *Style) { s.WheelStep = 0 }},
		{"negative border", func(s *Style) { s.BorderWidth = -1 }},
		{"quality too low", func(s *Style) { s.JPEGQuality = 0 }},
		{"quality too high", func(s *Style) { s.JPEGQuality = 101 }},
		{"empty color", func(s *Style) { s.BorderColor = "" }},
		{"bad color", func(s *Style) { s.BorderColor = "not-a-color" }},
		{"bad alpha", func(s *Style) { s.BorderColor = "#112233zz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}

func TestStyle_BorderRGBA(t *testing.T) {
	s := DefaultStyle()
	s.BorderColor = "#FF8000"
	c := s.BorderRGBA()
	if c.R != 0xff || c.G != 0x80 || c.B != 0x00 || c.A != 0xff {
		t.Errorf("BorderRGBA: got %+v, want ff8000ff", c)
	}

	s.BorderColor = "#11223344"
	c = s.BorderRGBA()
	if c.R != 0x11 || c.G != 0x22 || c.B != 0x33 || c.A != 0x44 {
		t.Errorf("BorderRGBA with alpha: got %+v, want 11223344", c)
	}
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	content := "wheel_step: 0.5\nborder_color: \"#FF0000\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle failed: %v", err)
	}
	if s.WheelStep != 0.5 {
		t.Errorf("WheelStep: got %v, want 0.5", s.WheelStep)
	}
	if s.BorderColor != "#FF0000" {
		t.Errorf("BorderColor: got %q", s.BorderColor)
	}
	// Unspecified fields keep their defaults.
	if s.BorderWidth != DefaultStyle().BorderWidth {
		t.Errorf("BorderWidth: got %d, want default %d", s.BorderWidth, DefaultStyle().BorderWidth)
	}
	if s.JPEGQuality != DefaultStyle().JPEGQuality {
		t.Errorf("JPEGQuality: got %d, want default %d", s.JPEGQuality, DefaultStyle().JPEGQuality)
	}
}

func TestLoadStyle_Missing(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadStyle should fail for a missing file")
	}
}

func TestLoadStyle_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("jpeg_quality: 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStyle(path); err == nil {
		t.Error("LoadStyle should reject out-of-range jpeg_quality")
	}
}
