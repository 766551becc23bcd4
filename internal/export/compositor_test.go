package export

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"testing"

	"github.com/ironsheep/zoom-lens-mcp/internal/lens"
)

func uniformRaster(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func patternRaster(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < width/2 == (y < height/2) {
				img.SetNRGBA(x, y, color.NRGBA{200, 30, 30, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{30, 30, 200, 255})
			}
		}
	}
	return img
}

func nativeRequest(img *image.NRGBA, pos lens.Point, cfg lens.Config) lens.ExportRequest {
	b := img.Bounds()
	return lens.ExportRequest{
		Raster:   img,
		NaturalW: b.Dx(),
		NaturalH: b.Dy(),
		DisplayW: b.Dx(),
		DisplayH: b.Dy(),
		Pos:      pos,
		Config:   cfg.Clamp(),
	}
}

func TestCompose_PNG(t *testing.T) {
	img := uniformRaster(200, 150, color.NRGBA{30, 30, 200, 255})
	cfg := lens.Config{LensSize: 100, ZoomLevel: 2.0, DownloadFormat: lens.FormatPNG}
	req := nativeRequest(img, lens.Point{X: 100, Y: 75}, cfg)

	art, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if art.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", art.MimeType)
	}
	if art.Filename != "zoom-lens-100x75.png" {
		t.Errorf("Filename: got %s, want zoom-lens-100x75.png", art.Filename)
	}
	if art.Width != 200 || art.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", art.Width, art.Height)
	}

	decoded, err := png.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("export is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 200 || decoded.Bounds().Dy() != 150 {
		t.Errorf("decoded dimensions: got %v", decoded.Bounds())
	}
}

func TestCompose_JPG(t *testing.T) {
	img := uniformRaster(100, 100, color.NRGBA{200, 30, 30, 255})
	cfg := lens.Config{LensSize: 50, ZoomLevel: 2.0, DownloadFormat: lens.FormatJPG}
	req := nativeRequest(img, lens.Point{X: 50, Y: 50}, cfg)

	art, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	if art.MimeType != "image/jpeg" {
		t.Errorf("MimeType: got %s, want image/jpeg", art.MimeType)
	}
	if art.Filename != "zoom-lens-50x50.jpg" {
		t.Errorf("Filename: got %s", art.Filename)
	}
	decoded, format, err := image.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatalf("export is not decodable: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format: got %s, want jpeg", format)
	}
	if decoded.Bounds().Dx() != 100 {
		t.Errorf("decoded width: got %d", decoded.Bounds().Dx())
	}
}

func TestCompose_PNGIdempotent(t *testing.T) {
	img := patternRaster(120, 90)
	cfg := lens.Config{LensSize: 60, ZoomLevel: 3.0, DownloadFormat: lens.FormatPNG}
	req := nativeRequest(img, lens.Point{X: 60, Y: 45}, cfg)

	first, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("first Compose failed: %v", err)
	}
	second, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("second Compose failed: %v", err)
	}

	if !bytes.Equal(first.Data, second.Data) {
		t.Error("two exports of the same request should be byte-identical")
	}
	if first.Filename != second.Filename {
		t.Errorf("filenames differ: %s vs %s", first.Filename, second.Filename)
	}
}

func TestCompose_OutsideLensMatchesBase(t *testing.T) {
	img := patternRaster(200, 200)
	cfg := lens.Config{LensSize: 80, ZoomLevel: 2.0, DownloadFormat: lens.FormatPNG}
	req := nativeRequest(img, lens.Point{X: 100, Y: 100}, cfg)

	art, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatal(err)
	}

	// A pixel far outside the lens is the untouched base image.
	want := img.NRGBAAt(5, 5)
	got := color.NRGBAModel.Convert(decoded.At(5, 5)).(color.NRGBA)
	if got != want {
		t.Errorf("(5,5): got %+v, want base %+v", got, want)
	}
}

func TestCompose_ZoomOneIsUnmagnifiedCrop(t *testing.T) {
	// At 1x zoom the lens shows the base pixels unchanged, so inside the
	// lens (away from the border ring) the export equals the base image.
	img := patternRaster(200, 200)
	cfg := lens.Config{LensSize: 100, ZoomLevel: 1.0, DownloadFormat: lens.FormatPNG}
	req := nativeRequest(img, lens.Point{X: 100, Y: 100}, cfg)

	art, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(art.Data))
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []image.Point{{120, 120}, {80, 80}, {120, 80}, {80, 120}} {
		want := img.NRGBAAt(p.X, p.Y)
		got := color.NRGBAModel.Convert(decoded.At(p.X, p.Y)).(color.NRGBA)
		if got != want {
			t.Errorf("%v: got %+v, want base %+v", p, got, want)
		}
	}
}

func TestCompose_ScalesDisplayToNatural(t *testing.T) {
	// Image shown at half resolution: the export still runs at native size,
	// with the pointer and lens scaled up proportionally.
	img := uniformRaster(200, 150, color.NRGBA{30, 200, 30, 255})
	cfg := lens.Config{LensSize: 50, ZoomLevel: 2.0, DownloadFormat: lens.FormatPNG}
	req := lens.ExportRequest{
		Raster:   img,
		NaturalW: 200,
		NaturalH: 150,
		DisplayW: 100,
		DisplayH: 75,
		Pos:      lens.Point{X: 50, Y: 37.5},
		Config:   cfg.Clamp(),
	}

	art, err := Compose(req, lens.DefaultStyle())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if art.Width != 200 || art.Height != 150 {
		t.Errorf("export dimensions: got %dx%d, want native 200x150", art.Width, art.Height)
	}
	// Filename uses the natural-space center.
	if art.Filename != "zoom-lens-100x75.png" {
		t.Errorf("Filename: got %s, want zoom-lens-100x75.png", art.Filename)
	}
}

func TestCompose_NoImage(t *testing.T) {
	req := lens.ExportRequest{Config: lens.DefaultConfig()}
	if _, err := Compose(req, lens.DefaultStyle()); err == nil {
		t.Error("Compose should fail without an image")
	}
}
