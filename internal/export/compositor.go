package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/zoom-lens-mcp/internal/lens"
	"github.com/ironsheep/zoom-lens-mcp/internal/render"
)

// Artifact is one exported download: the encoded bytes plus the filename and
// MIME type the host should deliver them under.
type Artifact struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Data     []byte `json:"-"`
}

// Compose flattens the base image and the lens overlay described by the
// request into one raster and encodes it in the request's download format.
//
// The same geometry engine used for the live view runs here, but against the
// native resolution: the pointer position and lens size are scaled by the
// natural/display ratio, and the window is computed with display == natural.
// Two calls with the same request produce identical output.
func Compose(req lens.ExportRequest, style lens.Style) (*Artifact, error) {
	if req.Raster == nil {
		return nil, fmt.Errorf("export request has no image")
	}

	scaleX := float64(req.NaturalW) / float64(req.DisplayW)
	scaleY := float64(req.NaturalH) / float64(req.DisplayH)
	pos := lens.Point{X: req.Pos.X * scaleX, Y: req.Pos.Y * scaleY}
	lensSize := int(math.Round(float64(req.Config.LensSize) * scaleX))
	if lensSize < 1 {
		lensSize = 1
	}

	g := lens.Compute(pos, req.NaturalW, req.NaturalH, req.NaturalW, req.NaturalH,
		lensSize, req.Config.ZoomLevel)
	layer := render.LensLayer(req.Raster, g, req.Config.Shape, style, req.NaturalW, req.NaturalH)
	flat := blend.Normal(req.Raster, layer)

	var buf bytes.Buffer
	switch req.Config.DownloadFormat {
	case lens.FormatPNG:
		if err := imaging.Encode(&buf, flat, imaging.PNG); err != nil {
			return nil, fmt.Errorf("failed to encode png export: %w", err)
		}
	default:
		if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(style.JPEGQuality)); err != nil {
			return nil, fmt.Errorf("failed to encode jpg export: %w", err)
		}
	}

	return &Artifact{
		Filename: Filename(pos, req.Config.DownloadFormat),
		MimeType: req.Config.DownloadFormat.MimeType(),
		Width:    req.NaturalW,
		Height:   req.NaturalH,
		Data:     buf.Bytes(),
	}, nil
}

// Filename builds the deterministic download name for an export at the given
// natural-space lens center. Repeated exports at the same position reuse the
// same name.
func Filename(pos lens.Point, format lens.Format) string {
	return fmt.Sprintf("zoom-lens-%dx%d.%s",
		int(math.Round(pos.X)), int(math.Round(pos.Y)), string(format))
}
