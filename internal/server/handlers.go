package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"

	"github.com/ironsheep/zoom-lens-mcp/internal/export"
	"github.com/ironsheep/zoom-lens-mcp/internal/lens"
	"github.com/ironsheep/zoom-lens-mcp/internal/raster"
	"github.com/ironsheep/zoom-lens-mcp/internal/render"
)

// PixelsParam is a raw pixel buffer as sent by the host: base64 data with
// shape (height, width, channels).
type PixelsParam struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Channels   int    `json:"channels"`
	DataBase64 string `json:"data_base64"`
}

// CreateParams are the widget/create parameters. Exactly one of ImageURL,
// ImageBase64 and Pixels must be set.
type CreateParams struct {
	ImageURL    string       `json:"image_url,omitempty"`
	ImageBase64 string       `json:"image_base64,omitempty"`
	Pixels      *PixelsParam `json:"pixels,omitempty"`

	LensSize       int     `json:"lens_size,omitempty"`
	ZoomLevel      float64 `json:"zoom_level,omitempty"`
	DownloadFormat string  `json:"download_format,omitempty"`
	LensShape      string  `json:"lens_shape,omitempty"`

	Key           string `json:"key,omitempty"`
	DisplayWidth  int    `json:"display_width,omitempty"`
	DisplayHeight int    `json:"display_height,omitempty"`
}

// CreateResult reports the registered instance and its effective (clamped)
// configuration.
type CreateResult struct {
	Key           string      `json:"key"`
	NaturalWidth  int         `json:"natural_width"`
	NaturalHeight int         `json:"natural_height"`
	DisplayWidth  int         `json:"display_width"`
	DisplayHeight int         `json:"display_height"`
	Config        lens.Config `json:"config"`
}

// EventParams are the widget/event parameters: the instance key plus exactly
// one event payload.
type EventParams struct {
	Key      string      `json:"key"`
	Move     *MoveParam  `json:"move,omitempty"`
	Wheel    *WheelParam `json:"wheel,omitempty"`
	HoverEnd bool        `json:"hover_end,omitempty"`
}

// MoveParam is a pointer position in display coordinates.
type MoveParam struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WheelParam is one wheel tick; the sign of Delta selects the direction.
type WheelParam struct {
	Delta float64 `json:"delta"`
}

// EventResult reports the widget state after an event, including the
// effective zoom for host-side two-way sync.
type EventResult struct {
	Hovering  bool    `json:"hovering"`
	ZoomLevel float64 `json:"zoom_level"`
}

// FrameResult carries one rendered display frame, base64 PNG encoded.
type FrameResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// ExportResult carries one download artifact.
type ExportResult struct {
	Filename   string `json:"filename"`
	MimeType   string `json:"mime_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	DataBase64 string `json:"data_base64"`
}

type keyParam struct {
	Key string `json:"key"`
}

type setZoomParams struct {
	Key       string  `json:"key"`
	ZoomLevel float64 `json:"zoom_level"`
}

func (s *Server) handleCreate(req *Request) *Response {
	var params CreateParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	format, err := lens.ParseFormat(params.DownloadFormat)
	if err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	shape, err := lens.ParseShape(params.LensShape)
	if err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	src, err := buildSource(&params)
	if err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	img, err := src.Resolve(context.Background())
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Image source failed", err.Error())
	}

	cfg := lens.Config{
		LensSize:       params.LensSize,
		ZoomLevel:      params.ZoomLevel,
		DownloadFormat: format,
		Shape:          shape,
	}
	w, err := lens.NewWidget(img, cfg, s.style, params.DisplayWidth, params.DisplayHeight)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Widget creation failed", err.Error())
	}

	key := s.registry.Put(params.Key, w)
	nw, nh := w.NaturalSize()
	dw, dh := w.DisplaySize()
	s.log.Infow("widget created", "key", key, "natural", fmt.Sprintf("%dx%d", nw, nh))

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: CreateResult{
			Key:           key,
			NaturalWidth:  nw,
			NaturalHeight: nh,
			DisplayWidth:  dw,
			DisplayHeight: dh,
			Config:        w.Config(),
		},
	}
}

// buildSource maps create params onto the raster source variant. The
// exactly-one check lives in raster.Source.Resolve; this only decodes the
// transport encodings.
func buildSource(p *CreateParams) (raster.Source, error) {
	var src raster.Source
	src.URL = p.ImageURL
	if p.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(p.ImageBase64)
		if err != nil {
			return src, fmt.Errorf("image_base64 is not valid base64: %w", err)
		}
		src.Bytes = data
	}
	if p.Pixels != nil {
		data, err := base64.StdEncoding.DecodeString(p.Pixels.DataBase64)
		if err != nil {
			return src, fmt.Errorf("pixels.data_base64 is not valid base64: %w", err)
		}
		src.Pixels = &raster.PixelBuffer{
			Width:    p.Pixels.Width,
			Height:   p.Pixels.Height,
			Channels: p.Pixels.Channels,
			Data:     data,
		}
	}
	return src, nil
}

func (s *Server) handleEvent(req *Request) *Response {
	var params EventParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	ev, err := params.event()
	if err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	var result EventResult
	err = s.registry.With(params.Key, func(w *lens.Widget) error {
		up := w.Apply(ev)
		result = EventResult{Hovering: up.Hovering, ZoomLevel: up.ZoomLevel}
		return nil
	})
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Event failed", err.Error())
	}
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

// event maps the wire payload onto a typed lens event.
func (p *EventParams) event() (lens.Event, error) {
	n := 0
	if p.Move != nil {
		n++
	}
	if p.Wheel != nil {
		n++
	}
	if p.HoverEnd {
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("event must carry exactly one of move, wheel, hover_end")
	}
	switch {
	case p.Move != nil:
		return lens.Move{X: p.Move.X, Y: p.Move.Y}, nil
	case p.Wheel != nil:
		return lens.Wheel{Delta: p.Wheel.Delta}, nil
	default:
		return lens.HoverEnd{}, nil
	}
}

func (s *Server) handleSetZoom(req *Request) *Response {
	var params setZoomParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	var result EventResult
	err := s.registry.With(params.Key, func(w *lens.Widget) error {
		result = EventResult{Hovering: w.Hovering(), ZoomLevel: w.SetZoom(params.ZoomLevel)}
		return nil
	})
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Set zoom failed", err.Error())
	}
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) handleRenderFrame(req *Request) *Response {
	var params keyParam
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	var result FrameResult
	err := s.registry.With(params.Key, func(w *lens.Widget) error {
		frame := render.Frame(w, s.style)
		var buf bytes.Buffer
		if err := png.Encode(&buf, frame); err != nil {
			return fmt.Errorf("failed to encode frame: %w", err)
		}
		result = FrameResult{
			Width:       frame.Bounds().Dx(),
			Height:      frame.Bounds().Dy(),
			ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
			MimeType:    "image/png",
		}
		return nil
	})
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Render failed", err.Error())
	}
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) handleExport(req *Request) *Response {
	var params keyParam
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	var result ExportResult
	err := s.registry.With(params.Key, func(w *lens.Widget) error {
		up := w.Apply(lens.ExportTrigger{})
		art, err := export.Compose(*up.Export, s.style)
		if err != nil {
			return err
		}
		result = ExportResult{
			Filename:   art.Filename,
			MimeType:   art.MimeType,
			Width:      art.Width,
			Height:     art.Height,
			DataBase64: base64.StdEncoding.EncodeToString(art.Data),
		}
		return nil
	})
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Export failed", err.Error())
	}
	s.log.Infow("export delivered", "key", params.Key, "filename", result.Filename)
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func (s *Server) handleDestroy(req *Request) *Response {
	var params keyParam
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	s.registry.Delete(params.Key)
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: map[string]interface{}{}}
}

func (s *Server) handleList(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  map[string]interface{}{"keys": s.registry.Keys()},
	}
}
