package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// ErrNoSource is returned when a Source specifies no input at all.
var ErrNoSource = errors.New("image source is empty: provide a URL, encoded bytes, or a pixel buffer")

// ErrAmbiguousSource is returned when a Source specifies more than one input.
var ErrAmbiguousSource = errors.New("image source is ambiguous: provide exactly one of URL, encoded bytes, or a pixel buffer")

// fetchTimeout bounds URL fetches so a stalled server cannot hang widget
// creation.
const fetchTimeout = 15 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// Source is the closed input variant for widget images. Exactly one field
// must be set.
type Source struct {
	// URL is a web URL or a data URL ("data:image/...;base64,...").
	URL string

	// Bytes is an encoded image (PNG, JPEG or GIF).
	Bytes []byte

	// Pixels is a raw (H, W, 3) or (H, W, 4) pixel buffer.
	Pixels *PixelBuffer
}

// Resolve decodes the source into an NRGBA raster. It fails fast on empty
// or ambiguous sources and on undecodable input; a widget is never created
// over a broken image.
func (s Source) Resolve(ctx context.Context) (*image.NRGBA, error) {
	n := 0
	if s.URL != "" {
		n++
	}
	if len(s.Bytes) > 0 {
		n++
	}
	if s.Pixels != nil {
		n++
	}
	switch {
	case n == 0:
		return nil, ErrNoSource
	case n > 1:
		return nil, ErrAmbiguousSource
	}

	switch {
	case s.Pixels != nil:
		return s.Pixels.ToImage()
	case len(s.Bytes) > 0:
		return decodeBytes(s.Bytes)
	case strings.HasPrefix(s.URL, "data:"):
		data, err := decodeDataURL(s.URL)
		if err != nil {
			return nil, err
		}
		return decodeBytes(data)
	default:
		return fetchURL(ctx, s.URL)
	}
}

func decodeBytes(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Clone(img), nil
}

// decodeDataURL extracts the payload of a base64 data URL. Hosts use these
// for uploaded files.
func decodeDataURL(url string) ([]byte, error) {
	idx := strings.Index(url, ",")
	if idx < 0 {
		return nil, fmt.Errorf("malformed data URL: missing comma separator")
	}
	meta, payload := url[:idx], url[idx+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data URL encoding: only base64 is accepted")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URL payload: %w", err)
	}
	return data, nil
}

func fetchURL(ctx context.Context, url string) (*image.NRGBA, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image: status %d from %s", resp.StatusCode, url)
	}
	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", url, err)
	}
	return imaging.Clone(img), nil
}
