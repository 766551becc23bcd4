package raster

import (
	"fmt"
	"image"
)

// PixelBuffer is a raw interleaved pixel array with shape (Height, Width,
// Channels), row-major, top-left origin. Channels must be 3 (RGB) or 4
// (RGBA).
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}

// ToImage converts the buffer into an NRGBA raster. RGB input gets an
// opaque alpha channel.
func (p *PixelBuffer) ToImage() (*image.NRGBA, error) {
	if p.Width < 1 || p.Height < 1 {
		return nil, fmt.Errorf("invalid pixel buffer dimensions %dx%d", p.Width, p.Height)
	}
	if p.Channels != 3 && p.Channels != 4 {
		return nil, fmt.Errorf("invalid pixel buffer shape: %d channels, want 3 or 4", p.Channels)
	}
	want := p.Width * p.Height * p.Channels
	if len(p.Data) != want {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%dx%d (want %d)",
			len(p.Data), p.Height, p.Width, p.Channels, want)
	}

	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	si := 0
	for y := 0; y < p.Height; y++ {
		di := img.PixOffset(0, y)
		for x := 0; x < p.Width; x++ {
			img.Pix[di] = p.Data[si]
			img.Pix[di+1] = p.Data[si+1]
			img.Pix[di+2] = p.Data[si+2]
			if p.Channels == 4 {
				img.Pix[di+3] = p.Data[si+3]
			} else {
				img.Pix[di+3] = 0xff
			}
			si += p.Channels
			di += 4
		}
	}
	return img, nil
}
