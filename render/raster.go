// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	// Register the decoders raster resources arrive in.
	_ "image/jpeg"
	_ "image/png"
)

// Raster errors.
var (
	// ErrEmptyData is returned when raster data is empty.
	ErrEmptyData = errors.New("render: empty data")
)

// Raster is a decoded raster resource: a background image, a height map,
// or a vector-field image. Pixels are non-premultiplied RGBA, 4 bytes per
// pixel, rows padded to Stride.
type Raster struct {
	width  int
	height int
	stride int
	pix    []uint8
}

// NewRaster creates a zeroed raster of the given size.
func NewRaster(width, height int) *Raster {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Raster{
		width:  width,
		height: height,
		stride: width * 4,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int { return r.stride }

// Pix returns the backing pixel data. The slice is shared, not copied.
func (r *Raster) Pix() []uint8 { return r.pix }

// At returns the RGBA components at the given pixel.
// Out-of-range coordinates return zeros.
func (r *Raster) At(x, y int) (red, green, blue, alpha uint8) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0, 0, 0, 0
	}
	off := y*r.stride + x*4
	return r.pix[off], r.pix[off+1], r.pix[off+2], r.pix[off+3]
}

// Set writes the RGBA components at the given pixel.
// Out-of-range coordinates are ignored.
func (r *Raster) Set(x, y int, red, green, blue, alpha uint8) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	off := y*r.stride + x*4
	r.pix[off] = red
	r.pix[off+1] = green
	r.pix[off+2] = blue
	r.pix[off+3] = alpha
}

// ToImage converts the raster to a standard library image.
// The pixel data is copied.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	if img.Stride == r.stride {
		copy(img.Pix, r.pix)
		return img
	}
	for y := 0; y < r.height; y++ {
		copy(img.Pix[y*img.Stride:], r.pix[y*r.stride:y*r.stride+r.width*4])
	}
	return img
}

// Decode decodes raster data, auto-detecting the format.
// PNG and JPEG are registered; hosts may register more via image.RegisterFormat.
func Decode(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes a raster from the given reader.
func DecodeReader(rd io.Reader) (*Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("render: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage creates a Raster from a standard library image.
func FromImage(img image.Image) *Raster {
	bounds := img.Bounds()
	r := NewRaster(bounds.Dx(), bounds.Dy())

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == r.stride {
			copy(r.pix, nrgba.Pix)
			return r
		}
		for y := 0; y < r.height; y++ {
			srcStart := y * nrgba.Stride
			copy(r.pix[y*r.stride:], nrgba.Pix[srcStart:srcStart+r.width*4])
		}
		return r
	}

	// Generic slow path for any image type
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			cr, cg, cb, ca := c.RGBA()
			// RGBA() returns premultiplied 16-bit values.
			if ca != 0 {
				cr = cr * 0xffff / ca
				cg = cg * 0xffff / ca
				cb = cb * 0xffff / ca
			}
			r.Set(x, y, uint8(cr>>8), uint8(cg>>8), uint8(cb>>8), uint8(ca>>8))
		}
	}
	return r
}
