package field

import (
	"github.com/gogpu/globe/render"
)

// Raster channel scheme: u maps to red and v to green through
// channel = component*128 + 128, blue is 0 and alpha is 255. The
// scheme is lossless to 1/128 for components in [-1, 1], so an image
// can stand in for a numeric grid.

// DecodeRaster reads a vector field from an encoded raster. One grid
// cell is produced per pixel.
func DecodeRaster(r *render.Raster) (*Field, error) {
	if r == nil || r.Width() == 0 || r.Height() == 0 {
		return nil, ErrEmptyField
	}

	f := NewField(r.Width(), r.Height())
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			red, green, _, _ := r.At(x, y)
			u := (float64(red) - 128) / 128
			v := (float64(green) - 128) / 128
			f.Set(x, y, u, v)
		}
	}
	return f, nil
}

// EncodeRaster writes a field into the raster channel scheme.
// Components outside [-1, 1] clamp to the channel range.
func EncodeRaster(f *Field) *render.Raster {
	r := render.NewRaster(f.Width(), f.Height())
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			u, v := f.At(x, y)
			r.Set(x, y, encodeChannel(u), encodeChannel(v), 0, 255)
		}
	}
	return r
}

func encodeChannel(c float64) uint8 {
	ch := c*128 + 128
	if ch < 0 {
		ch = 0
	}
	if ch > 255 {
		ch = 255
	}
	return uint8(ch)
}
