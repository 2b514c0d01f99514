package globe

import (
	"math"

	"github.com/gogpu/globe/render"
)

// HeightField samples a grayscale height map as displacement values in
// [0, 1]. The sphere material displaces vertices along their normals by
// the sampled value times a host-chosen scale.
type HeightField struct {
	width   int
	height  int
	samples []float64
}

// NewHeightField converts a raster into a height field using BT.601
// luma. The raster pixels are read once; later raster mutations do not
// affect the field.
func NewHeightField(r *render.Raster) *HeightField {
	w, h := r.Width(), r.Height()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	f := &HeightField{
		width:   w,
		height:  h,
		samples: make([]float64, w*h),
	}
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			red, green, blue, _ := r.At(x, y)
			luma := 0.299*float64(red) + 0.587*float64(green) + 0.114*float64(blue)
			f.samples[y*w+x] = luma / 255
		}
	}
	return f
}

// Width returns the number of columns.
func (f *HeightField) Width() int { return f.width }

// Height returns the number of rows.
func (f *HeightField) Height() int { return f.height }

// At returns the sample at a cell, clamped to the grid.
func (f *HeightField) At(x, y int) float64 {
	if x < 0 {
		x = 0
	}
	if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= f.height {
		y = f.height - 1
	}
	return f.samples[y*f.width+x]
}

// Bilinear samples at normalized coordinates in [0, 1]. The horizontal
// axis wraps, the vertical axis clamps.
func (f *HeightField) Bilinear(fx, fy float64) float64 {
	x := fx*float64(f.width) - 0.5
	y := fy*float64(f.height) - 0.5

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	wrap := func(v int) int {
		v %= f.width
		if v < 0 {
			v += f.width
		}
		return v
	}
	clampY := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= f.height {
			return f.height - 1
		}
		return v
	}

	s00 := f.samples[clampY(y0)*f.width+wrap(x0)]
	s10 := f.samples[clampY(y0)*f.width+wrap(x0+1)]
	s01 := f.samples[clampY(y0+1)*f.width+wrap(x0)]
	s11 := f.samples[clampY(y0+1)*f.width+wrap(x0+1)]

	top := s00 + (s10-s00)*tx
	bottom := s01 + (s11-s01)*tx
	return top + (bottom-top)*ty
}

// SampleGeo samples the field at a geographic point through the
// standard equirectangular mapping.
func (f *HeightField) SampleGeo(g GeoPoint) float64 {
	fx := (g.Lon + 180) / 360
	fy := (90 - g.Lat) / 180
	return f.Bilinear(fx, fy)
}
