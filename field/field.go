// Package field parameterizes the vector-field particle overlay. It
// validates raw directional grids, converts between grids and the
// raster encoding used when a field ships as an image, and resolves
// particle-simulation parameters into a spec consumed by an external
// advection engine. The package derives parameters only; it never
// simulates particles itself.
package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyField is returned for a grid with no rows or no columns.
	ErrEmptyField = errors.New("field: empty grid")

	// ErrRaggedField is returned when grid rows have differing lengths.
	ErrRaggedField = errors.New("field: ragged grid")

	// ErrBadCell is returned when a grid cell is not a 2-component
	// vector.
	ErrBadCell = errors.New("field: bad cell")
)

// Field is a rectangular grid of directional (u, v) samples. Row 0 is
// the top of the texture; u points east, v points south in texture
// space.
type Field struct {
	width  int
	height int
	uv     []float64 // interleaved u,v in row-major order
}

// NewField creates a zero-valued field. Dimensions below 1 are clamped
// to 1.
func NewField(width, height int) *Field {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Field{
		width:  width,
		height: height,
		uv:     make([]float64, width*height*2),
	}
}

// FromSamples validates a raw grid and copies it into a Field. The grid
// must be non-empty and rectangular, and every cell must hold exactly
// two components.
func FromSamples(grid [][][]float64) (*Field, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyField
	}
	height := len(grid)
	width := len(grid[0])

	f := NewField(width, height)
	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedField, y, len(row), width)
		}
		for x, cell := range row {
			if len(cell) != 2 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has %d components, want 2", ErrBadCell, x, y, len(cell))
			}
			f.Set(x, y, cell[0], cell[1])
		}
	}
	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// At returns the sample at a cell. Coordinates are clamped to the grid.
func (f *Field) At(x, y int) (u, v float64) {
	x = clampInt(x, 0, f.width-1)
	y = clampInt(y, 0, f.height-1)
	i := (y*f.width + x) * 2
	return f.uv[i], f.uv[i+1]
}

// Set stores a sample. Out-of-range coordinates are ignored.
func (f *Field) Set(x, y int, u, v float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	i := (y*f.width + x) * 2
	f.uv[i], f.uv[i+1] = u, v
}

// Bilinear samples the field at normalized coordinates in [0, 1].
// The horizontal axis wraps (longitude is periodic); the vertical axis
// clamps at the poles.
func (f *Field) Bilinear(fx, fy float64) (u, v float64) {
	x := fx*float64(f.width) - 0.5
	y := fy*float64(f.height) - 0.5

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	u00, v00 := f.At(wrapInt(x0, f.width), clampInt(y0, 0, f.height-1))
	u10, v10 := f.At(wrapInt(x1, f.width), clampInt(y0, 0, f.height-1))
	u01, v01 := f.At(wrapInt(x0, f.width), clampInt(y1, 0, f.height-1))
	u11, v11 := f.At(wrapInt(x1, f.width), clampInt(y1, 0, f.height-1))

	u = lerp(lerp(u00, u10, tx), lerp(u01, u11, tx), ty)
	v = lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
	return u, v
}

// MaxMagnitude returns the largest sample magnitude in the field.
func (f *Field) MaxMagnitude() float64 {
	max := 0.0
	for i := 0; i < len(f.uv); i += 2 {
		m := math.Hypot(f.uv[i], f.uv[i+1])
		if m > max {
			max = m
		}
	}
	return max
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
