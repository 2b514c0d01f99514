// Package scan provides even-odd scanline filling and hit testing for
// texture-space polygon rings. It deliberately knows nothing about color
// or pixels: callers receive spans and plot them however they blend.
package scan

import (
	"math"
	"sort"
)

// Pt is a point in texture space.
type Pt struct {
	X, Y float64
}

// Ring is one closed polygon boundary. The closing edge from the last
// point back to the first is implicit.
type Ring []Pt

// Fill rasterizes the rings with the even-odd rule, clipped to a
// width x height pixel grid. For every covered horizontal run it calls
// span(y, x0, x1) with x0 <= x1, both inclusive. Pixels are covered when
// their centers fall inside the polygon, so adjacent regions sharing an
// edge never overlap.
//
// Multiple rings compose: a ring inside another punches a hole, which is
// how region geometries express enclaves.
func Fill(rings []Ring, width, height int, span func(y, x0, x1 int)) {
	if width <= 0 || height <= 0 || len(rings) == 0 {
		return
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	total := 0
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		total += len(ring)
		for _, p := range ring {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if total == 0 {
		return
	}

	yStart := int(math.Ceil(minY - 0.5))
	yEnd := int(math.Floor(maxY - 0.5))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > height-1 {
		yEnd = height - 1
	}

	xs := make([]float64, 0, 16)
	for y := yStart; y <= yEnd; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for _, ring := range rings {
			if len(ring) < 3 {
				continue
			}
			for i := range ring {
				p1 := ring[i]
				p2 := ring[(i+1)%len(ring)]
				if (p1.Y <= yc) == (p2.Y <= yc) {
					continue
				}
				t := (yc - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > width-1 {
				x1 = width - 1
			}
			if x0 <= x1 {
				span(y, x0, x1)
			}
		}
	}
}

// PointInRings reports whether the point lies inside the rings under the
// even-odd rule. Points exactly on a boundary edge may land either way;
// picking does not need edge-exact answers.
func PointInRings(x, y float64, rings []Ring) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		if n < 3 {
			continue
		}
		j := n - 1
		for i := 0; i < n; i++ {
			pi, pj := ring[i], ring[j]
			if (pi.Y > y) != (pj.Y > y) &&
				x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
				inside = !inside
			}
			j = i
		}
	}
	return inside
}

// Line walks the pixel grid from (x0, y0) to (x1, y1) and calls plot for
// each pixel. Bresenham on rounded endpoints; good enough for the 1px
// region outlines the software renderer draws.
func Line(x0, y0, x1, y1 float64, plot func(x, y int)) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx := 1
	if ix0 > ix1 {
		sx = -1
	}
	sy := 1
	if iy0 > iy1 {
		sy = -1
	}

	err := dx + dy
	for {
		plot(ix0, iy0)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
