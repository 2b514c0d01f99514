package globe

import (
	"image"
	"image/color"
	"sort"

	"github.com/gogpu/globe/internal/scan"
	"github.com/gogpu/globe/render"
)

// SoftwareRenderer is the CPU reference implementation of
// SurfaceRenderer. It paints region fills and one-pixel outlines into a
// pixmap target with even-odd filling and answers hover queries with
// even-odd hit tests. Label glyphs are not rasterized here; label
// primitives ride along on elements for the host's text engine.
//
// Production hosts render on the GPU. This renderer exists for tests,
// tools and headless composites.
type SoftwareRenderer struct {
	target     *render.PixmapTarget
	elements   []Element
	background RGBA
}

// NewSoftwareRenderer creates a software renderer with a width x height
// pixmap target.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		target:     render.NewPixmapTarget(width, height),
		background: Transparent,
	}
}

// SetBackground sets the color the target is cleared to on Refresh.
func (r *SoftwareRenderer) SetBackground(c RGBA) {
	r.background = c
}

// Target returns the pixmap the renderer paints into.
func (r *SoftwareRenderer) Target() *render.PixmapTarget {
	return r.target
}

// AddElement appends a drawable element.
func (r *SoftwareRenderer) AddElement(el Element) {
	r.elements = append(r.elements, el)
}

// ClearElements removes all elements.
func (r *SoftwareRenderer) ClearElements() {
	r.elements = r.elements[:0]
}

// Width returns the surface texture width in pixels.
func (r *SoftwareRenderer) Width() int { return r.target.Width() }

// Height returns the surface texture height in pixels.
func (r *SoftwareRenderer) Height() int { return r.target.Height() }

// Refresh repaints the target: background first, then each element's
// fill and outline in ascending z-order. Insertion order breaks z ties,
// so a deterministic element list paints deterministically.
func (r *SoftwareRenderer) Refresh() {
	r.target.Clear(r.background.Color())

	ordered := make([]Element, len(r.elements))
	copy(ordered, r.elements)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	for _, el := range ordered {
		r.paint(el.Shape)
	}
}

// Hover returns the topmost element containing the texture-space point.
// Among elements with equal z the one added last wins.
func (r *SoftwareRenderer) Hover(x, y float64) (Element, bool) {
	best := -1
	for i, el := range r.elements {
		if !el.Shape.Bounds.Contains(Pt(x, y)) {
			continue
		}
		if !scan.PointInRings(x, y, toScanRings(el.Shape.Rings)) {
			continue
		}
		if best < 0 || el.Z >= r.elements[best].Z {
			best = i
		}
	}
	if best < 0 {
		return Element{}, false
	}
	return r.elements[best], true
}

// paint fills the shape's rings and walks their outlines.
func (r *SoftwareRenderer) paint(shape TextureShape) {
	img := r.target.Image()
	w, h := r.target.Width(), r.target.Height()
	rings := toScanRings(shape.Rings)

	fill := premultiply(shape.Style.Fill, shape.Style.Opacity)
	if fill.A > 0 {
		scan.Fill(rings, w, h, func(y, x0, x1 int) {
			for x := x0; x <= x1; x++ {
				blend(img, x, y, fill)
			}
		})
	}

	if shape.Style.StrokeWidth > 0 {
		stroke := premultiply(shape.Style.Stroke, shape.Style.Opacity)
		if stroke.A > 0 {
			for _, ring := range rings {
				n := len(ring)
				for i := 0; i < n; i++ {
					p1, p2 := ring[i], ring[(i+1)%n]
					scan.Line(p1.X, p1.Y, p2.X, p2.Y, func(x, y int) {
						if x >= 0 && y >= 0 && x < w && y < h {
							blend(img, x, y, stroke)
						}
					})
				}
			}
		}
	}
}

func toScanRings(rings [][]Point) []scan.Ring {
	out := make([]scan.Ring, len(rings))
	for i, ring := range rings {
		sr := make(scan.Ring, len(ring))
		for j, p := range ring {
			sr[j] = scan.Pt{X: p.X, Y: p.Y}
		}
		out[i] = sr
	}
	return out
}

// premultiply folds the style opacity into the color and converts to
// the premultiplied 8-bit form image.RGBA stores.
func premultiply(c RGBA, opacity float64) color.RGBA {
	a := c.A * opacity
	if a <= 0 {
		return color.RGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(clamp255(c.R*a*255 + 0.5)),
		G: uint8(clamp255(c.G*a*255 + 0.5)),
		B: uint8(clamp255(c.B*a*255 + 0.5)),
		A: uint8(clamp255(a*255 + 0.5)),
	}
}

// blend source-over composites a premultiplied color onto one pixel.
func blend(img *image.RGBA, x, y int, src color.RGBA) {
	off := img.PixOffset(x, y)
	if src.A == 0xff {
		img.Pix[off] = src.R
		img.Pix[off+1] = src.G
		img.Pix[off+2] = src.B
		img.Pix[off+3] = src.A
		return
	}
	inv := uint32(0xff - src.A)
	img.Pix[off] = src.R + uint8(uint32(img.Pix[off])*inv/0xff)
	img.Pix[off+1] = src.G + uint8(uint32(img.Pix[off+1])*inv/0xff)
	img.Pix[off+2] = src.B + uint8(uint32(img.Pix[off+2])*inv/0xff)
	img.Pix[off+3] = src.A + uint8(uint32(img.Pix[off+3])*inv/0xff)
}

// Ensure SoftwareRenderer implements SurfaceRenderer.
var _ SurfaceRenderer = (*SoftwareRenderer)(nil)
