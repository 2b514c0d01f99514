package globe

import (
	"math"

	"github.com/gogpu/globe/label"
)

// NoValue is the sentinel value carried by shapes whose region had no
// numeric data. Check HasData rather than comparing against it.
var NoValue = math.NaN()

// LabelPrimitive is the drawable label derived from a region. The label
// text itself is rasterized by the external text engine; this primitive
// carries everything that engine needs: the anchor in texture space, the
// latitude-dependent width scale, measured extents, base direction and the
// resolved styles for both display states.
type LabelPrimitive struct {
	Text       string
	Anchor     Point
	WidthScale float64
	Extents    label.Extents
	Direction  label.Direction
	Style      LabelStyle
	Highlight  LabelStyle
}

// TextureShape is one region projected into texture space with its
// resolved styles: the composite of all the region's rings plus one label
// primitive. Shapes are resolution-dependent and are rebuilt whenever the
// texture size changes.
type TextureShape struct {
	Name   string
	Rings  [][]Point
	Bounds Rect

	// Value is the aggregate value, or NoValue when HasData is false.
	Value   float64
	HasData bool

	Style     RegionStyle
	Highlight RegionStyle
	Label     LabelPrimitive
}
