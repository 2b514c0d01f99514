package globe

import "context"

// Element is one drawable unit handed to the surface renderer: a shape
// tagged with its z-order. The shape carries style and picking metadata.
type Element struct {
	Z     int
	Shape TextureShape
}

// SurfaceRenderer is the external renderer that paints the surface
// texture wrapped around the sphere. The compositor clears and re-adds
// elements on every refresh; Refresh signals that the element list is
// complete and the texture should be repainted.
type SurfaceRenderer interface {
	// AddElement appends a drawable element.
	AddElement(el Element)

	// ClearElements removes all elements.
	ClearElements()

	// Refresh repaints the surface from the current element list.
	Refresh()

	// Hover returns the topmost element containing the texture-space
	// point, if any.
	Hover(x, y float64) (Element, bool)

	// Width returns the surface texture width in pixels.
	Width() int

	// Height returns the surface texture height in pixels.
	Height() int
}

// Easing selects the animation curve for camera transitions.
type Easing int

// Easing curves understood by orbit controllers.
const (
	EasingLinear Easing = iota
	EasingCubicOut
	EasingElasticOut
)

// OrbitController is the external camera rig. RotateTo and ZoomTo run
// animated transitions and return once the transition completes or the
// context is canceled; Update advances in-flight transitions by a frame.
type OrbitController interface {
	RotateTo(ctx context.Context, rotation Quaternion, easing Easing) error
	ZoomTo(ctx context.Context, zoom float64, easing Easing) error
	Update(dt float64)
}
