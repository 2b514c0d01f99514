package globe

import (
	"context"
	"math"
)

// Focus is the camera state that frames a target region: the orbit
// rotation, the fitting distance along the view axis, and the normalized
// zoom level derived from it. Transient; recomputed per focus request.
type Focus struct {
	Rotation Quaternion
	Distance float64
	Zoom     float64
}

// Camera describes the host camera at the moment of a focus request.
type Camera struct {
	// Radius is the sphere radius in world units.
	Radius float64

	// FOV is the vertical field of view in radians.
	FOV float64

	// Aspect is the viewport width over height.
	Aspect float64

	// Distance is the current camera distance from the sphere center.
	Distance float64
}

// ComputeFocus derives the rotation and zoom that center and fit the
// given texture-space bounds on the sphere. surfaceW and surfaceH are the
// texture dimensions the bounds are expressed in.
//
// The box corners are lifted onto the sphere; their normalized sum is the
// surface point the camera should face. The reported ok is false for
// degenerate input (empty bounds, antipodal corners, bad camera), in
// which case the identity rotation is returned and the caller should hold
// the prior camera state. No NaN is ever produced.
func ComputeFocus(bounds Rect, surfaceW, surfaceH float64, cam Camera) (Focus, bool) {
	hold := Focus{Rotation: IdentityQuaternion(), Distance: cam.Distance}
	if bounds.IsEmpty() || surfaceW <= 0 || surfaceH <= 0 {
		return hold, false
	}
	if cam.Radius <= 0 || cam.Aspect <= 0 || cam.FOV <= 0 || cam.FOV >= math.Pi {
		return hold, false
	}

	corners := [4]Vec3{
		spherePoint(bounds.MinX/surfaceW, bounds.MinY/surfaceH, cam.Radius),
		spherePoint(bounds.MaxX/surfaceW, bounds.MinY/surfaceH, cam.Radius),
		spherePoint(bounds.MinX/surfaceW, bounds.MaxY/surfaceH, cam.Radius),
		spherePoint(bounds.MaxX/surfaceW, bounds.MaxY/surfaceH, cam.Radius),
	}

	sum := corners[0].Add(corners[1]).Add(corners[2]).Add(corners[3])
	if sum.Length() == 0 {
		return hold, false
	}
	normal := sum.Normalize()

	// Tangent frame around the normal. When the normal is parallel to the
	// fixed up axis the cross product vanishes; fall back to another axis.
	up := Vec3{Y: 1}
	right := up.Cross(normal)
	if right.Length() == 0 {
		up = Vec3{Z: 1}
		right = up.Cross(normal)
	}
	right = right.Normalize()
	tangentUp := normal.Cross(right)

	// The frame quaternion carries the normal onto the camera-facing axis
	// once inverted.
	rotation := QuaternionFromBasis(right, tangentUp, normal).Invert()

	// Fit the larger diagonal chord within the field of view.
	diag := math.Max(corners[0].Distance(corners[3]), corners[1].Distance(corners[2]))
	halfTan := math.Tan(cam.FOV / 2)
	z := math.Max(diag/2/halfTan/cam.Aspect, diag/2/halfTan)

	return Focus{
		Rotation: rotation,
		Distance: z,
		Zoom:     (cam.Distance - z) / cam.Radius,
	}, true
}

// spherePoint lifts normalized texture coordinates onto a sphere of the
// given radius. x wraps the full longitude range, y spans pole to pole.
func spherePoint(x, y, r float64) Vec3 {
	sy, cy := math.Sincos(y * math.Pi)
	sx, cx := math.Sincos(2 * math.Pi * x)
	return Vec3{
		X: -r * sy * cx,
		Y: r * cy,
		Z: r * sy * sx,
	}
}

// FocusOn animates the orbit controller to frame the shape: rotate first,
// then zoom strictly after the rotation resolves. A degenerate shape
// leaves the camera untouched and returns nil. Calling on a disposed
// compositor is a no-op returning ErrDisposed.
func (c *Compositor) FocusOn(ctx context.Context, orbit OrbitController, shape TextureShape, cam Camera) error {
	if c.isDisposed() {
		return ErrDisposed
	}
	focus, ok := ComputeFocus(shape.Bounds, float64(c.proj.Width()), float64(c.proj.Height()), cam)
	if !ok {
		return nil
	}
	if err := orbit.RotateTo(ctx, focus.Rotation, EasingCubicOut); err != nil {
		return err
	}
	if c.isDisposed() {
		return ErrDisposed
	}
	return orbit.ZoomTo(ctx, focus.Zoom, EasingCubicOut)
}
