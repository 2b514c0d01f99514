package globe

import "math"

// Projection maps geographic coordinates onto the equirectangular surface
// texture. The full texture spans 360 degrees of longitude and 180 degrees
// of latitude regardless of its pixel dimensions; surface textures are
// typically square, with the sphere's UV parameterization compensating for
// the asymmetric angular scaling.
type Projection struct {
	width  int
	height int
}

// Longitudes west of the antimeridian fix-up threshold at high northern
// latitudes are shifted by a full turn so the far-eastern landmass renders
// contiguously on the right edge of the map instead of wrapping.
const (
	fixupLon = -168.5
	fixupLat = 63.8
)

// maxLabelLat bounds the latitude used for label width scaling.
// 1/cos(lat) grows unbounded toward the poles; clamping at 89 degrees
// keeps the scale finite and positive.
const maxLabelLat = 89.0

// NewProjection creates a projection onto a width x height texture.
// Dimensions must be positive.
func NewProjection(width, height int) Projection {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Projection{width: width, height: height}
}

// Width returns the texture width in pixels.
func (p Projection) Width() int { return p.width }

// Height returns the texture height in pixels.
func (p Projection) Height() int { return p.height }

// Project maps a geographic point to texture pixel coordinates.
func (p Projection) Project(g GeoPoint) Point {
	lon := g.Lon
	if lon < fixupLon && g.Lat > fixupLat {
		lon += 360
	}
	return Point{
		X: (lon + 180) * float64(p.width) / 360,
		Y: (90 - g.Lat) * float64(p.height) / 180,
	}
}

// Unproject maps texture pixel coordinates back to a geographic point.
// It does not reverse the antimeridian fix-up: points in the fix-up band
// unproject to longitudes above 180, matching where they were drawn.
func (p Projection) Unproject(pt Point) GeoPoint {
	return GeoPoint{
		Lon: pt.X*360/float64(p.width) - 180,
		Lat: 90 - pt.Y*180/float64(p.height),
	}
}

// LabelWidthScale returns the horizontal scale that counteracts
// equirectangular pinching at the given latitude. The scale is 1/cos(lat),
// clamped near the poles; it is always positive.
func LabelWidthScale(latDeg float64) float64 {
	if latDeg > maxLabelLat {
		latDeg = maxLabelLat
	} else if latDeg < -maxLabelLat {
		latDeg = -maxLabelLat
	}
	return 1 / math.Cos(latDeg*math.Pi/180)
}

// Quality selects the surface texture resolution tier.
type Quality int

// Quality tiers. Textures are square; higher tiers sharpen region edges
// at the cost of memory and composite time.
const (
	QualityLow    Quality = iota // 1024 x 1024
	QualityMedium                // 2048 x 2048
	QualityHigh                  // 4096 x 4096
	QualityUltra                 // 8192 x 8192
)

// TextureSize returns the square texture edge length for the tier.
// Unknown tiers fall back to medium.
func (q Quality) TextureSize() int {
	switch q {
	case QualityLow:
		return 1024
	case QualityMedium:
		return 2048
	case QualityHigh:
		return 4096
	case QualityUltra:
		return 8192
	}
	return 2048
}

// String returns the tier name.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	case QualityUltra:
		return "ultra"
	}
	return "unknown"
}
