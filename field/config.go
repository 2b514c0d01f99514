package field

import (
	"math"

	types "github.com/gogpu/gputypes"
)

// Reference surface width that particle sizes are calibrated against.
const referenceSurfaceWidth = 1024

// Defaults applied by Config.Resolve for zero-valued fields.
const (
	DefaultParticleCount    = 65536
	DefaultSpeedScale       = 1.0
	DefaultSizeScale        = 1.0
	DefaultMotionBlurFactor = 0.99
	DefaultSurfaceWidth     = 2048
	DefaultSurfaceHeight    = 1024
)

// Config carries raw particle-layer configuration. Zero values resolve
// to defaults, so a zero Config is usable as-is.
type Config struct {
	// ParticleCount is the requested particle budget. The engine runs
	// GridSide^2 particles, the nearest square at or near the budget.
	ParticleCount int

	// SpeedScale multiplies sampled field velocities.
	SpeedScale float64

	// SizeScale multiplies the base particle point size. The resolved
	// size also grows with the surface width so particles keep their
	// apparent size across quality tiers.
	SizeScale float64

	// Color is the particle tint. A zero color resolves to opaque
	// white.
	Color types.Color

	// MotionBlurFactor is the frame-to-frame trail retention in
	// [0, 1). Values at or above 1 clamp just below 1 so trails decay.
	MotionBlurFactor float64

	// SurfaceWidth and SurfaceHeight set the offscreen surface the
	// particles draw into.
	SurfaceWidth  int
	SurfaceHeight int
}

// Spec is a fully resolved particle-layer parameterization, handed by
// value to the external advection engine together with the field.
type Spec struct {
	ParticleCount    int
	GridSide         int
	SpeedScale       float64
	ParticleSize     float64
	Color            types.Color
	MotionBlurFactor float64
	SurfaceWidth     int
	SurfaceHeight    int
	SurfaceFormat    types.TextureFormat
	Field            *Field
}

// EffectiveParticles returns the particle count the engine actually
// runs, GridSide squared.
func (s Spec) EffectiveParticles() int {
	return s.GridSide * s.GridSide
}

// Resolve applies defaults and derives engine parameters. The field
// must be a validated grid; nil is rejected with ErrEmptyField.
func (c Config) Resolve(f *Field) (Spec, error) {
	if f == nil {
		return Spec{}, ErrEmptyField
	}

	count := c.ParticleCount
	if count <= 0 {
		count = DefaultParticleCount
	}
	speed := c.SpeedScale
	if speed <= 0 {
		speed = DefaultSpeedScale
	}
	size := c.SizeScale
	if size <= 0 {
		size = DefaultSizeScale
	}
	blur := c.MotionBlurFactor
	if blur <= 0 {
		blur = DefaultMotionBlurFactor
	}
	if blur >= 1 {
		blur = math.Nextafter(1, 0)
	}
	width := c.SurfaceWidth
	if width <= 0 {
		width = DefaultSurfaceWidth
	}
	height := c.SurfaceHeight
	if height <= 0 {
		height = DefaultSurfaceHeight
	}
	color := c.Color
	if color == (types.Color{}) {
		color = types.Color{R: 1, G: 1, B: 1, A: 1}
	}

	side := int(math.Round(math.Sqrt(float64(count))))
	if side < 1 {
		side = 1
	}

	return Spec{
		ParticleCount:    count,
		GridSide:         side,
		SpeedScale:       speed,
		ParticleSize:     size * float64(width) / referenceSurfaceWidth,
		Color:            color,
		MotionBlurFactor: blur,
		SurfaceWidth:     width,
		SurfaceHeight:    height,
		SurfaceFormat:    types.TextureFormatRGBA8Unorm,
		Field:            f,
	}, nil
}
