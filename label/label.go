// Package label measures region display names so texture shapes can
// carry ready-to-place label primitives. Measurement happens in flat
// texture space; the projected width scale that keeps labels readable
// near the poles is applied by the shape builder, not here.
//
// Two measurers are provided. BuiltinMeasurer sums per-rune advances
// with golang.org/x/image/font and is the zero-configuration default.
// ShapedMeasurer runs full HarfBuzz shaping via go-text/typesetting and
// should be preferred for scripts where ligatures or contextual forms
// change the run width.
package label

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrBadFont is returned when font data cannot be parsed.
var ErrBadFont = errors.New("label: bad font")

// Extents are the measured pixel extents of a text run at a given size.
// Ascent and Descent are both positive distances from the baseline.
type Extents struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns the total vertical extent of the run.
func (e Extents) Height() float64 {
	return e.Ascent + e.Descent
}

// Measurer measures a text run at a font size in points.
// Implementations must be safe for concurrent use.
type Measurer interface {
	Measure(text string, size float64) (Extents, error)
}

// Face is a parsed font ready for measurement.
// Face is safe for concurrent use.
type Face struct {
	font *sfnt.Font
}

// ParseFace parses TTF or OTF font data.
func ParseFace(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	return &Face{font: f}, nil
}

// BuiltinMeasurer measures text by summing per-rune glyph advances.
// It ignores kerning and shaping, which is accurate enough for the
// short Latin-script names most region tables carry.
type BuiltinMeasurer struct {
	face *Face
}

// NewBuiltinMeasurer creates a measurer over a parsed face.
func NewBuiltinMeasurer(face *Face) *BuiltinMeasurer {
	return &BuiltinMeasurer{face: face}
}

var (
	defaultOnce sync.Once
	defaultFace *Face
	defaultErr  error
)

// DefaultMeasurer returns a measurer backed by the embedded Go Regular
// face. The face parses lazily on first use and is shared by all
// callers.
func DefaultMeasurer() (*BuiltinMeasurer, error) {
	defaultOnce.Do(func() {
		defaultFace, defaultErr = ParseFace(goregular.TTF)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return &BuiltinMeasurer{face: defaultFace}, nil
}

// Measure implements Measurer. Empty text yields zero extents.
func (m *BuiltinMeasurer) Measure(text string, size float64) (Extents, error) {
	if size <= 0 {
		return Extents{}, fmt.Errorf("label: measure: nonpositive size %v", size)
	}
	if text == "" {
		return Extents{}, nil
	}

	ppem := fixed.Int26_6(size * 64)
	var buf sfnt.Buffer

	metrics, err := m.face.font.Metrics(&buf, ppem, font.HintingFull)
	if err != nil {
		return Extents{}, fmt.Errorf("label: metrics: %w", err)
	}

	var width fixed.Int26_6
	for _, r := range text {
		gid, err := m.face.font.GlyphIndex(&buf, r)
		if err != nil {
			return Extents{}, fmt.Errorf("label: glyph index %q: %w", r, err)
		}
		adv, err := m.face.font.GlyphAdvance(&buf, gid, ppem, font.HintingFull)
		if err != nil {
			return Extents{}, fmt.Errorf("label: glyph advance %q: %w", r, err)
		}
		width += adv
	}

	descent := fixedToFloat(metrics.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Extents{
		Width:   fixedToFloat(width),
		Ascent:  fixedToFloat(metrics.Ascent),
		Descent: descent,
	}, nil
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string, size float64) (Extents, error)

// Measure implements Measurer.
func (f MeasurerFunc) Measure(text string, size float64) (Extents, error) {
	return f(text, size)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
