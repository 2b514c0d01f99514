package label

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedMeasurer measures text through full HarfBuzz shaping. Unlike
// BuiltinMeasurer it accounts for ligatures, kerning and contextual
// forms, so it gives correct widths for Arabic, Devanagari and other
// complex scripts.
//
// ShapedMeasurer is safe for concurrent use. The parsed font.Font is
// read-only; font.Face and shaping.HarfbuzzShaper are not
// concurrent-safe, so a Face is created per call and shapers are
// pooled.
type ShapedMeasurer struct {
	font    *font.Font
	shapers sync.Pool
}

// NewShapedMeasurer parses TTF or OTF font data into a shaping
// measurer.
func NewShapedMeasurer(data []byte) (*ShapedMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFont, err)
	}
	return &ShapedMeasurer{
		font: face.Font,
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Measure implements Measurer. Empty text yields zero extents.
func (m *ShapedMeasurer) Measure(text string, size float64) (Extents, error) {
	if size <= 0 {
		return Extents{}, fmt.Errorf("label: measure: nonpositive size %v", size)
	}
	if text == "" {
		return Extents{}, nil
	}

	runes := []rune(text)

	dir := di.DirectionLTR
	if BaseDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("und"),
	}

	shaper := m.shapers.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shapers.Put(shaper)

	var width float64
	for _, g := range output.Glyphs {
		width += fixedToFloat(g.Advance)
	}

	descent := fixedToFloat(output.LineBounds.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Extents{
		Width:   width,
		Ascent:  fixedToFloat(output.LineBounds.Ascent),
		Descent: descent,
	}, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
