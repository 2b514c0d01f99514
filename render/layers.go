// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/gogpu/gputypes"
)

// LayeredTarget stacks z-ordered texture-space layers over a base: the
// painted region surface below, blend layers (vector-field trails, height
// tints) above. Layers composite in ascending z-order; lower z values sit
// behind higher ones.
type LayeredTarget interface {
	RenderTarget

	// CreateLayer creates a new layer at the specified z-order.
	// Returns an error if a layer with the same z-order already exists.
	CreateLayer(z int) (RenderTarget, error)

	// RemoveLayer removes a layer by z-order.
	// Returns an error if the layer does not exist.
	RemoveLayer(z int) error

	// SetLayerVisible controls layer visibility without removing it.
	// Invisible layers are not composited but retain their content.
	SetLayerVisible(z int, visible bool)

	// Layers returns all layer z-orders in render order (ascending).
	Layers() []int

	// Composite blends all visible layers onto the base target.
	// Call after drawing to layers is complete.
	Composite()
}

// layer is a single compositing layer.
type layer struct {
	img     *image.RGBA
	visible bool
	opacity float64
}

// LayeredPixmapTarget is the CPU-backed LayeredTarget. Each layer is an
// *image.RGBA composited onto the base with source-over blending scaled
// by the layer's opacity.
type LayeredPixmapTarget struct {
	base   *image.RGBA
	layers map[int]*layer
	zOrder []int // cached ascending z-orders, nil when stale
	width  int
	height int
}

// NewLayeredPixmapTarget creates a new layered CPU render target.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   image.NewRGBA(image.Rect(0, 0, width, height)),
		layers: make(map[int]*layer),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *LayeredPixmapTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *LayeredPixmapTarget) Height() int {
	return t.height
}

// Format returns the pixel format (RGBA8).
func (t *LayeredPixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *LayeredPixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns the base layer pixel data. Call Composite first to read
// the blended result.
func (t *LayeredPixmapTarget) Pixels() []byte {
	return t.base.Pix
}

// Stride returns the number of bytes per row.
func (t *LayeredPixmapTarget) Stride() int {
	return t.base.Stride
}

// Image returns the base layer image. Call Composite first to read the
// blended result.
func (t *LayeredPixmapTarget) Image() *image.RGBA {
	return t.base
}

// CreateLayer creates a new fully-opaque layer at the specified z-order.
func (t *LayeredPixmapTarget) CreateLayer(z int) (RenderTarget, error) {
	if _, exists := t.layers[z]; exists {
		return nil, fmt.Errorf("render: layer z=%d already exists", z)
	}

	l := &layer{
		img:     image.NewRGBA(image.Rect(0, 0, t.width, t.height)),
		visible: true,
		opacity: 1,
	}
	t.layers[z] = l
	t.zOrder = nil

	return NewPixmapTargetFromImage(l.img), nil
}

// RemoveLayer removes a layer by z-order.
func (t *LayeredPixmapTarget) RemoveLayer(z int) error {
	if _, exists := t.layers[z]; !exists {
		return fmt.Errorf("render: layer z=%d does not exist", z)
	}
	delete(t.layers, z)
	t.zOrder = nil
	return nil
}

// SetLayerVisible controls layer visibility.
func (t *LayeredPixmapTarget) SetLayerVisible(z int, visible bool) {
	if l, exists := t.layers[z]; exists {
		l.visible = visible
	}
}

// SetLayerOpacity scales a layer's contribution when compositing.
// Values are clamped to [0, 1]; a zero-opacity layer is skipped entirely.
func (t *LayeredPixmapTarget) SetLayerOpacity(z int, opacity float64) {
	l, exists := t.layers[z]
	if !exists {
		return
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	l.opacity = opacity
}

// Layers returns all layer z-orders in render order (ascending).
func (t *LayeredPixmapTarget) Layers() []int {
	if t.zOrder == nil {
		t.zOrder = make([]int, 0, len(t.layers))
		for z := range t.layers {
			t.zOrder = append(t.zOrder, z)
		}
		slices.Sort(t.zOrder)
	}
	result := make([]int, len(t.zOrder))
	copy(result, t.zOrder)
	return result
}

// Composite blends all visible layers onto the base target in z-order
// using source-over blending scaled by each layer's opacity.
func (t *LayeredPixmapTarget) Composite() {
	for _, z := range t.Layers() {
		l := t.layers[z]
		if !l.visible || l.opacity == 0 {
			continue
		}
		if l.opacity >= 1 {
			draw.Draw(t.base, t.base.Bounds(), l.img, image.Point{}, draw.Over)
			continue
		}
		mask := image.NewUniform(color.Alpha{A: uint8(l.opacity*255 + 0.5)})
		draw.DrawMask(t.base, t.base.Bounds(), l.img, image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// Clear fills the base layer with the given color.
// Does not affect other layers.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	draw.Draw(t.base, t.base.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// ClearLayer clears a specific layer to fully transparent.
// Returns an error if the layer does not exist.
func (t *LayeredPixmapTarget) ClearLayer(z int) error {
	l, exists := t.layers[z]
	if !exists {
		return fmt.Errorf("render: layer z=%d does not exist", z)
	}
	clear(l.img.Pix)
	return nil
}

// GetLayer returns the RenderTarget for a specific layer.
// Returns nil if the layer does not exist.
func (t *LayeredPixmapTarget) GetLayer(z int) RenderTarget {
	l, exists := t.layers[z]
	if !exists {
		return nil
	}
	return NewPixmapTargetFromImage(l.img)
}

// Ensure LayeredPixmapTarget implements both RenderTarget and LayeredTarget.
var (
	_ RenderTarget  = (*LayeredPixmapTarget)(nil)
	_ LayeredTarget = (*LayeredPixmapTarget)(nil)
)
