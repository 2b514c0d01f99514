// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPixmapTarget(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small", 100, 100},
		{"surface", 2048, 2048},
		{"wide", 1000, 100},
		{"tall", 100, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewPixmapTarget(tt.width, tt.height)

			if target.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", target.Width(), tt.width)
			}
			if target.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", target.Height(), tt.height)
			}
			if target.Format() != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
			}
			if target.TextureView() != nil {
				t.Error("TextureView() should be nil for CPU target")
			}
			if target.Pixels() == nil {
				t.Error("Pixels() should not be nil for CPU target")
			}
			if target.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", target.Stride(), tt.width*4)
			}
		})
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	img.SetRGBA(50, 50, color.RGBA{255, 0, 0, 255})

	target := NewPixmapTargetFromImage(img)

	if target.Width() != 200 {
		t.Errorf("Width() = %d, want 200", target.Width())
	}
	if target.Height() != 150 {
		t.Errorf("Height() = %d, want 150", target.Height())
	}

	pixel := target.GetPixel(50, 50).(color.RGBA)
	if pixel != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("GetPixel(50, 50) = %v, want red", pixel)
	}

	// The image is wrapped, not copied.
	img.SetRGBA(10, 10, color.RGBA{0, 255, 0, 255})
	pixel = target.GetPixel(10, 10).(color.RGBA)
	if pixel.G != 255 {
		t.Error("target should share memory with the wrapped image")
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(10, 10)

	target.Clear(color.RGBA{0, 0, 255, 255})

	for y := range 10 {
		for x := range 10 {
			pixel := target.GetPixel(x, y).(color.RGBA)
			if pixel != (color.RGBA{0, 0, 255, 255}) {
				t.Fatalf("pixel at (%d, %d) = %v, want blue", x, y, pixel)
			}
		}
	}
}

func TestPixmapTargetSetGetPixel(t *testing.T) {
	target := NewPixmapTarget(100, 100)

	tests := []struct {
		x, y int
		c    color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{99, 99, color.RGBA{0, 255, 0, 255}},
		{50, 50, color.RGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		target.SetPixel(tt.x, tt.y, tt.c)
		got := target.GetPixel(tt.x, tt.y).(color.RGBA)

		if got != tt.c {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.c)
		}
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(100, 100)
	target.SetPixel(50, 50, color.RGBA{255, 0, 0, 255})

	target.Resize(200, 150)

	if target.Width() != 200 {
		t.Errorf("Width() = %d, want 200", target.Width())
	}
	if target.Height() != 150 {
		t.Errorf("Height() = %d, want 150", target.Height())
	}

	// Contents are not preserved across a resize.
	pixel := target.GetPixel(50, 50).(color.RGBA)
	if pixel.A != 0 {
		t.Errorf("pixel after resize = %v, want transparent", pixel)
	}
}

func TestPixmapTargetImage(t *testing.T) {
	target := NewPixmapTarget(100, 100)
	target.Clear(color.White)

	img := target.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("Image bounds = %v, want 100x100", img.Bounds())
	}

	// Modify through the image, verify through the target.
	img.SetRGBA(10, 10, color.RGBA{255, 0, 0, 255})
	pixel := target.GetPixel(10, 10).(color.RGBA)
	if pixel.R != 255 {
		t.Error("Image and target should share memory")
	}
}
