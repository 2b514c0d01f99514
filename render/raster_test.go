// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// encodePNG encodes an image for decode tests.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestNewRaster(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 16, 8, 16, 8},
		{"zero", 0, 0, 0, 0},
		{"negative clamps", -4, -2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRaster(tt.width, tt.height)

			if r.Width() != tt.wantW || r.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", r.Width(), r.Height(), tt.wantW, tt.wantH)
			}
			if r.Stride() != tt.wantW*4 {
				t.Errorf("Stride() = %d, want %d", r.Stride(), tt.wantW*4)
			}
			if len(r.Pix()) != tt.wantW*tt.wantH*4 {
				t.Errorf("len(Pix()) = %d, want %d", len(r.Pix()), tt.wantW*tt.wantH*4)
			}
		})
	}
}

func TestRasterSetAt(t *testing.T) {
	r := NewRaster(4, 4)

	r.Set(1, 2, 10, 20, 30, 40)
	if red, green, blue, alpha := r.At(1, 2); red != 10 || green != 20 || blue != 30 || alpha != 40 {
		t.Errorf("At(1, 2) = (%d, %d, %d, %d), want (10, 20, 30, 40)", red, green, blue, alpha)
	}

	// Out-of-range reads return zeros, writes are ignored.
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		r.Set(p[0], p[1], 255, 255, 255, 255)
		if red, green, blue, alpha := r.At(p[0], p[1]); red != 0 || green != 0 || blue != 0 || alpha != 0 {
			t.Errorf("At(%d, %d) = (%d, %d, %d, %d), want zeros", p[0], p[1], red, green, blue, alpha)
		}
	}
}

func TestRasterPixShared(t *testing.T) {
	r := NewRaster(2, 1)

	pix := r.Pix()
	pix[0] = 200

	if red, _, _, _ := r.At(0, 0); red != 200 {
		t.Errorf("At(0, 0) red = %d after writing Pix(), want 200", red)
	}
}

func TestDecodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 1, color.NRGBA{0, 0, 255, 128})

	r, err := Decode(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if r.Width() != 3 || r.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", r.Width(), r.Height())
	}
	if red, green, blue, alpha := r.At(0, 0); red != 255 || green != 0 || blue != 0 || alpha != 255 {
		t.Errorf("At(0, 0) = (%d, %d, %d, %d), want (255, 0, 0, 255)", red, green, blue, alpha)
	}
	if red, green, blue, alpha := r.At(2, 1); red != 0 || green != 0 || blue != 255 || alpha != 128 {
		t.Errorf("At(2, 1) = (%d, %d, %d, %d), want (0, 0, 255, 128)", red, green, blue, alpha)
	}
}

func TestDecodeJPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode() error = %v", err)
	}

	r, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", r.Width(), r.Height())
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := Decode([]byte{}); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(empty) error = %v, want ErrEmptyData", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("Decode(garbage) error = nil, want decode error")
	}
}

func TestDecodeReader(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{0, 255, 0, 255})

	r, err := DecodeReader(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("DecodeReader() error = %v", err)
	}
	if _, green, _, _ := r.At(1, 1); green != 255 {
		t.Errorf("At(1, 1) green = %d, want 255", green)
	}
}

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 1, color.NRGBA{1, 2, 3, 4})

	r := FromImage(img)

	if red, green, blue, alpha := r.At(0, 1); red != 1 || green != 2 || blue != 3 || alpha != 4 {
		t.Errorf("At(0, 1) = (%d, %d, %d, %d), want (1, 2, 3, 4)", red, green, blue, alpha)
	}

	// The pixels are copied, not shared.
	img.SetNRGBA(0, 1, color.NRGBA{9, 9, 9, 9})
	if red, _, _, _ := r.At(0, 1); red != 1 {
		t.Errorf("At(0, 1) red = %d after mutating the source image, want 1", red)
	}
}

func TestFromImageUnpremultiplies(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	// Premultiplied half-alpha red and a fully transparent pixel.
	img.SetRGBA(0, 0, color.RGBA{64, 0, 0, 128})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 0, 0})

	r := FromImage(img)

	if red, green, blue, alpha := r.At(0, 0); red != 127 || green != 0 || blue != 0 || alpha != 128 {
		t.Errorf("At(0, 0) = (%d, %d, %d, %d), want (127, 0, 0, 128)", red, green, blue, alpha)
	}
	if red, _, _, alpha := r.At(1, 0); red != 0 || alpha != 0 {
		t.Errorf("At(1, 0) = red %d alpha %d, want zeros", red, alpha)
	}
}

func TestToImageRoundTrip(t *testing.T) {
	r := NewRaster(3, 2)
	r.Set(0, 0, 255, 0, 0, 255)
	r.Set(2, 1, 0, 0, 255, 128)

	img := r.ToImage()

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 3x2", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("NRGBAAt(0, 0) = %v, want opaque red", got)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{0, 0, 255, 128}) {
		t.Errorf("NRGBAAt(2, 1) = %v, want half-alpha blue", got)
	}

	// ToImage copies; later raster writes must not show through.
	r.Set(0, 0, 0, 255, 0, 255)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("NRGBAAt(0, 0) = %v after mutating the raster, want opaque red", got)
	}
}
