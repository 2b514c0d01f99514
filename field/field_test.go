package field

import (
	"errors"
	"math"
	"testing"
)

func TestFromSamples(t *testing.T) {
	grid := [][][]float64{
		{{0, 0}, {0.5, -0.5}},
		{{-1, 1}, {1, -1}},
	}

	f, err := FromSamples(grid)
	if err != nil {
		t.Fatalf("FromSamples error: %v", err)
	}
	if f.Width() != 2 || f.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", f.Width(), f.Height())
	}

	u, v := f.At(1, 0)
	if u != 0.5 || v != -0.5 {
		t.Errorf("At(1,0) = (%v, %v), want (0.5, -0.5)", u, v)
	}
	u, v = f.At(0, 1)
	if u != -1 || v != 1 {
		t.Errorf("At(0,1) = (%v, %v), want (-1, 1)", u, v)
	}
}

func TestFromSamplesValidation(t *testing.T) {
	tests := []struct {
		name    string
		grid    [][][]float64
		wantErr error
	}{
		{"nil grid", nil, ErrEmptyField},
		{"no rows", [][][]float64{}, ErrEmptyField},
		{"empty row", [][][]float64{{}}, ErrEmptyField},
		{"ragged", [][][]float64{{{0, 0}, {0, 0}}, {{0, 0}}}, ErrRaggedField},
		{"cell too short", [][][]float64{{{0}}}, ErrBadCell},
		{"cell too long", [][][]float64{{{0, 0, 0}}}, ErrBadCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSamples(tt.grid)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromSamples() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAtClamps(t *testing.T) {
	f := NewField(2, 2)
	f.Set(0, 0, 0.25, 0.75)
	f.Set(1, 1, -0.25, -0.75)

	u, v := f.At(-5, -5)
	if u != 0.25 || v != 0.75 {
		t.Errorf("At(-5,-5) = (%v, %v), want clamp to (0.25, 0.75)", u, v)
	}
	u, v = f.At(10, 10)
	if u != -0.25 || v != -0.75 {
		t.Errorf("At(10,10) = (%v, %v), want clamp to (-0.25, -0.75)", u, v)
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	f := NewField(2, 2)
	f.Set(-1, 0, 9, 9)
	f.Set(0, 5, 9, 9)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if u, v := f.At(x, y); u != 0 || v != 0 {
				t.Errorf("At(%d,%d) = (%v, %v), want zeros", x, y, u, v)
			}
		}
	}
}

func TestBilinearInterpolates(t *testing.T) {
	f := NewField(2, 1)
	f.Set(0, 0, 0, 0)
	f.Set(1, 0, 1, -1)

	// Cell centers are at fx=0.25 and fx=0.75; midway blends evenly.
	u, v := f.Bilinear(0.5, 0.5)
	if math.Abs(u-0.5) > 1e-9 || math.Abs(v+0.5) > 1e-9 {
		t.Errorf("Bilinear(0.5, 0.5) = (%v, %v), want (0.5, -0.5)", u, v)
	}
}

func TestBilinearWrapsHorizontally(t *testing.T) {
	f := NewField(4, 1)
	f.Set(0, 0, 1, 0)
	f.Set(3, 0, -1, 0)

	// fx=0 sits halfway between the last and first cell centers, so the
	// wrapped blend averages them.
	u, _ := f.Bilinear(0, 0.5)
	if math.Abs(u) > 1e-9 {
		t.Errorf("Bilinear(0, 0.5) u = %v, want 0 from wrap blend", u)
	}
}

func TestBilinearClampsVertically(t *testing.T) {
	f := NewField(1, 2)
	f.Set(0, 0, 0.5, 0.5)
	f.Set(0, 1, -0.5, -0.5)

	u, v := f.Bilinear(0.5, 0)
	if u != 0.5 || v != 0.5 {
		t.Errorf("Bilinear(0.5, 0) = (%v, %v), want top row (0.5, 0.5)", u, v)
	}
	u, v = f.Bilinear(0.5, 1)
	if u != -0.5 || v != -0.5 {
		t.Errorf("Bilinear(0.5, 1) = (%v, %v), want bottom row (-0.5, -0.5)", u, v)
	}
}

func TestMaxMagnitude(t *testing.T) {
	f := NewField(2, 2)
	f.Set(0, 0, 0.3, 0.4)
	f.Set(1, 1, -0.6, -0.8)

	if got := f.MaxMagnitude(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("MaxMagnitude() = %v, want 1.0", got)
	}
}

func TestRasterRoundTrip(t *testing.T) {
	f := NewField(16, 8)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			u := 2*float64(x)/float64(f.Width()-1) - 1
			v := 2*float64(y)/float64(f.Height()-1) - 1
			f.Set(x, y, u, v)
		}
	}

	decoded, err := DecodeRaster(EncodeRaster(f))
	if err != nil {
		t.Fatalf("DecodeRaster error: %v", err)
	}
	if decoded.Width() != f.Width() || decoded.Height() != f.Height() {
		t.Fatalf("round-trip dimensions = %dx%d, want %dx%d",
			decoded.Width(), decoded.Height(), f.Width(), f.Height())
	}

	const tolerance = 1.0 / 128
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			wantU, wantV := f.At(x, y)
			gotU, gotV := decoded.At(x, y)
			if math.Abs(gotU-wantU) > tolerance {
				t.Errorf("u at (%d,%d) = %v, want %v within %v", x, y, gotU, wantU, tolerance)
			}
			if math.Abs(gotV-wantV) > tolerance {
				t.Errorf("v at (%d,%d) = %v, want %v within %v", x, y, gotV, wantV, tolerance)
			}
		}
	}
}

func TestEncodeRasterClamps(t *testing.T) {
	f := NewField(1, 1)
	f.Set(0, 0, 5, -5)

	r := EncodeRaster(f)
	red, green, blue, alpha := r.At(0, 0)
	if red != 255 {
		t.Errorf("red = %d, want clamp to 255", red)
	}
	if green != 0 {
		t.Errorf("green = %d, want clamp to 0", green)
	}
	if blue != 0 || alpha != 255 {
		t.Errorf("(blue, alpha) = (%d, %d), want (0, 255)", blue, alpha)
	}
}

func TestDecodeRasterEmpty(t *testing.T) {
	if _, err := DecodeRaster(nil); !errors.Is(err, ErrEmptyField) {
		t.Errorf("DecodeRaster(nil) error = %v, want %v", err, ErrEmptyField)
	}
}
