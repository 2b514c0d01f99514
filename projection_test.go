package globe

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	p := NewProjection(2048, 2048)

	tests := []struct {
		name string
		geo  GeoPoint
		want Point
	}{
		{"origin", Geo(0, 0), Pt(1024, 1024)},
		{"date line north pole", Geo(180, 90), Pt(2048, 0)},
		{"antimeridian south pole", Geo(-180, -90), Pt(0, 2048)},
		{"greenwich equator east", Geo(90, 0), Pt(1536, 1024)},
		{"mid north", Geo(0, 45), Pt(1024, 512)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(tt.geo)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Project(%v) = %v, want %v", tt.geo, got, tt.want)
			}
		})
	}
}

func TestProjectAntimeridianFixup(t *testing.T) {
	p := NewProjection(2048, 2048)

	// Far-eastern landmass: west of -168.5 and north of 63.8 shifts a
	// full turn east, rendering past the right edge for contiguity.
	shifted := p.Project(Geo(-170, 70))
	wantX := (-170 + 360 + 180) * 2048.0 / 360
	if math.Abs(shifted.X-wantX) > 1e-9 {
		t.Errorf("fixup X = %v, want %v", shifted.X, wantX)
	}
	if shifted.X <= 2048 {
		t.Errorf("fixup X = %v, want beyond the right edge", shifted.X)
	}

	// Latitude at or below the threshold does not shift.
	plain := p.Project(Geo(-170, 60))
	wantX = (-170 + 180) * 2048.0 / 360
	if math.Abs(plain.X-wantX) > 1e-9 {
		t.Errorf("low-latitude X = %v, want %v", plain.X, wantX)
	}

	// Longitude at the threshold itself does not shift.
	edge := p.Project(Geo(-168.5, 70))
	wantX = (-168.5 + 180) * 2048.0 / 360
	if math.Abs(edge.X-wantX) > 1e-9 {
		t.Errorf("threshold X = %v, want %v", edge.X, wantX)
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	p := NewProjection(2048, 2048)

	points := []GeoPoint{
		Geo(0, 0),
		Geo(120.5, -33.25),
		Geo(-77, 38.9),
		Geo(179, -89),
		Geo(-168.5, 80), // at the fix-up longitude boundary, unshifted
	}

	for _, g := range points {
		back := p.Unproject(p.Project(g))
		if math.Abs(back.Lon-g.Lon) > 1e-9 || math.Abs(back.Lat-g.Lat) > 1e-9 {
			t.Errorf("Unproject(Project(%v)) = %v", g, back)
		}
	}
}

func TestUnprojectKeepsFixupBand(t *testing.T) {
	p := NewProjection(2048, 2048)

	// A fixed-up point unprojects to where it was drawn, past 180.
	back := p.Unproject(p.Project(Geo(-170, 70)))
	if math.Abs(back.Lon-190) > 1e-9 {
		t.Errorf("fixed-up point unprojects to lon %v, want 190", back.Lon)
	}
	if math.Abs(back.Lat-70) > 1e-9 {
		t.Errorf("fixed-up point unprojects to lat %v, want 70", back.Lat)
	}
}

func TestProjectionRectangular(t *testing.T) {
	// A non-square surface still spans the full angular range.
	p := NewProjection(2048, 1024)

	got := p.Project(Geo(0, 0))
	if got != Pt(1024, 512) {
		t.Errorf("Project(origin) = %v, want (1024, 512)", got)
	}
}

func TestNewProjectionClampsDimensions(t *testing.T) {
	p := NewProjection(0, -5)
	if p.Width() != 1 || p.Height() != 1 {
		t.Errorf("NewProjection(0, -5) = %dx%d, want 1x1", p.Width(), p.Height())
	}
}

func TestLabelWidthScale(t *testing.T) {
	if got := LabelWidthScale(0); math.Abs(got-1) > 1e-12 {
		t.Errorf("LabelWidthScale(0) = %v, want 1", got)
	}
	if got := LabelWidthScale(60); math.Abs(got-2) > 1e-9 {
		t.Errorf("LabelWidthScale(60) = %v, want 2", got)
	}
	// Symmetric about the equator.
	if LabelWidthScale(45) != LabelWidthScale(-45) {
		t.Error("LabelWidthScale should be symmetric in latitude")
	}
}

func TestLabelWidthScaleClampsNearPoles(t *testing.T) {
	capped := LabelWidthScale(89)
	for _, lat := range []float64{89.5, 90, 95, 1000} {
		got := LabelWidthScale(lat)
		if got != capped {
			t.Errorf("LabelWidthScale(%v) = %v, want clamp %v", lat, got, capped)
		}
		if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("LabelWidthScale(%v) = %v, want finite positive", lat, got)
		}
	}
	if LabelWidthScale(-90) != capped {
		t.Error("southern clamp should match northern clamp")
	}
}

func TestQualityTextureSize(t *testing.T) {
	tests := []struct {
		q    Quality
		want int
	}{
		{QualityLow, 1024},
		{QualityMedium, 2048},
		{QualityHigh, 4096},
		{QualityUltra, 8192},
		{Quality(99), 2048},
	}
	for _, tt := range tests {
		if got := tt.q.TextureSize(); got != tt.want {
			t.Errorf("%v.TextureSize() = %d, want %d", tt.q, got, tt.want)
		}
	}
}
