// Command globedemo composites a small world dataset into a sphere
// surface texture and saves it as a PNG.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/globe"
	"github.com/gogpu/globe/field"
)

// worldGeoJSON is a deliberately coarse world map: a handful of regions
// as simple boxes, plus one multi-part island group.
const worldGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Brazil"},
      "geometry": {"type": "Polygon", "coordinates": [[
        [-70, -30], [-40, -30], [-40, 0], [-70, 0], [-70, -30]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "India"},
      "geometry": {"type": "Polygon", "coordinates": [[
        [70, 8], [88, 8], [88, 30], [70, 30], [70, 8]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Australia"},
      "geometry": {"type": "Polygon", "coordinates": [[
        [115, -35], [150, -35], [150, -12], [115, -12], [115, -35]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Egypt"},
      "geometry": {"type": "Polygon", "coordinates": [[
        [25, 22], [35, 22], [35, 31], [25, 31], [25, 22]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"name": "Japan"},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[130, 31], [132, 31], [132, 34], [130, 34], [130, 31]]],
        [[[136, 35], [141, 35], [141, 41], [136, 41], [136, 35]]]
      ]}
    }
  ]
}`

func main() {
	var (
		size   = flag.Int("size", 1024, "surface texture size in pixels")
		output = flag.String("output", "globe.png", "output file")
	)
	flag.Parse()

	comp := globe.NewCompositor(
		globe.WithTextureSize(*size, *size),
		globe.WithGeoSource(globe.GeoSourceFunc(func(context.Context, string) ([]byte, error) {
			return []byte(worldGeoJSON), nil
		})),
		globe.WithLegend(globe.ValueColorFunc(heat)),
	)
	defer comp.Dispose()

	comp.AddLayer(globe.Layer{
		ID:    "wind",
		Kind:  globe.LayerParticles,
		Field: tradeWinds(),
		Z:     1,
	})

	composite, err := comp.Refresh(context.Background(), sampleSeries(), nil)
	if err != nil {
		log.Fatalf("Refresh failed: %v", err)
	}

	renderer := globe.NewSoftwareRenderer(*size, *size)
	renderer.SetBackground(globe.RGB(0.07, 0.11, 0.25))
	comp.Apply(renderer, composite)

	for _, layer := range composite.Layers {
		if !layer.HasSpec {
			continue
		}
		spec := layer.Spec
		log.Printf("layer %q: %d particles (grid %d), size %.2f, blur %.2f",
			layer.Layer.ID, spec.EffectiveParticles(), spec.GridSide,
			spec.ParticleSize, spec.MotionBlurFactor)
	}

	if err := savePNG(*output, renderer); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Surface saved to %s (%dx%d, %d shapes)\n",
		*output, *size, *size, len(composite.Shapes))
}

// sampleSeries builds two series over the same map: population in
// millions and exports in billions. Their values sum per region.
func sampleSeries() []globe.Series {
	return []globe.Series{
		{
			Index:   0,
			Name:    "population",
			Type:    globe.ChartType,
			MapType: "world",
			Data: []globe.DataEntry{
				{Name: "Brazil", Value: 216},
				{Name: "India", Value: 1428},
				{Name: "Australia", Value: 26},
				{Name: "Egypt", Value: 112},
				{Name: "Japan", Value: 124},
			},
		},
		{
			Index:   1,
			Name:    "exports",
			Type:    globe.ChartType,
			MapType: "world",
			Data: []globe.DataEntry{
				{Name: "Brazil", Value: 334},
				{Name: "India", Value: 453},
				{Name: "Australia", Value: 371},
				{Name: "Japan", Value: 747},
			},
		},
	}
}

// heat maps aggregate values onto a cold-to-warm gradient.
func heat(value float64) globe.RGBA {
	t := math.Min(value/2000, 1)
	return globe.RGB(0.2+0.7*t, 0.4-0.1*t, 0.8-0.6*t)
}

// tradeWinds builds a coarse directional grid: easterlies in the tropics,
// westerlies in the mid-latitude bands.
func tradeWinds() *field.Field {
	const rows, cols = 8, 16
	samples := make([][][]float64, rows)
	for y := range samples {
		row := make([][]float64, cols)
		lat := 90 - (float64(y)+0.5)*180/rows
		u := 1.0
		if math.Abs(lat) < 30 {
			u = -1.0
		}
		for x := range row {
			row[x] = []float64{u, 0}
		}
		samples[y] = row
	}

	f, err := field.FromSamples(samples)
	if err != nil {
		log.Fatalf("Failed to build wind field: %v", err)
	}
	return f
}

func savePNG(path string, renderer *globe.SoftwareRenderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, renderer.Target().Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
