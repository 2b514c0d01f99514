package globe

import (
	"context"
	"encoding/json"
	"fmt"
)

// GeoSource supplies region boundary data per map type, typically from a
// registered asset or a network fetch. Implementations may block; the
// compositor calls it once per map type and memoizes the decoded regions.
type GeoSource interface {
	GetGeoJSON(ctx context.Context, mapType string) ([]byte, error)
}

// GeoSourceFunc adapts a function to the GeoSource interface.
type GeoSourceFunc func(ctx context.Context, mapType string) ([]byte, error)

// GetGeoJSON calls f.
func (f GeoSourceFunc) GetGeoJSON(ctx context.Context, mapType string) ([]byte, error) {
	return f(ctx, mapType)
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string    `json:"type"`
	Properties props     `json:"properties"`
	Geometry   *geometry `json:"geometry"`
}

type props struct {
	Name string    `json:"name"`
	CP   []float64 `json:"cp"`
}

// geometry defers coordinate decoding until the type is known: the shape
// of the coordinates array differs per geometry type.
type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometries  []geometry      `json:"geometries"`
}

// DecodeGeoJSON parses a feature collection into regions. Feature
// properties carry the region name and an optional control point ("cp",
// [lon, lat]); geometries may be Polygon, MultiPolygon or a
// GeometryCollection of those. Features with no name or an unsupported
// geometry are skipped, not fatal; only malformed JSON fails the decode.
func DecodeGeoJSON(data []byte) ([]Region, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("globe: decode geojson: %w", err)
	}

	regions := make([]Region, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Properties.Name == "" {
			Logger().Warn("globe: skipping unnamed feature")
			continue
		}
		if f.Geometry == nil {
			Logger().Warn("globe: skipping feature without geometry", "name", f.Properties.Name)
			continue
		}
		rings := geometryRings(f.Geometry, f.Properties.Name)
		if len(rings) == 0 {
			continue
		}
		r := Region{Name: f.Properties.Name, Rings: rings}
		if len(f.Properties.CP) >= 2 {
			r.Center = GeoPoint{Lon: f.Properties.CP[0], Lat: f.Properties.CP[1]}
			r.HasCenter = true
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// geometryRings extracts every polygon ring from a geometry, recursing
// into geometry collections. Unsupported types and malformed coordinate
// arrays skip the unit rather than failing the feature.
func geometryRings(g *geometry, name string) []Ring {
	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			Logger().Warn("globe: bad polygon coordinates", "name", name, "error", err)
			return nil
		}
		return polygonRings(coords)

	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			Logger().Warn("globe: bad multipolygon coordinates", "name", name, "error", err)
			return nil
		}
		var rings []Ring
		for _, poly := range coords {
			rings = append(rings, polygonRings(poly)...)
		}
		return rings

	case "GeometryCollection":
		var rings []Ring
		for i := range g.Geometries {
			rings = append(rings, geometryRings(&g.Geometries[i], name)...)
		}
		return rings
	}

	Logger().Warn("globe: unsupported geometry type", "name", name, "type", g.Type)
	return nil
}

// polygonRings converts one polygon's coordinate arrays to rings.
// Positions are [lon, lat]; rings with fewer than three points carry no
// area and are dropped.
func polygonRings(coords [][][]float64) []Ring {
	rings := make([]Ring, 0, len(coords))
	for _, rc := range coords {
		if len(rc) < 3 {
			continue
		}
		ring := make(Ring, 0, len(rc))
		for _, pos := range rc {
			if len(pos) < 2 {
				continue
			}
			ring = append(ring, GeoPoint{Lon: pos[0], Lat: pos[1]})
		}
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}
	return rings
}
