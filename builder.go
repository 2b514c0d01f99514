package globe

import "github.com/gogpu/globe/label"

// ShapeBuilder turns regions and aggregated data into drawable
// texture-space shapes. It holds the pieces that stay fixed across a
// refresh: the projection, the name and anchor overlays, the legend
// mapper and the label measurer.
type ShapeBuilder struct {
	proj     Projection
	names    *NameMap
	anchors  *AnchorTable
	legend   ValueColorMapper
	measurer label.Measurer
}

// NewShapeBuilder creates a builder projecting onto the given texture.
// names, anchors, legend and measurer may each be nil.
func NewShapeBuilder(proj Projection, names *NameMap, anchors *AnchorTable, legend ValueColorMapper, measurer label.Measurer) *ShapeBuilder {
	return &ShapeBuilder{
		proj:     proj,
		names:    names,
		anchors:  anchors,
		legend:   legend,
		measurer: measurer,
	}
}

// Build produces one shape per region, in region input order. Regions
// without aggregate data carry the NoValue sentinel and resolve styling
// against the series-group settings only; regions with data resolve
// against the data point's overrides, then each contributing series.
func (b *ShapeBuilder) Build(mapType string, agg AggregateMap, regions []Region, seriesList []Series, group []Settings) []TextureShape {
	bySeries := make(map[int]Settings, len(seriesList))
	for _, s := range seriesList {
		bySeries[s.Index] = s.Settings
	}

	shapes := make([]TextureShape, 0, len(regions))
	for _, region := range regions {
		name := b.names.Resolve(region.Name)

		dp, hasData := agg.Lookup(mapType, name)
		value := NoValue
		var sources []Settings
		if hasData {
			value = dp.Value
			hasData = dp.HasValue
			sources = make([]Settings, 0, 1+len(dp.SeriesIndices))
			sources = append(sources, dp.Settings)
			for _, idx := range dp.SeriesIndices {
				sources = append(sources, bySeries[idx])
			}
		} else {
			sources = group
		}

		styles := ResolveStyleSet(sources, value, hasData, b.legend)

		shape := TextureShape{
			Name:      name,
			Rings:     make([][]Point, 0, len(region.Rings)),
			Bounds:    EmptyRect(),
			Value:     value,
			HasData:   hasData,
			Style:     styles.Region,
			Highlight: styles.RegionHighlight,
		}
		for _, ring := range region.Rings {
			pts := make([]Point, len(ring))
			for i, g := range ring {
				pts[i] = b.proj.Project(g)
				shape.Bounds = shape.Bounds.UnionPoint(pts[i])
			}
			shape.Rings = append(shape.Rings, pts)
		}

		shape.Label = b.buildLabel(name, region, shape.Bounds, styles)
		shapes = append(shapes, shape)
	}
	return shapes
}

// buildLabel computes the label primitive for a region. Anchor
// preference: an explicit geographic override, then the region's own
// anchor, then the control point plus the region's fixed offset, then the
// center of the projected bounds.
func (b *ShapeBuilder) buildLabel(name string, region Region, bounds Rect, styles StyleSet) LabelPrimitive {
	var anchor Point
	var lat float64
	if at, ok := b.anchors.Lookup(name); ok {
		anchor, lat = b.proj.Project(at), at.Lat
	} else if region.LabelAnchor != nil {
		anchor, lat = b.proj.Project(*region.LabelAnchor), region.LabelAnchor.Lat
	} else if region.HasCenter {
		anchor, lat = b.proj.Project(region.Center), region.Center.Lat
		if region.LabelOffset != nil {
			anchor = anchor.Add(*region.LabelOffset)
		}
	} else {
		anchor = bounds.Center()
		lat = b.proj.Unproject(anchor).Lat
	}

	prim := LabelPrimitive{
		Text:       name,
		Anchor:     anchor,
		WidthScale: LabelWidthScale(lat),
		Direction:  label.BaseDirection(name),
		Style:      styles.Label,
		Highlight:  styles.LabelHighlight,
	}
	if b.measurer != nil {
		ext, err := b.measurer.Measure(name, styles.Label.FontSize)
		if err != nil {
			Logger().Warn("globe: label measurement failed", "name", name, "error", err)
		} else {
			prim.Extents = ext
		}
	}
	return prim
}
