package globe

import (
	"github.com/gogpu/globe/cache"
	"github.com/gogpu/globe/label"
	"github.com/gogpu/globe/render"
)

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	// Default: 2048x2048 texture, no geometry source
//	c := globe.NewCompositor()
//
//	// Full wiring
//	c := globe.NewCompositor(
//		globe.WithQuality(globe.QualityHigh),
//		globe.WithGeoSource(source),
//		globe.WithLoader(render.FileLoader{Root: "assets"}),
//	)
type CompositorOption func(*compositorOptions)

// compositorOptions holds optional configuration for Compositor
// creation.
type compositorOptions struct {
	proj            Projection
	geo             GeoSource
	loader          render.RasterLoader
	names           *NameMap
	anchors         *AnchorTable
	legend          ValueColorMapper
	measurer        label.Measurer
	baseTexture     string
	heightMap       string
	layers          []Layer
	cacheCapacity   int
	onRefreshNeeded func()
}

func defaultCompositorOptions() compositorOptions {
	size := QualityMedium.TextureSize()
	return compositorOptions{
		proj:          NewProjection(size, size),
		cacheCapacity: cache.DefaultCapacity,
	}
}

// WithQuality sets the surface texture to the square size of a quality
// tier.
func WithQuality(q Quality) CompositorOption {
	return func(o *compositorOptions) {
		size := q.TextureSize()
		o.proj = NewProjection(size, size)
	}
}

// WithTextureSize sets an explicit surface texture size, overriding the
// quality tier.
func WithTextureSize(width, height int) CompositorOption {
	return func(o *compositorOptions) {
		o.proj = NewProjection(width, height)
	}
}

// WithGeoSource sets the per-map-type geometry source.
func WithGeoSource(src GeoSource) CompositorOption {
	return func(o *compositorOptions) {
		o.geo = src
	}
}

// WithLoader sets the raster loader behind the resource cache. Without
// one, background, height map and layer rasters stay absent.
func WithLoader(l render.RasterLoader) CompositorOption {
	return func(o *compositorOptions) {
		o.loader = l
	}
}

// WithCacheCapacity sets the resource cache capacity. Values below 1
// keep the default.
func WithCacheCapacity(n int) CompositorOption {
	return func(o *compositorOptions) {
		if n >= 1 {
			o.cacheCapacity = n
		}
	}
}

// WithNameMap sets the region display-name remap table.
func WithNameMap(m *NameMap) CompositorOption {
	return func(o *compositorOptions) {
		o.names = m
	}
}

// WithAnchors sets explicit label anchor overrides.
func WithAnchors(t *AnchorTable) CompositorOption {
	return func(o *compositorOptions) {
		o.anchors = t
	}
}

// WithLegend sets a value-to-color mapper that overrides resolved fill
// colors for regions carrying data.
func WithLegend(m ValueColorMapper) CompositorOption {
	return func(o *compositorOptions) {
		o.legend = m
	}
}

// WithMeasurer sets the label measurer. The default is the embedded Go
// Regular face; pass a label.ShapedMeasurer for complex scripts.
func WithMeasurer(m label.Measurer) CompositorOption {
	return func(o *compositorOptions) {
		o.measurer = m
	}
}

// WithBaseTexture names the raster drawn beneath the region shapes.
func WithBaseTexture(source string) CompositorOption {
	return func(o *compositorOptions) {
		o.baseTexture = source
	}
}

// WithHeightMap names the raster sampled for vertex displacement.
func WithHeightMap(source string) CompositorOption {
	return func(o *compositorOptions) {
		o.heightMap = source
	}
}

// WithLayer appends an overlay layer at creation time.
func WithLayer(l Layer) CompositorOption {
	return func(o *compositorOptions) {
		o.layers = append(o.layers, l)
	}
}

// OnRefreshNeeded registers the callback fired when an asynchronous
// resource load lands, signaling that the surface should be
// recomposited. The callback runs on the loader goroutine.
func OnRefreshNeeded(fn func()) CompositorOption {
	return func(o *compositorOptions) {
		o.onRefreshNeeded = fn
	}
}
