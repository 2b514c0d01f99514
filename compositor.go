package globe

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/globe/cache"
	"github.com/gogpu/globe/field"
	"github.com/gogpu/globe/label"
	"github.com/gogpu/globe/render"
)

// Compositor errors.
var (
	// ErrDisposed is returned by operations on a disposed compositor.
	ErrDisposed = errors.New("globe: compositor disposed")

	// ErrNoRegions is returned when a map type has no usable geometry.
	ErrNoRegions = errors.New("globe: no regions for map type")
)

// LayerKind selects how an overlay layer above the surface is produced.
type LayerKind int

const (
	// LayerTexture drapes a raster resource at the layer distance.
	LayerTexture LayerKind = iota

	// LayerParticles runs the vector-field particle overlay.
	LayerParticles
)

// String returns the kind name.
func (k LayerKind) String() string {
	switch k {
	case LayerTexture:
		return "texture"
	case LayerParticles:
		return "particles"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// Layer describes one overlay stacked above the sphere surface.
// Texture layers name a raster Source; particle layers carry either a
// Field directly or a Source whose raster decodes into one.
type Layer struct {
	ID       string
	Kind     LayerKind
	Distance float64 // offset above the surface in world units
	Source   string
	Field    *field.Field
	Config   field.Config
	Z        int
}

// LayerOutput pairs a layer with its resolved payload for one refresh.
// Raster stays nil and HasSpec stays false while the layer's resources
// are still loading; a later refresh picks them up.
type LayerOutput struct {
	Layer   Layer
	Raster  *render.Raster
	Spec    field.Spec
	HasSpec bool
}

// Composite is the drawable result of one refresh pass: region shapes
// in deterministic order, resolved overlay layers, and the optional
// background and height resources once their loads have landed.
type Composite struct {
	Shapes     []TextureShape
	Layers     []LayerOutput
	Background *render.Raster
	Height     *HeightField
}

// Compositor drives the surface pipeline: it aggregates series data,
// projects region geometry, resolves styling into texture-space shapes,
// and parameterizes overlay layers. It owns the raster resource cache
// and the per-map-type geometry memo.
//
// All methods are safe for concurrent use. Resource loads complete on
// background goroutines and announce themselves through the
// refresh-needed callback; completions after Dispose are discarded.
type Compositor struct {
	mu       sync.Mutex
	disposed bool

	proj     Projection
	geo      GeoSource
	res      *resourceSet
	names    *NameMap
	anchors  *AnchorTable
	legend   ValueColorMapper
	measurer label.Measurer

	baseTexture string
	heightMap   string
	layers      []Layer

	regions map[string][]Region
}

// NewCompositor creates a compositor. With no options it projects onto
// a QualityMedium square texture, measures labels with the embedded Go
// Regular face, and has no geometry source or raster loader configured.
func NewCompositor(opts ...CompositorOption) *Compositor {
	cfg := defaultCompositorOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	measurer := cfg.measurer
	if measurer == nil {
		m, err := label.DefaultMeasurer()
		if err != nil {
			Logger().Warn("globe: built-in label face unavailable", "error", err)
		} else {
			measurer = m
		}
	}

	c := &Compositor{
		proj:        cfg.proj,
		geo:         cfg.geo,
		names:       cfg.names,
		anchors:     cfg.anchors,
		legend:      cfg.legend,
		measurer:    measurer,
		baseTexture: cfg.baseTexture,
		heightMap:   cfg.heightMap,
		layers:      cfg.layers,
		regions:     make(map[string][]Region),
	}
	c.res = newResourceSet(cfg.loader, cfg.cacheCapacity, cfg.onRefreshNeeded)
	return c
}

// Projection returns the texture projection in use.
func (c *Compositor) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proj
}

// CacheStats reports resource cache counters.
func (c *Compositor) CacheStats() cache.Stats {
	return c.res.stats()
}

// AddLayer appends an overlay layer. Layers composite in ascending Z;
// equal Z keeps insertion order.
func (c *Compositor) AddLayer(l Layer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.layers = append(c.layers, l)
}

// RemoveLayer removes the first layer with the given ID and reports
// whether one was found.
func (c *Compositor) RemoveLayer(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.layers {
		if l.ID == id {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Regions returns the decoded geometry for a map type, fetching and
// memoizing it on first use. ErrNoRegions is returned when no source is
// configured or the source yields no usable regions.
func (c *Compositor) Regions(ctx context.Context, mapType string) ([]Region, error) {
	if c.isDisposed() {
		return nil, ErrDisposed
	}
	return c.regionsFor(ctx, mapType)
}

func (c *Compositor) regionsFor(ctx context.Context, mapType string) ([]Region, error) {
	c.mu.Lock()
	if cached, ok := c.regions[mapType]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	geo := c.geo
	c.mu.Unlock()

	if geo == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRegions, mapType)
	}
	data, err := geo.GetGeoJSON(ctx, mapType)
	if err != nil {
		return nil, fmt.Errorf("globe: fetch geometry for %q: %w", mapType, err)
	}
	regions, err := DecodeGeoJSON(data)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoRegions, mapType)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return nil, ErrDisposed
	}
	if cached, ok := c.regions[mapType]; ok {
		return cached, nil
	}
	c.regions[mapType] = regions
	return regions, nil
}

// Refresh runs one full composite pass over the series list. Map types
// appear in first-series order; regions keep geometry order. Map types
// whose geometry is unavailable are skipped with a warning so the rest
// of the surface still renders. Resources not yet loaded are absent
// from the composite and arrive via the refresh-needed callback.
func (c *Compositor) Refresh(ctx context.Context, seriesList []Series, selected Selection) (*Composite, error) {
	if c.isDisposed() {
		return nil, ErrDisposed
	}

	c.mu.Lock()
	proj := c.proj
	names := c.names
	anchors := c.anchors
	legend := c.legend
	measurer := c.measurer
	baseTexture := c.baseTexture
	heightMap := c.heightMap
	layers := make([]Layer, len(c.layers))
	copy(layers, c.layers)
	c.mu.Unlock()

	agg := Aggregate(seriesList, selected, names)
	builder := NewShapeBuilder(proj, names, anchors, legend, measurer)

	comp := &Composite{}
	for _, mapType := range mapTypeOrder(seriesList) {
		regions, err := c.regionsFor(ctx, mapType)
		if err != nil {
			if errors.Is(err, ErrDisposed) {
				return nil, err
			}
			Logger().Warn("globe: skipping map type", "mapType", mapType, "error", err)
			continue
		}
		group := groupSettings(seriesList, mapType)
		comp.Shapes = append(comp.Shapes, builder.Build(mapType, agg, regions, seriesList, group)...)
	}

	if baseTexture != "" {
		comp.Background, _ = c.res.request(ctx, baseTexture)
	}
	if heightMap != "" {
		if raster, ok := c.res.request(ctx, heightMap); ok {
			comp.Height = NewHeightField(raster)
		}
	}
	comp.Layers = c.resolveLayers(ctx, layers)

	if c.isDisposed() {
		return nil, ErrDisposed
	}
	Logger().Debug("globe: refresh complete",
		"shapes", len(comp.Shapes), "layers", len(comp.Layers))
	return comp, nil
}

// resolveLayers produces layer outputs in ascending Z. Malformed
// particle fields drop their layer with a warning; pending rasters
// leave the output payload empty.
func (c *Compositor) resolveLayers(ctx context.Context, layers []Layer) []LayerOutput {
	ordered := make([]Layer, len(layers))
	copy(ordered, layers)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	outputs := make([]LayerOutput, 0, len(ordered))
	for _, l := range ordered {
		out := LayerOutput{Layer: l}
		switch l.Kind {
		case LayerTexture:
			out.Raster, _ = c.res.request(ctx, l.Source)

		case LayerParticles:
			f := l.Field
			if f == nil && l.Source != "" {
				raster, ok := c.res.request(ctx, l.Source)
				if ok {
					decoded, err := field.DecodeRaster(raster)
					if err != nil {
						Logger().Warn("globe: dropping particle layer",
							"layer", l.ID, "error", err)
						continue
					}
					f = decoded
				}
			}
			if f != nil {
				spec, err := l.Config.Resolve(f)
				if err != nil {
					Logger().Warn("globe: dropping particle layer",
						"layer", l.ID, "error", err)
					continue
				}
				out.Spec = spec
				out.HasSpec = true
			}

		default:
			Logger().Warn("globe: dropping layer of unknown kind",
				"layer", l.ID, "kind", int(l.Kind))
			continue
		}
		outputs = append(outputs, out)
	}
	return outputs
}

// Apply pushes a composite's shapes into a surface renderer and
// refreshes it. Shapes get ascending z in composite order.
func (c *Compositor) Apply(r SurfaceRenderer, comp *Composite) {
	r.ClearElements()
	for i, shape := range comp.Shapes {
		r.AddElement(Element{Z: i, Shape: shape})
	}
	r.Refresh()
}

// Dispose tears the compositor down. Pending resource completions are
// discarded and every later operation returns ErrDisposed. Dispose is
// idempotent.
func (c *Compositor) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.regions = nil
	c.mu.Unlock()

	c.res.dispose()
	Logger().Info("globe: compositor disposed")
}

func (c *Compositor) isDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// mapTypeOrder returns the distinct map types of globe-typed series in
// first-appearance order.
func mapTypeOrder(seriesList []Series) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, s := range seriesList {
		if s.Type != ChartType || s.MapType == "" {
			continue
		}
		if _, ok := seen[s.MapType]; ok {
			continue
		}
		seen[s.MapType] = struct{}{}
		order = append(order, s.MapType)
	}
	return order
}

// groupSettings collects the settings of every globe series on a map
// type, in series order, as the no-data styling fallback chain.
func groupSettings(seriesList []Series, mapType string) []Settings {
	var group []Settings
	for _, s := range seriesList {
		if s.Type == ChartType && s.MapType == mapType {
			group = append(group, s.Settings)
		}
	}
	return group
}
