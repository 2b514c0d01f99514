// Package globe composites statistical data onto an equirectangular surface
// texture for an interactive 3D globe.
//
// # Overview
//
// globe sits between a charting data model and a sphere renderer. It takes
// per-region data series, aggregates them, resolves their visual
// configuration, projects region outlines from polar coordinates into
// texture space, and hands the resulting shape list to a renderer that
// paints the surface texture wrapped around the globe. It also parameterizes
// animated vector-field layers, loads and caches raster resources, and
// computes the rotation and zoom that bring a region into view.
//
// # Quick Start
//
//	comp := globe.NewCompositor(
//	    globe.WithGeoSource(geo),
//	    globe.WithQuality(globe.QualityMedium),
//	)
//	defer comp.Dispose()
//
//	// Recomposite after data or selection changes.
//	composite, err := comp.Refresh(ctx, series, selected)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	comp.Apply(renderer, composite)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Compositor, Projection, Region, TextureShape, Focus,
//     and the SurfaceRenderer/OrbitController collaborator interfaces
//   - render/: pixmap and layered targets, raster decode, GPU upload
//   - field/: vector-field grids and particle layer configuration
//   - label/: label measurement and base direction
//   - cache/: the LRU used for raster resources
//
// # Coordinate Systems
//
// Polar coordinates are degrees: longitude in [-180, 180] increasing east,
// latitude in [-90, 90] increasing north. Texture space has its origin at
// the top-left of the equirectangular surface, X increasing right and Y
// increasing down. Sphere space is right-handed with +Y up.
//
// # Concurrency
//
// Compositor methods synchronize internally: Dispose may be called from
// any goroutine, and resource load completions arrive on loader goroutines
// and re-enter through the same lock. Renderers and targets are not safe
// for concurrent use.
package globe

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
