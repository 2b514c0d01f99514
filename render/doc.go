// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render holds the compositor's rendering collaborators: raster
// resources, CPU render targets, and the GPU texture upload path.
//
// # Key Principle
//
// The compositor RECEIVES a GPU device from the host application, it does
// NOT create its own. The sphere renderer owns the device; this package
// only stages surface pixels in CPU targets and uploads them as textures.
//
// # Core Types
//
//   - Raster: a decoded raster resource (background, height map, field image)
//   - RasterLoader: fetches raster resources by source identifier
//   - RenderTarget / PixmapTarget: where composited surface pixels go
//   - LayeredTarget / LayeredPixmapTarget: z-ordered texture-space layers
//   - DeviceHandle: GPU device access provided by the host application
//   - Uploader: creates device textures and writes composited pixels
//
// # Usage
//
// CPU compositing into a layered target:
//
//	target := render.NewLayeredPixmapTarget(2048, 2048)
//	overlay, _ := target.CreateLayer(1)
//
//	// ... paint the base and the overlay ...
//
//	target.Composite()
//	img := target.Image()
//
// Uploading the result to the host's GPU:
//
//	uploader, err := render.NewUploaderFromHandle(app.DeviceHandle())
//	if err != nil {
//	    // host is not wgpu-backed; keep the CPU pixmap
//	}
//	id, err := uploader.Upload("surface", target.Width(), target.Height(),
//	    target.Format(), target.Pixels())
//
//	// later frames reuse the texture
//	err = uploader.WriteTarget(id, target)
//
// # Thread Safety
//
// Targets are NOT safe for concurrent use. The Uploader is; load
// completions and frame writes may arrive on different goroutines.
package render
