// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// RasterLoader fetches and decodes a raster resource by its source
// identifier. Implementations may hit the network or disk; the compositor
// calls Load from its own goroutines and deduplicates concurrent loads of
// the same source, so implementations need no request coalescing.
type RasterLoader interface {
	Load(ctx context.Context, src string) (*Raster, error)
}

// LoaderFunc adapts a function to the RasterLoader interface.
type LoaderFunc func(ctx context.Context, src string) (*Raster, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, src string) (*Raster, error) {
	return f(ctx, src)
}

// FileLoader loads rasters from the filesystem, resolving sources
// relative to Root when Root is non-empty.
type FileLoader struct {
	Root string
}

// Load reads and decodes the raster at the source path.
func (l FileLoader) Load(ctx context.Context, src string) (*Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := src
	if l.Root != "" {
		path = filepath.Join(l.Root, src)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("render: read raster: %w", err)
	}
	return Decode(data)
}
