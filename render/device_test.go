// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if got := handle.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want TextureFormatUndefined", got)
	}
}

func TestDeviceHandleAlias(t *testing.T) {
	// The alias keeps handles interchangeable with the gpucontext ecosystem.
	// If this compiles, the types are compatible.
	var provider gpucontext.DeviceProvider = NullDeviceHandle{}
	if provider.Device() != nil {
		t.Error("provider.Device() should return nil for the null handle")
	}

	var handle DeviceHandle = provider
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("alias round-trip changed the handle")
	}
}

func TestDefaultTextureDescriptor(t *testing.T) {
	desc := DefaultTextureDescriptor(2048, 1024, gputypes.TextureFormatRGBA8Unorm)

	if desc.Width != 2048 || desc.Height != 1024 {
		t.Errorf("descriptor size = %dx%d, want 2048x1024", desc.Width, desc.Height)
	}
	if desc.Depth != 1 {
		t.Errorf("Depth = %d, want 1", desc.Depth)
	}
	if desc.MipLevelCount != 1 {
		t.Errorf("MipLevelCount = %d, want 1", desc.MipLevelCount)
	}
	if desc.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", desc.SampleCount)
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want TextureFormatRGBA8Unorm", desc.Format)
	}
	if desc.Usage&TextureUsageCopyDst == 0 {
		t.Error("Usage should include TextureUsageCopyDst for uploads")
	}
	if desc.Usage&TextureUsageTextureBinding == 0 {
		t.Error("Usage should include TextureUsageTextureBinding for sampling")
	}
}

func TestTextureUsageFlags(t *testing.T) {
	flags := []TextureUsage{
		TextureUsageCopySrc,
		TextureUsageCopyDst,
		TextureUsageTextureBinding,
		TextureUsageStorageBinding,
		TextureUsageRenderAttachment,
	}

	var seen TextureUsage
	for i, f := range flags {
		if f == 0 {
			t.Errorf("flag %d is zero", i)
		}
		if seen&f != 0 {
			t.Errorf("flag %d overlaps earlier flags", i)
		}
		seen |= f
	}
}
