// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	types "github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Upload errors.
var (
	// ErrNilDevice is returned when an uploader is created without a device.
	ErrNilDevice = errors.New("render: nil device")

	// ErrIncompatibleDevice is returned when a device handle does not carry
	// a wgpu hal device.
	ErrIncompatibleDevice = errors.New("render: device handle does not provide a wgpu hal device")

	// ErrUnsupportedFormat is returned for texture formats uploads cannot carry.
	ErrUnsupportedFormat = errors.New("render: unsupported texture format")

	// ErrUnknownTexture is returned when a texture id is not tracked.
	ErrUnknownTexture = errors.New("render: unknown texture")
)

// TextureID identifies an uploaded texture.
type TextureID uint64

// InvalidTexture is the zero TextureID, never assigned to a texture.
const InvalidTexture TextureID = 0

// uploadedTexture pairs the device texture with the metadata writes need.
type uploadedTexture struct {
	texture hal.Texture
	width   uint32
	height  uint32
	bpp     uint32
}

// Uploader creates device textures and writes composited pixels to them.
//
// The compositor uses it to push the surface texture and vector-field
// rasters to the GPU the sphere renderer draws with. The uploader tracks
// per-texture dimensions so writes always carry a correct data layout.
//
// Uploader is safe for concurrent use.
type Uploader struct {
	device hal.Device
	queue  hal.Queue

	mu       sync.Mutex
	nextID   TextureID
	textures map[TextureID]uploadedTexture
}

// NewUploader creates an uploader over the host's device and queue.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	return &Uploader{
		device:   device,
		queue:    queue,
		nextID:   InvalidTexture,
		textures: make(map[TextureID]uploadedTexture),
	}, nil
}

// NewUploaderFromHandle creates an uploader from a host device handle.
// The handle's device and queue must be wgpu hal implementations; hosts
// built on other GPU stacks get ErrIncompatibleDevice.
func NewUploaderFromHandle(handle DeviceHandle) (*Uploader, error) {
	if handle == nil || handle.Device() == nil || handle.Queue() == nil {
		return nil, ErrNilDevice
	}
	device, ok := handle.Device().(hal.Device)
	if !ok {
		return nil, ErrIncompatibleDevice
	}
	queue, ok := handle.Queue().(hal.Queue)
	if !ok {
		return nil, ErrIncompatibleDevice
	}
	return NewUploader(device, queue)
}

// Upload creates a texture and writes the initial pixel data to it.
// pix must hold width*height pixels in the given format, tightly packed.
func (u *Uploader) Upload(label string, width, height int, format gputypes.TextureFormat, pix []byte) (TextureID, error) {
	if width <= 0 || height <= 0 {
		return InvalidTexture, fmt.Errorf("render: texture dimensions must be positive, got %dx%d", width, height)
	}
	halFormat, bpp, err := convertFormat(format)
	if err != nil {
		return InvalidTexture, err
	}

	desc := &hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        halFormat,
		Usage:         types.TextureUsageCopyDst | types.TextureUsageTextureBinding,
	}

	texture, err := u.device.CreateTexture(desc)
	if err != nil {
		return InvalidTexture, fmt.Errorf("render: create texture: %w", err)
	}

	u.mu.Lock()
	u.nextID++
	id := u.nextID
	u.textures[id] = uploadedTexture{
		texture: texture,
		width:   uint32(width),
		height:  uint32(height),
		bpp:     bpp,
	}
	u.mu.Unlock()

	if err := u.Write(id, pix); err != nil {
		u.Destroy(id)
		return InvalidTexture, err
	}
	return id, nil
}

// Write replaces the texture's pixel data.
// pix must match the dimensions and format given at Upload.
func (u *Uploader) Write(id TextureID, pix []byte) error {
	u.mu.Lock()
	t, ok := u.textures[id]
	u.mu.Unlock()
	if !ok {
		return ErrUnknownTexture
	}

	want := int(t.width) * int(t.height) * int(t.bpp)
	if len(pix) < want {
		return fmt.Errorf("render: short pixel data: have %d bytes, want %d", len(pix), want)
	}

	dst := &hal.ImageCopyTexture{
		Texture:  t.texture,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   types.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  t.width * t.bpp,
		RowsPerImage: t.height,
	}
	size := &hal.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	u.queue.WriteTexture(dst, pix[:want], layout, size)
	return nil
}

// WriteTarget uploads a CPU-accessible render target's pixels.
func (u *Uploader) WriteTarget(id TextureID, target RenderTarget) error {
	pix := target.Pixels()
	if pix == nil {
		return fmt.Errorf("render: target has no CPU pixels")
	}
	return u.Write(id, pix)
}

// Destroy releases the texture. Unknown ids are ignored.
func (u *Uploader) Destroy(id TextureID) {
	u.mu.Lock()
	t, ok := u.textures[id]
	if ok {
		delete(u.textures, id)
	}
	u.mu.Unlock()

	if ok {
		u.device.DestroyTexture(t.texture)
	}
}

// Close releases every texture the uploader still tracks.
func (u *Uploader) Close() {
	u.mu.Lock()
	textures := u.textures
	u.textures = make(map[TextureID]uploadedTexture)
	u.mu.Unlock()

	for _, t := range textures {
		u.device.DestroyTexture(t.texture)
	}
}

// Len returns the number of live textures. Useful in tests and diagnostics.
func (u *Uploader) Len() int {
	u.mu.Lock()
	n := len(u.textures)
	u.mu.Unlock()
	return n
}

// convertFormat maps the gputypes format to the device format and its
// bytes per pixel. Composited surfaces are 8-bit RGBA or BGRA.
func convertFormat(format gputypes.TextureFormat) (types.TextureFormat, uint32, error) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm, 4, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return types.TextureFormatBGRA8Unorm, 4, nil
	default:
		return types.TextureFormatRGBA8Unorm, 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}
