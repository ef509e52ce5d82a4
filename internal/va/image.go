package va

import (
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"
)

// imageByteSize returns the byte size of a plain NV12/P010 buffer of
// width x height: a full-resolution luma plane plus a half-resolution,
// 2-sample-per-pixel chroma plane, at one or two bytes per sample.
func imageByteSize(format session.PixelFormat, width, height int) int {
	bytesPerSample := 1
	if format == session.PixelFormatP010 {
		bytesPerSample = 2
	}
	luma := width * height
	chroma := (width * height) / 2
	return (luma + chroma) * bytesPerSample
}

// CreateImage allocates a standalone image buffer of the given format
// and dimensions, addressed through the same buffer table (and the
// same Map/Unmap/Destroy entry points) as picture/slice buffers.
func (d *Driver) CreateImage(format session.PixelFormat, width, height int) (uint32, error) {
	data := make([]byte, imageByteSize(format, width, height))
	return d.buffers.create(bufferObj{typ: BufferTypeImage, data: data, elements: 1}), nil
}

// DeriveImage returns an image buffer populated from surfaceID's
// current decoded contents. This driver has no zero-copy CPU mapping
// path into the kernel's CAPTURE buffers, so derive is implemented as
// an immediate GetImage-equivalent readback rather than a live alias;
// a later decode onto the same surface does not update a previously
// derived image.
func (d *Driver) DeriveImage(surfaceID uint32) (uint32, error) {
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return 0, err
	}
	imgID, err := d.CreateImage(surf.Format, surf.Width, surf.Height)
	if err != nil {
		return 0, err
	}
	if err := d.GetImage(surfaceID, imgID); err != nil {
		d.buffers.destroy(imgID)
		return 0, err
	}
	return imgID, nil
}

// GetImage copies surfaceID's decoded pixel data into the existing
// image buffer bufferID.
func (d *Driver) GetImage(surfaceID, bufferID uint32) error {
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return err
	}
	b, ok := d.buffers.get(bufferID)
	if !ok || b.typ != BufferTypeImage {
		return ErrInvalidBuffer
	}
	dst, ok := b.data.([]byte)
	if !ok {
		return fmt.Errorf("%w: image buffer %d has non-[]byte payload", ErrOperationFailed, bufferID)
	}

	sess := surf.Session()
	if sess == nil {
		return fmt.Errorf("%w: surface %d has never been decoded into", ErrOperationFailed, surfaceID)
	}
	if err := sess.ReadbackNV12(surf, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	return nil
}
