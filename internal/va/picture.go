package va

import (
	"context"
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

// BeginPicture marks surfaceID as the render target for the picture
// that follows on contextID.
func (d *Driver) BeginPicture(contextID, surfaceID uint32) error {
	sess, err := d.sessionByID(contextID)
	if err != nil {
		return err
	}
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return err
	}
	return sess.BeginPicture(surf)
}

// RenderPicture absorbs one vaRenderPicture call's buffers: at most one
// picture-parameter buffer updates the codec's header cache, and every
// slice-data buffer is latched for EndPicture's assembly pass. The
// session only updates its header cache alongside a slice append, so a
// call that supplies picture parameters with no slice-data buffers
// returns without applying them; they are not carried forward to a
// later call.
func (d *Driver) RenderPicture(contextID uint32, bufferIDs []uint32) error {
	sess, err := d.sessionByID(contextID)
	if err != nil {
		return err
	}

	var pp any
	var slices []codec.SliceUnit
	for _, id := range bufferIDs {
		b, ok := d.buffers.get(id)
		if !ok {
			return ErrInvalidBuffer
		}
		switch b.typ {
		case BufferTypePictureParameter:
			pp = b.data
		case BufferTypeSliceData:
			data, ok := b.data.([]byte)
			if !ok {
				return fmt.Errorf("%w: slice-data buffer %d has non-[]byte payload", ErrOperationFailed, id)
			}
			slices = append(slices, codec.SliceUnit{Data: data})
		case BufferTypeSliceParameter:
			// Carried on the buffer table for completeness; this driver
			// derives everything it needs from the raw slice-data NAL.
		}
	}

	if len(slices) == 0 {
		return nil
	}
	for i, sl := range slices {
		var callPP any
		if i == 0 {
			callPP = pp
		}
		if err := sess.RenderPicture(callPP, sl); err != nil {
			return err
		}
	}
	return nil
}

// EndPicture assembles and submits the current picture. ctx bounds the
// input-buffer recycle wait and, on the session's first picture, the
// source-change handshake; the VA API itself has no cancellation
// concept, so vtable callers pass context.Background().
func (d *Driver) EndPicture(ctx context.Context, contextID uint32) error {
	sess, err := d.sessionByID(contextID)
	if err != nil {
		return err
	}
	return sess.EndPicture(ctx)
}

// SyncSurface blocks until surfaceID is decoded or the session's
// bounded wait elapses.
func (d *Driver) SyncSurface(ctx context.Context, contextID, surfaceID uint32) error {
	sess, err := d.sessionByID(contextID)
	if err != nil {
		return err
	}
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return err
	}
	return sess.SyncSurface(ctx, surf)
}

// SurfaceStatus mirrors VASurfaceStatus's two states this driver ever
// reports; it never reports "in displaying" or "skipped", since it has
// no display pipeline.
type SurfaceStatus int

const (
	SurfaceStatusReady SurfaceStatus = iota
	SurfaceStatusRendering
)

// QuerySurfaceStatus reports whether surfaceID currently holds decoded
// pixel data, without blocking.
func (d *Driver) QuerySurfaceStatus(surfaceID uint32) (SurfaceStatus, error) {
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return 0, err
	}
	if surf.IsDecoded() {
		return SurfaceStatusReady, nil
	}
	return SurfaceStatusRendering, nil
}
