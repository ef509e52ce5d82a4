package va

import (
	"context"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"
)

// VTable is the full set of VA driver entry points a libva-compatible
// C shim dispatches into. Every field is populated — the dispatcher on
// the C side rejects a null slot — but only the entry points named in
// NewVTable's doc comment carry real logic; the rest return
// ErrUnimplemented.
type VTable struct {
	CreateConfig  func(profile m2m.Profile, entrypoint Entrypoint, attrs []Attribute) (uint32, error)
	DestroyConfig func(id uint32) error

	CreateContext  func(configID uint32, width, height int) (uint32, error)
	DestroyContext func(id uint32) error

	CreateSurfaces               func(width, height, count int) ([]uint32, error)
	CreateSurfacesWithAttributes func(width, height, count int, attrs []Attribute) ([]uint32, error)
	DestroySurfaces              func(ids []uint32) error

	CreateBuffer  func(typ BufferType, data any, elements int) uint32
	MapBuffer     func(id uint32) (any, error)
	UnmapBuffer   func(id uint32) error
	DestroyBuffer func(id uint32) error

	BeginPicture  func(contextID, surfaceID uint32) error
	RenderPicture func(contextID uint32, bufferIDs []uint32) error
	EndPicture    func(ctx context.Context, contextID uint32) error

	SyncSurface        func(ctx context.Context, contextID, surfaceID uint32) error
	QuerySurfaceStatus func(surfaceID uint32) (SurfaceStatus, error)

	CreateImage func(format session.PixelFormat, width, height int) (uint32, error)
	DeriveImage func(surfaceID uint32) (uint32, error)
	GetImage    func(surfaceID, bufferID uint32) error

	ExportSurfaceHandle func(surfaceID uint32) (int, error)

	// Everything below returns ErrUnimplemented. Present so the C-side
	// dispatcher never finds a null slot.
	CreateSubpicture    func(imageID uint32) (uint32, error)
	DestroySubpicture   func(id uint32) error
	SetSubpictureImage  func(subpictureID, imageID uint32) error
	AssociateSubpicture func(subpictureID uint32, surfaceIDs []uint32) error
	DeassociateSubpicture func(subpictureID uint32, surfaceIDs []uint32) error

	QueryDisplayAttributes  func() ([]Attribute, error)
	GetDisplayAttributes    func(attrs []Attribute) error
	SetDisplayAttributes    func(attrs []Attribute) error

	BeginMultiFrame func(contextIDs []uint32) error
	EndMultiFrame   func(contextIDs []uint32) error

	QueryProcessingRate func(configID uint32) (uint32, error)

	PutSurface func(surfaceID uint32, destX, destY, destW, destH int) error
	PutImage   func(surfaceID, imageID uint32, srcX, srcY, srcW, srcH, destX, destY, destW, destH int) error

	LockSurface   func(surfaceID uint32) error
	UnlockSurface func(surfaceID uint32) error
}

// NewVTable binds d's genuinely-implemented entry points (config and
// context lifecycle; surface create/destroy; typed buffer
// create/map/unmap/destroy; BeginPicture/RenderPicture/EndPicture;
// SyncSurface/QuerySurfaceStatus; CreateImage/DeriveImage/GetImage;
// ExportSurfaceHandle) and fills every remaining slot with a stub that
// returns ErrUnimplemented, so the table is always complete.
func NewVTable(d *Driver) *VTable {
	return &VTable{
		CreateConfig:  d.CreateConfig,
		DestroyConfig: d.DestroyConfig,

		CreateContext:  d.CreateContext,
		DestroyContext: d.DestroyContext,

		CreateSurfaces:               d.CreateSurfaces,
		CreateSurfacesWithAttributes: d.CreateSurfacesWithAttributes,
		DestroySurfaces:              d.DestroySurfaces,

		CreateBuffer:  d.CreateBuffer,
		MapBuffer:     d.MapBuffer,
		UnmapBuffer:   d.UnmapBuffer,
		DestroyBuffer: d.DestroyBuffer,

		BeginPicture:  d.BeginPicture,
		RenderPicture: d.RenderPicture,
		EndPicture:    d.EndPicture,

		SyncSurface:        d.SyncSurface,
		QuerySurfaceStatus: d.QuerySurfaceStatus,

		CreateImage: d.CreateImage,
		DeriveImage: d.DeriveImage,
		GetImage:    d.GetImage,

		ExportSurfaceHandle: d.ExportSurfaceHandle,

		CreateSubpicture:      func(uint32) (uint32, error) { return 0, ErrUnimplemented },
		DestroySubpicture:     func(uint32) error { return ErrUnimplemented },
		SetSubpictureImage:    func(uint32, uint32) error { return ErrUnimplemented },
		AssociateSubpicture:   func(uint32, []uint32) error { return ErrUnimplemented },
		DeassociateSubpicture: func(uint32, []uint32) error { return ErrUnimplemented },

		QueryDisplayAttributes: func() ([]Attribute, error) { return nil, ErrUnimplemented },
		GetDisplayAttributes:   func([]Attribute) error { return ErrUnimplemented },
		SetDisplayAttributes:   func([]Attribute) error { return ErrUnimplemented },

		BeginMultiFrame: func([]uint32) error { return ErrUnimplemented },
		EndMultiFrame:   func([]uint32) error { return ErrUnimplemented },

		QueryProcessingRate: func(uint32) (uint32, error) { return 0, ErrUnimplemented },

		PutSurface: func(uint32, int, int, int, int) error { return ErrUnimplemented },
		PutImage:   func(uint32, uint32, int, int, int, int, int, int, int, int) error { return ErrUnimplemented },

		LockSurface:   func(uint32) error { return ErrUnimplemented },
		UnlockSurface: func(uint32) error { return ErrUnimplemented },
	}
}
