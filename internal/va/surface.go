package va

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"

// surfaceObj wraps a session.Surface in the object table; the VA
// surface itself carries no driver-private state beyond what
// session.Surface already tracks.
type surfaceObj struct {
	surf *session.Surface
}

// AttrPixelFormat is the surface-attribute type this driver recognises
// on CreateSurfacesWithAttributes: an override of the default NV12
// pixel layout (used to request session.PixelFormatP010 for HEVC
// Main-10 / VP9 Profile2 output).
const AttrPixelFormat uint32 = 1

// CreateSurfaces allocates count NV12 surfaces of the given dimensions.
// This is the plain variant; see CreateSurfacesWithAttributes for the
// attribute-accepting one.
func (d *Driver) CreateSurfaces(width, height int, count int) ([]uint32, error) {
	return d.CreateSurfacesWithAttributes(width, height, count, nil)
}

// CreateSurfacesWithAttributes allocates count surfaces, honouring an
// AttrPixelFormat attribute if present (format.Value 1 selects P010,
// anything else NV12). The two entry points differ only in attribute
// handling, per the driver's surface-creation contract.
func (d *Driver) CreateSurfacesWithAttributes(width, height, count int, attrs []Attribute) ([]uint32, error) {
	format := session.PixelFormatNV12
	for _, a := range attrs {
		if a.Type == AttrPixelFormat && a.Value == 1 {
			format = session.PixelFormatP010
		}
	}

	ids := make([]uint32, count)
	for i := range ids {
		surf := session.NewSurface(width, height, format)
		ids[i] = d.surfaces.create(surfaceObj{surf: surf})
	}
	return ids, nil
}

// DestroySurfaces removes every id from the surface table. Unknown ids
// are skipped rather than erroring, matching a destroy call that may
// race a session's own teardown.
func (d *Driver) DestroySurfaces(ids []uint32) error {
	for _, id := range ids {
		d.surfaces.destroy(id)
	}
	return nil
}
