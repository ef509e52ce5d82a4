package va

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"

// Driver is the root of the upper-edge VA surface: it owns the four
// object tables (config, context, surface, buffer) that VA addresses
// by opaque handle, and is the receiver every VTable entry point binds
// to.
type Driver struct {
	configs  *objectTable[Config]
	contexts *objectTable[contextObj]
	surfaces *objectTable[surfaceObj]
	buffers  *objectTable[bufferObj]
}

// NewDriver returns a Driver with empty object tables. Each CreateContext
// call opens its own M2M device node, so NewDriver itself touches no
// kernel state.
func NewDriver() *Driver {
	return &Driver{
		configs:  newObjectTable[Config](),
		contexts: newObjectTable[contextObj](),
		surfaces: newObjectTable[surfaceObj](),
		buffers:  newObjectTable[bufferObj](),
	}
}

// surfaceByID resolves a VA surface handle to its session.Surface, or
// ErrInvalidSurface.
func (d *Driver) surfaceByID(id uint32) (*session.Surface, error) {
	s, ok := d.surfaces.get(id)
	if !ok {
		return nil, ErrInvalidSurface
	}
	return s.surf, nil
}
