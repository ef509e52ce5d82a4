package va

import (
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"
)

// contextObj is a VA context, which this driver treats as equivalent
// to a session.Session bound to one kernel decoder device.
type contextObj struct {
	sess     *session.Session
	configID uint32
	width    int
	height   int
}

// CreateContext opens a fresh M2M device and a session for configID's
// codec, sized to width x height.
func (d *Driver) CreateContext(configID uint32, width, height int) (uint32, error) {
	cfg, ok := d.configs.get(configID)
	if !ok {
		return 0, ErrInvalidConfig
	}
	kind, ok := codecKindForProfile(cfg.Profile)
	if !ok {
		return 0, ErrUnsupportedProfile
	}

	dev, err := OpenDevice()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	sess, err := session.New(dev, kind, width, height)
	if err != nil {
		dev.Close()
		return 0, fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}

	return d.contexts.create(contextObj{sess: sess, configID: configID, width: width, height: height}), nil
}

// DestroyContext closes the underlying session, which stops both
// kernel streams and releases every mapping.
func (d *Driver) DestroyContext(id uint32) error {
	ctx, ok := d.contexts.get(id)
	if !ok {
		return ErrInvalidContext
	}
	d.contexts.destroy(id)
	if err := ctx.sess.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	return nil
}

func (d *Driver) sessionByID(id uint32) (*session.Session, error) {
	ctx, ok := d.contexts.get(id)
	if !ok {
		return nil, ErrInvalidContext
	}
	return ctx.sess, nil
}
