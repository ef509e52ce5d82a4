package va

import "github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"

// Attribute is a generic VAConfigAttrib/VASurfaceAttrib-style
// (type, value) pair. This driver does not interpret attribute
// contents beyond carrying them on the object; callers that need a
// specific attribute (e.g. a pixel-format override on surface
// creation) look it up by Type.
type Attribute struct {
	Type  uint32
	Value uint32
}

// Config declares a profile + entrypoint + attribute list at creation
// time; it is immutable thereafter.
type Config struct {
	Profile    m2m.Profile
	Entrypoint Entrypoint
	Attributes []Attribute
}

// CreateConfig validates the profile/entrypoint combination and stores
// a new Config, following the "unsupported profile/entrypoint
// rejected at config creation" error rule.
func (d *Driver) CreateConfig(profile m2m.Profile, entrypoint Entrypoint, attrs []Attribute) (uint32, error) {
	if entrypoint != EntrypointVLD {
		return 0, ErrUnsupportedEntrypoint
	}
	if _, ok := codecKindForProfile(profile); !ok {
		return 0, ErrUnsupportedProfile
	}
	cfg := Config{
		Profile:    profile,
		Entrypoint: entrypoint,
		Attributes: append([]Attribute(nil), attrs...),
	}
	return d.configs.create(cfg), nil
}

// DestroyConfig removes a config. Unknown ids leave no state mutated.
func (d *Driver) DestroyConfig(id uint32) error {
	if _, ok := d.configs.get(id); !ok {
		return ErrInvalidConfig
	}
	d.configs.destroy(id)
	return nil
}
