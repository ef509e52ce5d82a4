package va

import (
	"errors"
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/m2m"
)

func TestCreateConfigRejectsUnsupportedEntrypoint(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	_, err := d.CreateConfig(m2m.ProfileH264Main, Entrypoint(99), nil)
	if !errors.Is(err, ErrUnsupportedEntrypoint) {
		t.Fatalf("got %v, want ErrUnsupportedEntrypoint", err)
	}
}

func TestCreateConfigAcceptsKnownProfile(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id, err := d.CreateConfig(m2m.ProfileHEVCMain10, EntrypointVLD, []Attribute{{Type: AttrPixelFormat, Value: 1}})
	if err != nil {
		t.Fatalf("CreateConfig: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero config id")
	}
}

func TestDestroyConfigRejectsUnknownID(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	if err := d.DestroyConfig(12345); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v, want ErrInvalidConfig", err)
	}
}

func TestDestroyConfigRemovesIt(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id, err := d.CreateConfig(m2m.ProfileVP9Profile0, EntrypointVLD, nil)
	if err != nil {
		t.Fatalf("CreateConfig: %v", err)
	}
	if err := d.DestroyConfig(id); err != nil {
		t.Fatalf("DestroyConfig: %v", err)
	}
	if err := d.DestroyConfig(id); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("second DestroyConfig(%d) = %v, want ErrInvalidConfig", id, err)
	}
}
