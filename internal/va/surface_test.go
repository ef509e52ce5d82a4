package va

import (
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"
)

func TestCreateSurfacesDefaultsToNV12(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(640, 368, 3)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("got %d surfaces, want 3", len(ids))
	}
	for _, id := range ids {
		surf, err := d.surfaceByID(id)
		if err != nil {
			t.Fatalf("surfaceByID(%d): %v", id, err)
		}
		if surf.Format != session.PixelFormatNV12 {
			t.Fatalf("surface %d format = %v, want NV12", id, surf.Format)
		}
	}
}

func TestCreateSurfacesWithAttributesSelectsP010(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfacesWithAttributes(1280, 720, 1, []Attribute{{Type: AttrPixelFormat, Value: 1}})
	if err != nil {
		t.Fatalf("CreateSurfacesWithAttributes: %v", err)
	}
	surf, err := d.surfaceByID(ids[0])
	if err != nil {
		t.Fatalf("surfaceByID: %v", err)
	}
	if surf.Format != session.PixelFormatP010 {
		t.Fatalf("format = %v, want P010", surf.Format)
	}
}

func TestDestroySurfacesSkipsUnknownIDs(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}
	if err := d.DestroySurfaces(append(ids, 99999)); err != nil {
		t.Fatalf("DestroySurfaces: %v", err)
	}
	if _, err := d.surfaceByID(ids[0]); err == nil {
		t.Fatal("expected surface to be gone after destroy")
	}
}
