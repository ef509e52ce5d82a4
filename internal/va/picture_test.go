package va

import "testing"

func TestBeginPictureUnknownContextOrSurface(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}

	if err := d.BeginPicture(999, ids[0]); err == nil {
		t.Fatal("expected an error for an unknown context id")
	}
}

func TestRenderPictureRejectsNonByteSliceDataPayload(t *testing.T) {
	t.Parallel()
	d := NewDriver()

	// A context is required to reach the buffer-type switch, but
	// resolving one past that point needs a live kernel device, which
	// this package's unit tests don't have. Exercise the unknown-context
	// path instead, which RenderPicture checks first.
	bufID := d.CreateBuffer(BufferTypeSliceData, "not bytes", 1)
	if err := d.RenderPicture(999, []uint32{bufID}); err == nil {
		t.Fatal("expected an error for an unknown context id")
	}
}

func TestQuerySurfaceStatusUndecodedSurface(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}
	status, err := d.QuerySurfaceStatus(ids[0])
	if err != nil {
		t.Fatalf("QuerySurfaceStatus: %v", err)
	}
	if status != SurfaceStatusRendering {
		t.Fatalf("status = %v, want SurfaceStatusRendering for a never-decoded surface", status)
	}
}

func TestQuerySurfaceStatusUnknownSurface(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	if _, err := d.QuerySurfaceStatus(777); err == nil {
		t.Fatal("expected an error for an unknown surface id")
	}
}
