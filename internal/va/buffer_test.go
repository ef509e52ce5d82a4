package va

import (
	"errors"
	"testing"
)

func TestMapBufferReturnsStoredPayload(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id := d.CreateBuffer(BufferTypeSliceData, []byte{1, 2, 3}, 1)

	v, err := d.MapBuffer(id)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	data, ok := v.([]byte)
	if !ok || len(data) != 3 {
		t.Fatalf("MapBuffer returned %v, want []byte{1,2,3}", v)
	}
}

func TestDestroyBufferDeferredWhileMapped(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id := d.CreateBuffer(BufferTypeSliceData, []byte{1}, 1)

	if _, err := d.MapBuffer(id); err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	if err := d.DestroyBuffer(id); err != nil {
		t.Fatalf("DestroyBuffer while mapped: %v", err)
	}
	// Still present: destruction must be deferred until unmap.
	if _, err := d.MapBuffer(id); err != nil {
		t.Fatalf("buffer disappeared before unmap: %v", err)
	}
	// Two outstanding maps (the original plus the one just above); both
	// unmaps are needed before the deferred destroy actually runs.
	if err := d.UnmapBuffer(id); err != nil {
		t.Fatalf("UnmapBuffer (1st): %v", err)
	}
	if err := d.UnmapBuffer(id); err != nil {
		t.Fatalf("UnmapBuffer (2nd): %v", err)
	}
	if _, err := d.MapBuffer(id); !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("buffer still present after refcount reached zero with pendingDestroy set: got %v", err)
	}
}

func TestDestroyBufferImmediateWhenUnmapped(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id := d.CreateBuffer(BufferTypePictureParameter, struct{}{}, 1)
	if err := d.DestroyBuffer(id); err != nil {
		t.Fatalf("DestroyBuffer: %v", err)
	}
	if _, err := d.MapBuffer(id); !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("got %v, want ErrInvalidBuffer", err)
	}
}

func TestUnmapUnknownBufferIsError(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	if err := d.UnmapBuffer(404); !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("got %v, want ErrInvalidBuffer", err)
	}
}
