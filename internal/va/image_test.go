package va

import (
	"errors"
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/session"
)

func TestImageByteSizeNV12VsP010(t *testing.T) {
	t.Parallel()
	nv12 := imageByteSize(session.PixelFormatNV12, 640, 368)
	p010 := imageByteSize(session.PixelFormatP010, 640, 368)
	if p010 != nv12*2 {
		t.Fatalf("P010 size = %d, want double NV12 size %d", p010, nv12)
	}
	want := 640*368 + (640*368)/2
	if nv12 != want {
		t.Fatalf("NV12 size = %d, want %d", nv12, want)
	}
}

func TestCreateImageAllocatesBuffer(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	id, err := d.CreateImage(session.PixelFormatNV12, 320, 240)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	v, err := d.MapBuffer(id)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	data, ok := v.([]byte)
	if !ok || len(data) != imageByteSize(session.PixelFormatNV12, 320, 240) {
		t.Fatalf("image buffer payload = %v, want a %d-byte slice", v, imageByteSize(session.PixelFormatNV12, 320, 240))
	}
}

func TestGetImageRejectsNonImageBuffer(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}
	sliceBufID := d.CreateBuffer(BufferTypeSliceData, []byte{1}, 1)
	if err := d.GetImage(ids[0], sliceBufID); !errors.Is(err, ErrInvalidBuffer) {
		t.Fatalf("got %v, want ErrInvalidBuffer", err)
	}
}

func TestGetImageRejectsNeverDecodedSurface(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	ids, err := d.CreateSurfaces(320, 240, 1)
	if err != nil {
		t.Fatalf("CreateSurfaces: %v", err)
	}
	imgID, err := d.CreateImage(session.PixelFormatNV12, 320, 240)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if err := d.GetImage(ids[0], imgID); err == nil {
		t.Fatal("expected an error reading back a surface that was never a BeginPicture target")
	}
}

func TestDeriveImageUnknownSurface(t *testing.T) {
	t.Parallel()
	d := NewDriver()
	if _, err := d.DeriveImage(12345); !errors.Is(err, ErrInvalidSurface) {
		t.Fatalf("got %v, want ErrInvalidSurface", err)
	}
}
