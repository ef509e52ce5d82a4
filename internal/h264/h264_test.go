package h264

import (
	"bytes"
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

func idrSlice(payload byte) codec.SliceUnit {
	return codec.SliceUnit{Data: []byte{0x65, payload}} // nal_unit_type=5 (IDR)
}

func nonIDRSlice(payload byte) codec.SliceUnit {
	return codec.SliceUnit{Data: []byte{0x41, payload}} // nal_unit_type=1
}

func TestAssemblerOrderAndIdempotence(t *testing.T) {
	t.Parallel()
	c := New()
	if _, err := c.HandlePictureParams(PictureParams{Width: 640, Height: 368, NumRefFrames: 1}); err != nil {
		t.Fatalf("HandlePictureParams: %v", err)
	}

	w := bitio.NewWriter(1024)
	if err := c.PrepareBitstream(w, []codec.SliceUnit{idrSlice(0xAA), nonIDRSlice(0xBB)}); err != nil {
		t.Fatalf("PrepareBitstream: %v", err)
	}

	got := w.Bytes()
	startCode := []byte{0, 0, 1}

	// Expect: start+SPS, start+PPS, start+IDR, start+non-IDR, in order.
	idx := 0
	expectStartCodeAt := func(label string) int {
		if !bytes.Equal(got[idx:idx+3], startCode) {
			t.Fatalf("%s: expected start code at offset %d, got %v", label, idx, got[idx:idx+3])
		}
		return idx + 3
	}

	idx = expectStartCodeAt("SPS")
	if got[idx] != 0x67 {
		t.Fatalf("expected SPS NAL header 0x67 at offset %d, got %#x", idx, got[idx])
	}
	idx += len(c.sps)

	idx = expectStartCodeAt("PPS")
	if got[idx] != 0x68 {
		t.Fatalf("expected PPS NAL header 0x68 at offset %d, got %#x", idx, got[idx])
	}
	idx += len(c.pps)

	idx = expectStartCodeAt("IDR")
	if got[idx] != 0x65 {
		t.Fatalf("expected IDR NAL at offset %d, got %#x", idx, got[idx])
	}
	idx += 2

	idx = expectStartCodeAt("non-IDR")
	if got[idx] != 0x41 {
		t.Fatalf("expected non-IDR NAL at offset %d, got %#x", idx, got[idx])
	}

	// A second IDR in the same session without a parameter change must
	// not re-emit SPS/PPS.
	w2 := bitio.NewWriter(1024)
	if err := c.PrepareBitstream(w2, []codec.SliceUnit{idrSlice(0xCC)}); err != nil {
		t.Fatalf("PrepareBitstream (2nd IDR): %v", err)
	}
	got2 := w2.Bytes()
	if len(got2) != 3+2 { // start code + 2-byte slice, no headers
		t.Fatalf("second IDR without param change re-emitted headers: got %d bytes, want 5", len(got2))
	}
}

func TestParamChangeReEmitsHeaders(t *testing.T) {
	t.Parallel()
	c := New()
	c.HandlePictureParams(PictureParams{Width: 640, Height: 368, NumRefFrames: 1})

	w := bitio.NewWriter(1024)
	c.PrepareBitstream(w, []codec.SliceUnit{idrSlice(1)})

	changed, err := c.HandlePictureParams(PictureParams{Width: 1280, Height: 736, NumRefFrames: 1})
	if err != nil {
		t.Fatalf("HandlePictureParams: %v", err)
	}
	if !changed {
		t.Fatal("expected cache-key change to be reported")
	}

	w2 := bitio.NewWriter(1024)
	c.PrepareBitstream(w2, []codec.SliceUnit{idrSlice(2)})
	if !bytes.Contains(w2.Bytes(), []byte{0, 0, 1, 0x67}) {
		t.Fatal("expected SPS to be re-emitted after a parameter change")
	}
}

func TestHandlePictureParamsWrongType(t *testing.T) {
	t.Parallel()
	c := New()
	if _, err := c.HandlePictureParams("not a PictureParams"); err == nil {
		t.Fatal("expected an error for a mistyped picture-params argument")
	}
}
