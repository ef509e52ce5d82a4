package hevc

import (
	"bytes"
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

func nal(nalType byte, payload byte) codec.SliceUnit {
	b0 := nalType << 1 // forbidden_zero_bit=0, nal_unit_type in bits 1-6
	return codec.SliceUnit{Data: []byte{b0, 0, payload}}
}

func TestRedundantHeadersScrubbed(t *testing.T) {
	t.Parallel()
	c := New()
	if _, err := c.HandlePictureParams(PictureParams{Width: 1280, Height: 720, ChromaFormatIDC: 1}); err != nil {
		t.Fatalf("HandlePictureParams: %v", err)
	}

	w := bitio.NewWriter(4096)
	in := []codec.SliceUnit{
		nal(NALTypeVPS, 1),
		nal(NALTypeSPS, 2),
		nal(NALTypePPS, 3),
		nal(NALTypeIDRWRADL, 4),
	}
	if err := c.PrepareBitstream(w, in); err != nil {
		t.Fatalf("PrepareBitstream: %v", err)
	}

	got := w.Bytes()
	startCode := []byte{0, 0, 1}

	// The in-band VPS/SPS/PPS must not appear; exactly one synthesised
	// VPS, SPS, PPS must precede the IDR.
	idx := 0
	next := func(label string, wantNALType int) int {
		if !bytes.Equal(got[idx:idx+3], startCode) {
			t.Fatalf("%s: missing start code at offset %d", label, idx)
		}
		idx += 3
		if nalType(got[idx]) != wantNALType {
			t.Fatalf("%s: nal_unit_type = %d, want %d", label, nalType(got[idx]), wantNALType)
		}
		return idx
	}

	next("VPS", NALTypeVPS)
	idx += len(c.vps)
	next("SPS", NALTypeSPS)
	idx += len(c.sps)
	next("PPS", NALTypePPS)
	idx += len(c.pps)
	idx = next("IDR", NALTypeIDRWRADL)

	// Exactly one NAL (the IDR) follows the synthesised headers; the
	// in-band VPS/SPS/PPS were dropped, not merely reordered.
	if bytes.Contains(got[idx+1:], startCode) {
		t.Fatal("expected exactly one trailing NAL after the synthesised headers")
	}
}

func TestCRANUTAlsoTriggersHeaders(t *testing.T) {
	t.Parallel()
	c := New()
	c.HandlePictureParams(PictureParams{Width: 640, Height: 360, ChromaFormatIDC: 1})

	w := bitio.NewWriter(4096)
	if err := c.PrepareBitstream(w, []codec.SliceUnit{nal(NALTypeCRA, 9)}); err != nil {
		t.Fatalf("PrepareBitstream: %v", err)
	}
	if !bytes.Contains(w.Bytes(), []byte{0, 0, 1}) {
		t.Fatal("expected start codes in output")
	}
	if !c.paramsSent {
		t.Fatal("expected paramsSent latch to be set after a CRA_NUT slice")
	}
}

func TestSecondIDRWithoutParamChangeSkipsHeaders(t *testing.T) {
	t.Parallel()
	c := New()
	c.HandlePictureParams(PictureParams{Width: 640, Height: 360, ChromaFormatIDC: 1})

	w1 := bitio.NewWriter(4096)
	c.PrepareBitstream(w1, []codec.SliceUnit{nal(NALTypeIDRWRADL, 1)})

	w2 := bitio.NewWriter(4096)
	c.PrepareBitstream(w2, []codec.SliceUnit{nal(NALTypeIDRWRADL, 2)})

	got := w2.Bytes()
	if len(got) != 3+3 { // start code + 3-byte NAL, no headers
		t.Fatalf("second IDR without param change re-emitted headers: got %d bytes, want 6", len(got))
	}
}
