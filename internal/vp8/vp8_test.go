package vp8

import (
	"bytes"
	"testing"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

func TestPassthroughNoStartCodes(t *testing.T) {
	t.Parallel()
	c := New()
	w := bitio.NewWriter(64)
	frame := []byte{0x10, 0x20, 0x30}
	if err := c.PrepareBitstream(w, []codec.SliceUnit{{Data: frame}}); err != nil {
		t.Fatalf("PrepareBitstream: %v", err)
	}
	if !bytes.Equal(w.Bytes(), frame) {
		t.Fatalf("got %v, want raw passthrough %v", w.Bytes(), frame)
	}
}

func TestHandlePictureParamsNeverChanges(t *testing.T) {
	t.Parallel()
	c := New()
	changed, err := c.HandlePictureParams(nil)
	if err != nil || changed {
		t.Fatalf("HandlePictureParams: changed=%v err=%v, want false, nil", changed, err)
	}
}
