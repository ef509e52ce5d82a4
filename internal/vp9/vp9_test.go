package vp9

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
	frames := []codec.SliceUnit{{Data: []byte{1, 2}}, {Data: []byte{3, 4}}}
	if err := c.PrepareBitstream(w, frames); err != nil {
		t.Fatalf("PrepareBitstream: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3, 4}) {
		t.Fatalf("got %v, want concatenated raw frames", w.Bytes())
	}
}
