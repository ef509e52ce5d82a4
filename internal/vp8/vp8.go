// Package vp8 implements the VP8 bitstream assembler: VP8 carries no
// NAL-style header units, so frames are passed through verbatim with
// no start codes.
package vp8

import (
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

// Codec is stateless: VP8 has no header cache to maintain.
type Codec struct{}

// New returns a VP8 passthrough Codec.
func New() *Codec { return &Codec{} }

// Kind implements codec.Codec.
func (c *Codec) Kind() codec.Kind { return codec.KindVP8 }

// Reset implements codec.Codec; a no-op, since there is no cached state.
func (c *Codec) Reset() {}

// HandlePictureParams implements codec.Codec. VP8 frame headers are
// carried in-band with the frame data, so there is nothing to
// synthesise; this always reports no change.
func (c *Codec) HandlePictureParams(any) (bool, error) { return false, nil }

// PrepareBitstream implements codec.Codec: append every slice's raw
// frame data verbatim, with no start codes.
func (c *Codec) PrepareBitstream(w *bitio.Writer, slices []codec.SliceUnit) error {
	for _, s := range slices {
		w.PutBytes(s.Data)
	}
	return nil
}
