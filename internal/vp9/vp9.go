// Package vp9 implements the VP9 bitstream assembler: like VP8, VP9
// carries no NAL-style header units, so frames are passed through
// verbatim with no start codes.
package vp9

import (
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

// Codec is stateless: VP9 has no header cache to maintain.
type Codec struct{}

// New returns a VP9 passthrough Codec.
func New() *Codec { return &Codec{} }

// Kind implements codec.Codec.
func (c *Codec) Kind() codec.Kind { return codec.KindVP9 }

// Reset implements codec.Codec; a no-op, since there is no cached state.
func (c *Codec) Reset() {}

// HandlePictureParams implements codec.Codec. VP9 uncompressed headers
// are carried in-band with the frame data; this always reports no
// change.
func (c *Codec) HandlePictureParams(any) (bool, error) { return false, nil }

// PrepareBitstream implements codec.Codec: append every slice's raw
// frame data verbatim, with no start codes.
func (c *Codec) PrepareBitstream(w *bitio.Writer, slices []codec.SliceUnit) error {
	for _, s := range slices {
		w.PutBytes(s.Data)
	}
	return nil
}
