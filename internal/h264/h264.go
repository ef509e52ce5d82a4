// Package h264 implements the H.264 header synthesiser and bitstream
// assembler: synthesising SPS/PPS NAL units from parsed VA picture
// parameters, and assembling an Annex-B bitstream that prefixes start
// codes to slices and inserts the synthesised headers ahead of the
// first IDR after each header-cache change.
package h264

import (
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

// Codec holds the per-session H.264 header cache: the latest
// synthesised SPS/PPS and the emitted-for-current-keyframe latch.
type Codec struct {
	key     cacheKey
	haveKey bool

	sps []byte
	pps []byte

	// emitted is true once the current cache's SPS/PPS have appeared in
	// the assembled bitstream at least once since the last cache-key
	// change.
	emitted bool
}

// New returns a Codec with no cached headers.
func New() *Codec { return &Codec{} }

// Kind implements codec.Codec.
func (c *Codec) Kind() codec.Kind { return codec.KindH264 }

// Reset implements codec.Codec: clears the emitted latch so the next
// keyframe re-emits SPS/PPS.
func (c *Codec) Reset() { c.emitted = false }

// HandlePictureParams implements codec.Codec. pp must be a
// h264.PictureParams (or *h264.PictureParams); any other type is a
// programmer error in the caller and returns an error rather than
// panicking.
func (c *Codec) HandlePictureParams(ppAny any) (bool, error) {
	pp, err := asPictureParams(ppAny)
	if err != nil {
		return false, err
	}

	key := pp.key()
	if c.haveKey && key == c.key {
		return false, nil
	}

	c.sps = buildSPS(pp)
	c.pps = buildPPS(pp)
	c.key = key
	c.haveKey = true
	c.emitted = false
	return true, nil
}

func asPictureParams(v any) (PictureParams, error) {
	switch pp := v.(type) {
	case PictureParams:
		return pp, nil
	case *PictureParams:
		if pp == nil {
			return PictureParams{}, fmt.Errorf("h264: nil picture params")
		}
		return *pp, nil
	default:
		return PictureParams{}, fmt.Errorf("h264: unexpected picture params type %T", v)
	}
}

// PrepareBitstream implements codec.Codec: on the first IDR slice seen
// since the last header-cache change, emit start-code-prefixed SPS
// then PPS, then set the emitted latch. Every slice NAL is emitted
// with a start code unconditionally, in order.
func (c *Codec) PrepareBitstream(w *bitio.Writer, slices []codec.SliceUnit) error {
	for _, s := range slices {
		if len(s.Data) == 0 {
			continue
		}
		if IsIDR(s.Data[0]) && !c.emitted {
			if c.sps == nil || c.pps == nil {
				return fmt.Errorf("h264: IDR slice before any picture parameters were supplied")
			}
			w.PutStartCode()
			w.PutBytes(c.sps)
			w.PutStartCode()
			w.PutBytes(c.pps)
			c.emitted = true
		}
		w.PutStartCode()
		w.PutBytes(s.Data)
	}
	return nil
}
