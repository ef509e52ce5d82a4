// Package hevc implements the HEVC header synthesiser and bitstream
// assembler: synthesising VPS/SPS/PPS NAL units from parsed VA picture
// parameters, and assembling an Annex-B bitstream that scrubs redundant
// in-band parameter sets and inserts the synthesised ones ahead of the
// first IDR/CRA picture after each header-cache change.
package hevc

import (
	"fmt"

	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/bitio"
	"github.com/Sky1-Linux/libva-v4l2-stateful/internal/codec"
)

// Codec holds the per-session HEVC header cache: the latest
// synthesised VPS/SPS/PPS and the params-sent latch.
type Codec struct {
	key     cacheKey
	haveKey bool

	vps []byte
	sps []byte
	pps []byte

	// paramsSent is true once the current cache's VPS/SPS/PPS have
	// appeared in the assembled bitstream since the last cache-key
	// change.
	paramsSent bool
}

// New returns a Codec with no cached headers.
func New() *Codec { return &Codec{} }

// Kind implements codec.Codec.
func (c *Codec) Kind() codec.Kind { return codec.KindHEVC }

// Reset implements codec.Codec: clears the params-sent latch so the
// next IDR/CRA re-emits VPS/SPS/PPS.
func (c *Codec) Reset() { c.paramsSent = false }

// HandlePictureParams implements codec.Codec. pp must be a
// hevc.PictureParams (or *hevc.PictureParams).
func (c *Codec) HandlePictureParams(ppAny any) (bool, error) {
	pp, err := asPictureParams(ppAny)
	if err != nil {
		return false, err
	}

	key := pp.key()
	if c.haveKey && key == c.key {
		return false, nil
	}

	c.vps = buildVPS(pp)
	c.sps = buildSPS(pp)
	c.pps = buildPPS(pp)
	c.key = key
	c.haveKey = true
	c.paramsSent = false
	return true, nil
}

func asPictureParams(v any) (PictureParams, error) {
	switch pp := v.(type) {
	case PictureParams:
		return pp, nil
	case *PictureParams:
		if pp == nil {
			return PictureParams{}, fmt.Errorf("hevc: nil picture params")
		}
		return *pp, nil
	default:
		return PictureParams{}, fmt.Errorf("hevc: unexpected picture params type %T", v)
	}
}

// PrepareBitstream implements codec.Codec: in-band VPS/SPS/PPS NALs are
// dropped unconditionally (they are replaced by
// the synthesised versions); on the first IDR/CRA slice seen since the
// last header-cache change, the synthesised VPS, SPS, PPS are emitted
// ahead of it.
func (c *Codec) PrepareBitstream(w *bitio.Writer, slices []codec.SliceUnit) error {
	for _, s := range slices {
		if len(s.Data) == 0 {
			continue
		}
		if IsParameterSet(s.Data[0]) {
			continue
		}
		if IsIDROrCRA(s.Data[0]) && !c.paramsSent {
			if c.vps == nil || c.sps == nil || c.pps == nil {
				return fmt.Errorf("hevc: IDR/CRA slice before any picture parameters were supplied")
			}
			w.PutStartCode()
			w.PutBytes(c.vps)
			w.PutStartCode()
			w.PutBytes(c.sps)
			w.PutStartCode()
			w.PutBytes(c.pps)
			c.paramsSent = true
		}
		w.PutStartCode()
		w.PutBytes(s.Data)
	}
	return nil
}
